package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/intusaps/intus-website/internal/callidee/internal/domain"
	"github.com/intusaps/intus-website/internal/callidee/internal/errs"
	"github.com/intusaps/intus-website/internal/callidee/internal/service"
	svcmocks "github.com/intusaps/intus-website/internal/callidee/internal/service/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type result struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func newServer(t *testing.T, mock func(ctrl *gomock.Controller) service.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	server := gin.New()
	NewHandler(mock(ctrl)).PublicRoutes(server)
	return server
}

func TestHandlerPresenta(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.Service
		body     string
		wantCode int
		verify   func(t *testing.T, res result)
	}{
		{
			name: "candidatura accettata",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Presenta(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p domain.Proposta) (domain.Proposta, error) {
						p.ID = 12
						p.SN = "aBc123"
						return p, nil
					})
				return svc
			},
			body:     `{"proposta":{"titolo_progetto":"Orto urbano"}}`,
			wantCode: http.StatusOK,
			verify: func(t *testing.T, res result) {
				assert.Zero(t, res.Code)
				var p Proposta
				require.NoError(t, json.Unmarshal(res.Data, &p))
				assert.Equal(t, int64(12), p.ID)
				assert.Equal(t, "aBc123", p.SN)
				assert.Equal(t, "in_attesa", p.Stato)
			},
		},
		{
			name: "errori di validazione inline",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Presenta(gomock.Any(), gomock.Any()).
					Return(domain.Proposta{}, &service.ErroreValidazione{
						Campi: domain.CampiErrati{"titoloProgetto": "Il titolo deve contenere almeno 3 caratteri"},
					})
				return svc
			},
			body:     `{"proposta":{"titolo_progetto":"ab"}}`,
			wantCode: http.StatusOK,
			verify: func(t *testing.T, res result) {
				assert.Equal(t, errs.ValidationError.Code, res.Code)
				var campi map[string]string
				require.NoError(t, json.Unmarshal(res.Data, &campi))
				assert.Contains(t, campi, "titoloProgetto")
			},
		},
		{
			name: "errore di sistema",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Presenta(gomock.Any(), gomock.Any()).
					Return(domain.Proposta{}, errors.New("db giù"))
				return svc
			},
			body:     `{"proposta":{"titolo_progetto":"Orto urbano"}}`,
			wantCode: http.StatusInternalServerError,
			verify: func(t *testing.T, res result) {
				assert.Equal(t, errs.SystemError.Code, res.Code)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newServer(t, tc.mock)
			req, err := http.NewRequest(http.MethodPost,
				"/call-idee/presenta", bytes.NewBufferString(tc.body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantCode, recorder.Code)
			var res result
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
			tc.verify(t, res)
		})
	}
}

func TestHandlerOpzioni(t *testing.T) {
	server := newServer(t, func(ctrl *gomock.Controller) service.Service {
		return svcmocks.NewMockService(ctrl)
	})
	req, err := http.NewRequest(http.MethodGet, "/call-idee/opzioni", nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	var res result
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	var data struct {
		Categorie          []string `json:"categorie"`
		NumeroPartecipanti []string `json:"numero_partecipanti"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &data))
	assert.Equal(t, domain.Categorie(), data.Categorie)
	assert.Equal(t, []string{"2-4", "5-9", "+10"}, data.NumeroPartecipanti)
	assert.True(t, strings.Contains(recorder.Header().Get("Content-Type"), "application/json"))
}
