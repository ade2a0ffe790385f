package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/intusaps/intus-website/internal/callidee/internal/domain"
	"github.com/intusaps/intus-website/internal/callidee/internal/repository"
	"github.com/intusaps/intus-website/internal/callidee/internal/service"
	svcmocks "github.com/intusaps/intus-website/internal/callidee/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAdminServer(t *testing.T, mock func(ctrl *gomock.Controller) service.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  7,
			Data: map[string]string{"creator": "true", "nome": "Giulia"},
		}))
	})
	NewAdminHandler(mock(ctrl), "template/lettera_esito.docx").PrivateRoutes(server)
	return server
}

func proposteDiProva() []domain.Proposta {
	return []domain.Proposta{
		{
			ID:             1,
			TitoloProgetto: "Orto urbano",
			Categoria:      "ambientale",
			Referente:      domain.Referente{Cognome: "Rossi"},
		},
		{
			ID:             2,
			TitoloProgetto: "Cineforum",
			Categoria:      "culturale",
			Referente:      domain.Referente{Cognome: "Bianchi"},
			Valutazione: &domain.Valutazione{
				Stato:           domain.StatoApprovato,
				PunteggioTotale: 80,
			},
		},
	}
}

func TestAdminLista(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		wantTotale int
		wantPrimo  string
	}{
		{
			name:       "senza filtri",
			body:       `{}`,
			wantTotale: 2,
			wantPrimo:  "Orto urbano",
		},
		{
			name:       "filtro per categoria",
			body:       `{"categoria":"culturale"}`,
			wantTotale: 1,
			wantPrimo:  "Cineforum",
		},
		{
			name:       "filtro per stato derivato",
			body:       `{"stato":"in_attesa"}`,
			wantTotale: 1,
			wantPrimo:  "Orto urbano",
		},
		{
			name:       "ricerca sul cognome",
			body:       `{"ricerca":"bianchi"}`,
			wantTotale: 1,
			wantPrimo:  "Cineforum",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newAdminServer(t, func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Lista(gomock.Any()).Return(proposteDiProva(), nil)
				return svc
			})
			req, err := http.NewRequest(http.MethodPost,
				"/call-idee/list", bytes.NewBufferString(tc.body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			require.Equal(t, http.StatusOK, recorder.Code)
			var res result
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
			var lista ListaProposte
			require.NoError(t, json.Unmarshal(res.Data, &lista))
			assert.Equal(t, tc.wantTotale, lista.Totale)
			require.NotEmpty(t, lista.Proposte)
			assert.Equal(t, tc.wantPrimo, lista.Proposte[0].TitoloProgetto)
		})
	}
}

func TestAdminDettaglio(t *testing.T) {
	t.Run("proposta esistente", func(t *testing.T) {
		server := newAdminServer(t, func(ctrl *gomock.Controller) service.Service {
			svc := svcmocks.NewMockService(ctrl)
			svc.EXPECT().Dettaglio(gomock.Any(), int64(2)).
				Return(proposteDiProva()[1], nil)
			return svc
		})
		req, err := http.NewRequest(http.MethodPost,
			"/call-idee/detail", bytes.NewBufferString(`{"id":2}`))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		var res result
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
		var p Proposta
		require.NoError(t, json.Unmarshal(res.Data, &p))
		assert.Equal(t, "Cineforum", p.TitoloProgetto)
		assert.Equal(t, "approvato", p.Stato)
		require.NotNil(t, p.Valutazione)
		assert.Equal(t, 80, p.Valutazione.PunteggioTotale)
	})

	t.Run("proposta inesistente", func(t *testing.T) {
		server := newAdminServer(t, func(ctrl *gomock.Controller) service.Service {
			svc := svcmocks.NewMockService(ctrl)
			svc.EXPECT().Dettaglio(gomock.Any(), int64(99)).
				Return(domain.Proposta{}, repository.ErrPropostaNonTrovata)
			return svc
		})
		req, err := http.NewRequest(http.MethodPost,
			"/call-idee/detail", bytes.NewBufferString(`{"id":99}`))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		var res result
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
		assert.Equal(t, 404, res.Code)
	})
}

func TestAdminSalvaValutazione(t *testing.T) {
	t.Run("il valutatore mancante arriva dalla sessione", func(t *testing.T) {
		server := newAdminServer(t, func(ctrl *gomock.Controller) service.Service {
			svc := svcmocks.NewMockService(ctrl)
			svc.EXPECT().SalvaValutazione(gomock.Any(), int64(1), gomock.Any()).
				DoAndReturn(func(_ context.Context, id int64, v domain.Valutazione) (domain.Valutazione, error) {
					assert.Equal(t, "Giulia", v.Valutatore)
					v.DataValutazione = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
					return v, nil
				})
			return svc
		})
		body := `{"id":1,"valutazione":{"stato":"approvato","criteri":{"cantierabilita":16,"sostenibilita":14,"risposta_territorio":15,"coinvolgimento_giovani":18,"promozione_territorio":12}}}`
		req, err := http.NewRequest(http.MethodPost,
			"/call-idee/valutazione/save", bytes.NewBufferString(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		var res result
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
		var v Valutazione
		require.NoError(t, json.Unmarshal(res.Data, &v))
		assert.Equal(t, "Giulia", v.Valutatore)
		assert.Equal(t, "2026-03-01T12:00:00Z", v.DataValutazione)
	})

	t.Run("il valutatore esplicito vince", func(t *testing.T) {
		server := newAdminServer(t, func(ctrl *gomock.Controller) service.Service {
			svc := svcmocks.NewMockService(ctrl)
			svc.EXPECT().SalvaValutazione(gomock.Any(), int64(1), gomock.Any()).
				DoAndReturn(func(_ context.Context, id int64, v domain.Valutazione) (domain.Valutazione, error) {
					assert.Equal(t, "Commissione Call Idee", v.Valutatore)
					return v, nil
				})
			return svc
		})
		body := `{"id":1,"valutazione":{"stato":"rifiutato","valutatore":"Commissione Call Idee"}}`
		req, err := http.NewRequest(http.MethodPost,
			"/call-idee/valutazione/save", bytes.NewBufferString(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestAdminEsportaCSV(t *testing.T) {
	server := newAdminServer(t, func(ctrl *gomock.Controller) service.Service {
		svc := svcmocks.NewMockService(ctrl)
		svc.EXPECT().Lista(gomock.Any()).Return(proposteDiProva(), nil)
		return svc
	})
	req, err := http.NewRequest(http.MethodGet,
		"/call-idee/export/csv?categoria=ambientale", nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, recorder.Header().Get("Content-Type"), "text/csv")
	body := recorder.Body.String()
	assert.Contains(t, body, "Orto urbano")
	assert.NotContains(t, body, "Cineforum")
}

func TestAdminEsportaDOCX(t *testing.T) {
	t.Run("download", func(t *testing.T) {
		server := newAdminServer(t, func(ctrl *gomock.Controller) service.Service {
			svc := svcmocks.NewMockService(ctrl)
			svc.EXPECT().Dettaglio(gomock.Any(), int64(1)).
				Return(proposteDiProva()[0], nil)
			return svc
		})
		req, err := http.NewRequest(http.MethodGet, "/call-idee/export/docx/1", nil)
		require.NoError(t, err)
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Header().Get("Content-Disposition"), "orto-urbano")
		assert.True(t, bytes.HasPrefix(recorder.Body.Bytes(), []byte("PK")))
	})

	t.Run("id non numerico", func(t *testing.T) {
		server := newAdminServer(t, func(ctrl *gomock.Controller) service.Service {
			return svcmocks.NewMockService(ctrl)
		})
		req, err := http.NewRequest(http.MethodGet, "/call-idee/export/docx/abc", nil)
		require.NoError(t, err)
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("proposta inesistente", func(t *testing.T) {
		server := newAdminServer(t, func(ctrl *gomock.Controller) service.Service {
			svc := svcmocks.NewMockService(ctrl)
			svc.EXPECT().Dettaglio(gomock.Any(), int64(42)).
				Return(domain.Proposta{}, repository.ErrPropostaNonTrovata)
			return svc
		})
		req, err := http.NewRequest(http.MethodGet, "/call-idee/export/docx/42", nil)
		require.NoError(t, err)
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestAdminEsportaLettera(t *testing.T) {
	t.Run("senza valutazione risponde conflitto", func(t *testing.T) {
		server := newAdminServer(t, func(ctrl *gomock.Controller) service.Service {
			svc := svcmocks.NewMockService(ctrl)
			svc.EXPECT().Dettaglio(gomock.Any(), int64(1)).
				Return(proposteDiProva()[0], nil)
			return svc
		})
		req, err := http.NewRequest(http.MethodGet, "/call-idee/export/lettera/1", nil)
		require.NoError(t, err)
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}
