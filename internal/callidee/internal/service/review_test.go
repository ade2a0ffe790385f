package service_test

import (
	"context"
	"testing"

	"github.com/intusaps/intus-website/internal/callidee/internal/domain"
	"github.com/intusaps/intus-website/internal/callidee/internal/service"
	svcmocks "github.com/intusaps/intus-website/internal/callidee/internal/service/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReviewEngineCaricaEFiltra(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc := svcmocks.NewMockService(ctrl)
	svc.EXPECT().Lista(gomock.Any()).Return([]domain.Proposta{
		{ID: 1, TitoloProgetto: "Orto urbano", Categoria: "ambientale"},
		{ID: 2, TitoloProgetto: "Rassegna teatrale", Categoria: "culturale"},
	}, nil)

	eng := service.NewReviewEngine(svc, "Commissione")
	require.NoError(t, eng.Carica(context.Background()))

	assert.Len(t, eng.Proposte(), 2)
	filtrate := eng.Filtra(domain.Filtro{Categoria: "culturale"})
	require.Len(t, filtrate, 1)
	assert.Equal(t, int64(2), filtrate[0].ID)
}

func TestReviewEngineCaricaErrore(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc := svcmocks.NewMockService(ctrl)
	svc.EXPECT().Lista(gomock.Any()).Return(nil, errors.New("db giù"))

	eng := service.NewReviewEngine(svc, "Commissione")
	assert.Error(t, eng.Carica(context.Background()))
	assert.Empty(t, eng.Proposte())
}

func TestReviewEngineToggleEspansa(t *testing.T) {
	t.Parallel()
	eng := service.NewReviewEngine(nil, "Commissione")
	assert.False(t, eng.Espansa(5))
	assert.True(t, eng.ToggleEspansa(5))
	assert.True(t, eng.Espansa(5))
	assert.False(t, eng.ToggleEspansa(5))
	assert.False(t, eng.Espansa(5))
}

func TestReviewEngineSalvaValutazione(t *testing.T) {
	t.Parallel()

	t.Run("persiste e aggiorna la copia in memoria", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := svcmocks.NewMockService(ctrl)
		svc.EXPECT().Lista(gomock.Any()).Return([]domain.Proposta{
			{ID: 1, TitoloProgetto: "Orto urbano"},
		}, nil)
		svc.EXPECT().SalvaValutazione(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(ctx context.Context, id int64, v domain.Valutazione) (domain.Valutazione, error) {
				// il valutatore è quello iniettato alla costruzione
				assert.Equal(t, "Commissione", v.Valutatore)
				v.Stato = domain.StatoApprovato
				return v, nil
			})

		eng := service.NewReviewEngine(svc, "Commissione")
		require.NoError(t, eng.Carica(context.Background()))

		err := eng.SalvaValutazione(context.Background(), 1, domain.Valutazione{
			Stato: domain.StatoApprovato,
		})
		require.NoError(t, err)

		proposte := eng.Proposte()
		require.NotNil(t, proposte[0].Valutazione)
		assert.Equal(t, domain.StatoApprovato, proposte[0].Valutazione.Stato)
	})

	t.Run("su errore l'elenco resta invariato", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := svcmocks.NewMockService(ctrl)
		svc.EXPECT().Lista(gomock.Any()).Return([]domain.Proposta{
			{ID: 1, TitoloProgetto: "Orto urbano"},
		}, nil)
		svc.EXPECT().SalvaValutazione(gomock.Any(), int64(1), gomock.Any()).
			Return(domain.Valutazione{}, errors.New("db giù"))

		eng := service.NewReviewEngine(svc, "Commissione")
		require.NoError(t, eng.Carica(context.Background()))

		err := eng.SalvaValutazione(context.Background(), 1, domain.Valutazione{
			Stato: domain.StatoRifiutato,
		})
		require.Error(t, err)
		assert.Nil(t, eng.Proposte()[0].Valutazione)
	})
}
