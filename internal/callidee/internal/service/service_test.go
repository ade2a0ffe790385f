package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/intusaps/intus-website/internal/callidee/internal/domain"
	repomocks "github.com/intusaps/intus-website/internal/callidee/internal/repository/mocks"
	"github.com/intusaps/intus-website/internal/callidee/internal/service"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func candidaturaValida() domain.Proposta {
	return domain.Proposta{
		TitoloProgetto:      "Orto di quartiere",
		DescrizioneProgetto: strings.Repeat("Un progetto di agricoltura urbana. ", 3),
		Coprogramma: []domain.AttivitaCoprogramma{
			{Attivita: "Semina", Descrizione: "Preparazione del terreno e semina", Mesi: "marzo"},
		},
		DataInizio: "2026-03-01",
		DataFine:   "2026-09-30",
		Referente: domain.Referente{
			Nome: "Giulia", Cognome: "Rossi", Email: "giulia@example.com",
			Telefono: "333 1234567", DataNascita: "2001-05-12",
			CodiceFiscale: "RSSGLI01E52F205X",
		},
		NumeroPartecipanti: "2-4",
		DescrizioneGruppo:  "Gruppo informale di giovani del quartiere",
		Partecipanti: []domain.Partecipante{
			{Nome: "Marco", Cognome: "Bianchi", Email: "marco@example.com",
				Telefono: "333 7654321", DataNascita: "2003-01-20"},
		},
		LuogoSvolgimento:     "Canicattì",
		Categoria:            "ambientale",
		CategoriaDescrizione: "Riqualificazione di uno spazio verde",
		TipoEvento:           "Laboratorio",
		DescrizioneEvento:    "Laboratori settimanali aperti al quartiere",
	}
}

func TestServicePresenta(t *testing.T) {
	t.Parallel()

	t.Run("assegna SN e data e persiste", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockPropostaRepository(ctrl)
		repo.EXPECT().Crea(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, p domain.Proposta) (int64, error) {
				assert.NotEmpty(t, p.SN)
				assert.False(t, p.CreatedAt.IsZero())
				return 42, nil
			})

		svc := service.NewService(repo, nil)
		salvata, err := svc.Presenta(context.Background(), candidaturaValida())
		require.NoError(t, err)
		assert.Equal(t, int64(42), salvata.ID)
		assert.NotEmpty(t, salvata.SN)
	})

	t.Run("candidatura invalida non tocca il repository", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockPropostaRepository(ctrl)

		svc := service.NewService(repo, nil)
		p := candidaturaValida()
		p.TitoloProgetto = "ab"
		_, err := svc.Presenta(context.Background(), p)

		var ev *service.ErroreValidazione
		require.ErrorAs(t, err, &ev)
		assert.Contains(t, ev.Campi, "titoloProgetto")
	})

	t.Run("errore dal repository propagato", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockPropostaRepository(ctrl)
		repo.EXPECT().Crea(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db giù"))

		svc := service.NewService(repo, nil)
		_, err := svc.Presenta(context.Background(), candidaturaValida())
		assert.Error(t, err)
	})
}

func TestServiceSalvaValutazione(t *testing.T) {
	t.Parallel()

	t.Run("calcola il punteggio dai criteri e timbra la data", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockPropostaRepository(ctrl)
		repo.EXPECT().AggiornaValutazione(gomock.Any(), int64(3), gomock.Any()).Return(nil)

		svc := service.NewService(repo, nil)
		salvata, err := svc.SalvaValutazione(context.Background(), 3, domain.Valutazione{
			Stato: domain.StatoApprovato,
			Criteri: &domain.CriteriValutazione{
				Cantierabilita:        18,
				Sostenibilita:         15,
				RispostaTerritorio:    12,
				CoinvolgimentoGiovani: 20,
				PromozioneTerritorio:  10,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 75, salvata.PunteggioTotale)
		assert.False(t, salvata.DataValutazione.IsZero())
	})

	t.Run("stato mancante vale in_valutazione", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockPropostaRepository(ctrl)
		repo.EXPECT().AggiornaValutazione(gomock.Any(), int64(3), gomock.Any()).Return(nil)

		svc := service.NewService(repo, nil)
		salvata, err := svc.SalvaValutazione(context.Background(), 3, domain.Valutazione{
			NoteValutatore: "da approfondire",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatoInValutazione, salvata.Stato)
	})
}
