package service

import (
	"context"
	"testing"

	"github.com/intusaps/intus-website/internal/callidee/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// servizio fittizio controllabile per i test del form
type stubService struct {
	presenta func(ctx context.Context, p domain.Proposta) (domain.Proposta, error)
}

func (s *stubService) Presenta(ctx context.Context, p domain.Proposta) (domain.Proposta, error) {
	return s.presenta(ctx, p)
}

func (s *stubService) Lista(ctx context.Context) ([]domain.Proposta, error) {
	return nil, nil
}

func (s *stubService) Dettaglio(ctx context.Context, id int64) (domain.Proposta, error) {
	return domain.Proposta{}, nil
}

func (s *stubService) SalvaValutazione(ctx context.Context, id int64, v domain.Valutazione) (domain.Valutazione, error) {
	return v, nil
}

func TestFormStatoIniziale(t *testing.T) {
	t.Parallel()
	f := NewForm(nil)
	bozza := f.Bozza()
	assert.Equal(t, "2-4", bozza.NumeroPartecipanti)
	assert.Len(t, bozza.Coprogramma, 1)
	assert.Len(t, bozza.Partecipanti, 1)
	assert.Empty(t, bozza.FigureSupporto)
	assert.Empty(t, bozza.SpeseAttrezzature)
}

func TestFormAppendItem(t *testing.T) {
	t.Parallel()
	f := NewForm(nil)
	require.NoError(t, f.AppendItem(ListaPartecipanti))
	require.NoError(t, f.AppendItem(ListaFigureSupporto))
	assert.Len(t, f.Bozza().Partecipanti, 2)
	assert.Len(t, f.Bozza().FigureSupporto, 1)

	assert.ErrorIs(t, f.AppendItem("sconosciuta"), ErrListaSconosciuta)
}

func TestFormAppendItemLimiteSpese(t *testing.T) {
	t.Parallel()
	f := NewForm(nil)
	for i := 0; i < domain.MaxVociSpesa; i++ {
		require.NoError(t, f.AppendItem(ListaSpeseServizi))
	}
	err := f.AppendItem(ListaSpeseServizi)
	assert.ErrorIs(t, err, ErrLimiteSuperato)
	// lo stato non è cambiato
	assert.Len(t, f.Bozza().SpeseServizi, domain.MaxVociSpesa)
}

func TestFormAppendAllegato(t *testing.T) {
	t.Parallel()
	f := NewForm(nil)
	for i := 0; i < domain.MaxAllegati; i++ {
		require.NoError(t, f.AppendAllegato(domain.Allegato{URL: "https://e.com/a.pdf", Name: "a.pdf"}))
	}
	assert.ErrorIs(t, f.AppendAllegato(domain.Allegato{}), ErrLimiteSuperato)
}

func TestFormRemoveItem(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		prepare func(t *testing.T, f *Form)
		lista   string
		idx     int
		wantErr error
	}{
		{
			name:    "il primo coprogramma non si rimuove",
			prepare: func(t *testing.T, f *Form) {},
			lista:   ListaCoprogramma,
			idx:     0,
			wantErr: ErrElementoObbligatorio,
		},
		{
			name:    "il primo partecipante non si rimuove",
			prepare: func(t *testing.T, f *Form) {},
			lista:   ListaPartecipanti,
			idx:     0,
			wantErr: ErrElementoObbligatorio,
		},
		{
			name: "secondo partecipante rimovibile",
			prepare: func(t *testing.T, f *Form) {
				require.NoError(t, f.AppendItem(ListaPartecipanti))
			},
			lista: ListaPartecipanti,
			idx:   1,
		},
		{
			name: "figura di supporto a indice zero rimovibile",
			prepare: func(t *testing.T, f *Form) {
				require.NoError(t, f.AppendItem(ListaFigureSupporto))
			},
			lista: ListaFigureSupporto,
			idx:   0,
		},
		{
			name:    "indice fuori dai limiti",
			prepare: func(t *testing.T, f *Form) {},
			lista:   ListaFigureSupporto,
			idx:     5,
			wantErr: ErrIndiceNonValido,
		},
		{
			name:    "indice negativo",
			prepare: func(t *testing.T, f *Form) {},
			lista:   ListaSpeseServizi,
			idx:     -1,
			wantErr: ErrIndiceNonValido,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewForm(nil)
			tc.prepare(t, f)
			err := f.RemoveItem(tc.lista, tc.idx)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestFormRemoveItemPreservaOrdine(t *testing.T) {
	t.Parallel()
	f := NewForm(nil)
	require.NoError(t, f.AppendItem(ListaSpeseServizi))
	require.NoError(t, f.AppendItem(ListaSpeseServizi))
	require.NoError(t, f.AppendItem(ListaSpeseServizi))
	require.NoError(t, f.UpdateField("speseServizi.0.descrizione", "a"))
	require.NoError(t, f.UpdateField("speseServizi.1.descrizione", "b"))
	require.NoError(t, f.UpdateField("speseServizi.2.descrizione", "c"))

	require.NoError(t, f.RemoveItem(ListaSpeseServizi, 1))

	voci := f.Bozza().SpeseServizi
	require.Len(t, voci, 2)
	assert.Equal(t, "a", voci[0].Descrizione)
	assert.Equal(t, "c", voci[1].Descrizione)
}

func TestFormUpdateField(t *testing.T) {
	t.Parallel()
	f := NewForm(nil)
	require.NoError(t, f.AppendItem(ListaPartecipanti))

	require.NoError(t, f.UpdateField("titoloProgetto", "Orto urbano"))
	require.NoError(t, f.UpdateField("referente.email", "x@example.com"))
	require.NoError(t, f.UpdateField("partecipanti.1.nome", "Marco"))
	require.NoError(t, f.UpdateField("speseGenerali.siae", "80"))

	bozza := f.Bozza()
	assert.Equal(t, "Orto urbano", bozza.TitoloProgetto)
	assert.Equal(t, "x@example.com", bozza.Referente.Email)
	assert.Equal(t, "Marco", bozza.Partecipanti[1].Nome)
	assert.Equal(t, "80", bozza.SpeseGenerali.Siae)

	assert.ErrorIs(t, f.UpdateField("campoInventato", "x"), ErrCampoSconosciuto)
	assert.ErrorIs(t, f.UpdateField("referente.ruolo", "x"), ErrCampoSconosciuto)
	assert.ErrorIs(t, f.UpdateField("partecipanti.9.nome", "x"), ErrIndiceNonValido)
	assert.ErrorIs(t, f.UpdateField("partecipanti.uno.nome", "x"), ErrIndiceNonValido)
}

func TestFormSubmit(t *testing.T) {
	t.Parallel()

	t.Run("errore di persistenza lascia la bozza intatta", func(t *testing.T) {
		t.Parallel()
		svc := &stubService{
			presenta: func(ctx context.Context, p domain.Proposta) (domain.Proposta, error) {
				return domain.Proposta{}, errors.New("db giù")
			},
		}
		f := NewForm(svc)
		require.NoError(t, f.UpdateField("titoloProgetto", "Orto urbano"))
		_, err := f.Submit(context.Background())
		require.Error(t, err)
		// riprovabile: lo stato è quello di prima
		assert.Equal(t, "Orto urbano", f.Bozza().TitoloProgetto)
	})

	t.Run("un solo invio alla volta", func(t *testing.T) {
		t.Parallel()
		inCorso := make(chan struct{})
		sblocca := make(chan struct{})
		svc := &stubService{
			presenta: func(ctx context.Context, p domain.Proposta) (domain.Proposta, error) {
				close(inCorso)
				<-sblocca
				return p, nil
			},
		}
		f := NewForm(svc)
		go func() {
			_, _ = f.Submit(context.Background())
		}()
		<-inCorso
		_, err := f.Submit(context.Background())
		assert.ErrorIs(t, err, ErrInvioInCorso)
		close(sblocca)
	})

	t.Run("dopo il reset si può reinviare", func(t *testing.T) {
		t.Parallel()
		svc := &stubService{
			presenta: func(ctx context.Context, p domain.Proposta) (domain.Proposta, error) {
				p.ID = 7
				return p, nil
			},
		}
		f := NewForm(svc)
		salvata, err := f.Submit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(7), salvata.ID)

		f.Reset()
		assert.Equal(t, domain.NuovaBozza(), f.Bozza())
	})
}
