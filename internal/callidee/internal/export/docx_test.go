package export

import (
	"testing"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/intusaps/intus-website/internal/callidee/internal/domain"
	"github.com/intusaps/intus-website/internal/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testi(blocks []report.Block) []string {
	return slice.Map(blocks, func(_ int, b report.Block) string { return b.Text })
}

func TestDocumentoTitolo(t *testing.T) {
	t.Parallel()
	d := Documento(domain.Proposta{TitoloProgetto: "Orto urbano"})
	assert.Equal(t, "Orto urbano", d.Title())

	// titolo di ripiego quando manca
	d = Documento(domain.Proposta{})
	assert.Equal(t, "Richiesta Call Idee Giovani", d.Title())
}

func TestDocumentoSezioniOpzionali(t *testing.T) {
	t.Parallel()
	// una proposta spoglia non produce sezioni vuote
	d := Documento(domain.Proposta{TitoloProgetto: "Minima"})
	blocchi := testi(d.Blocks())
	assert.NotContains(t, blocchi, "Coprogramma")
	assert.NotContains(t, blocchi, "Piano finanziario")
	assert.NotContains(t, blocchi, "Valutazione")
	assert.NotContains(t, blocchi, "Allegati")
}

func TestDocumentoCompleto(t *testing.T) {
	t.Parallel()
	p := domain.Proposta{
		TitoloProgetto:      "Orto urbano",
		DescrizioneProgetto: "Primo paragrafo.\n\nSecondo paragrafo.",
		Categoria:           "ambientale",
		Coprogramma: []domain.AttivitaCoprogramma{
			{Attivita: "Semina", Descrizione: "Preparazione", Mesi: "marzo"},
		},
		Referente: domain.Referente{Nome: "Giulia", Cognome: "Rossi", Email: "g@example.com"},
		Partecipanti: []domain.Partecipante{
			{Nome: "Marco", Cognome: "Bianchi"},
			{Nome: "Sara", Cognome: "Verdi"},
		},
		Allegati: []domain.Allegato{
			{Name: "preventivo.pdf", URL: "https://e.com/p.pdf"},
		},
		SpeseAttrezzature: []domain.VoceSpesa{
			{Descrizione: "attrezzi", Costo: "1500", Quantita: "1"},
		},
		Valutazione: &domain.Valutazione{
			Stato:           domain.StatoApprovato,
			PunteggioTotale: 72,
			DataValutazione: time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
		},
	}
	blocchi := testi(Documento(p).Blocks())

	assert.Contains(t, blocchi, "Descrizione del progetto")
	// le righe vuote spezzano in paragrafi distinti
	assert.Contains(t, blocchi, "Primo paragrafo.")
	assert.Contains(t, blocchi, "Secondo paragrafo.")

	// i sotto-elementi sono numerati da 1
	assert.Contains(t, blocchi, "1. Attività: Semina Descrizione: Preparazione Mesi: marzo")
	assert.Contains(t, blocchi, "Partecipanti (2)")
	assert.Contains(t, blocchi, "2. Sara Verdi")
	assert.Contains(t, blocchi, "1. preventivo.pdf (https://e.com/p.pdf)")

	// piano finanziario con importi in stile it-IT
	assert.Contains(t, blocchi, "1. attrezzi (x1) € 1.500,00")
	assert.Contains(t, blocchi, "Subtotale: € 1.500,00")
	assert.Contains(t, blocchi, "Totale complessivo: € 1.500,00")

	assert.Contains(t, blocchi, "Valutazione")
	assert.Contains(t, blocchi, "Stato: approvato")
	assert.Contains(t, blocchi, "Punteggio: 72")
}

func TestDOCX(t *testing.T) {
	t.Parallel()
	data, nome, err := DOCX(domain.Proposta{TitoloProgetto: "Orto Urbano 2026"})
	require.NoError(t, err)
	assert.Equal(t, "orto-urbano-2026.docx", nome)
	// un archivio zip inizia con PK
	require.Greater(t, len(data), 4)
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}
