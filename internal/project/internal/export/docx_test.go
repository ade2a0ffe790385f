package export

import (
	"testing"

	"github.com/ecodeclub/ekit/slice"
	"github.com/intusaps/intus-website/internal/pkg/report"
	"github.com/intusaps/intus-website/internal/project/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func progettoCompleto() domain.Progetto {
	return domain.Progetto{
		ID:                   1,
		Titolo:               "Spazi Comuni",
		Categoria:            "rigenerazione",
		Status:               "in corso",
		DataInizio:           "2025-09-01",
		Luoghi:               []string{"Canicattì", "Agrigento"},
		NumeroPartecipanti:   "30",
		DescrizioneBreve:     "Recupero di spazi pubblici.",
		Contenuto:            "Prima parte.\n\nSeconda parte.",
		RuoloIntus:           "Capofila",
		EnteFinanziatore:     "Fondazione CON IL SUD",
		LineaDiFinanziamento: "Bando spazi 2025",
		YoutubeURL:           "https://youtu.be/xyz",
		YoutubeURLs:          []string{"https://youtu.be/extra"},
		Partner: []domain.Partner{
			{Nome: "Comune di Canicattì", Link: "https://comune.example.it", Capofila: false},
			{Nome: "Intus", Capofila: true},
		},
		Immagini: []string{"https://cdn.example.com/p1.jpg"},
		Prodotti: []domain.Prodotto{
			{Titolo: "Mappa di comunità", DescrizioneBreve: "Una mappa partecipata",
				Link: "https://mappa.example.it"},
			{Titolo: "Report finale", Immagine: "https://cdn.example.com/report.jpg"},
		},
	}
}

func testi(blocks []report.Block) []string {
	return slice.Map(blocks, func(_ int, b report.Block) string { return b.Text })
}

func TestDocumentoProgettoCompleto(t *testing.T) {
	t.Parallel()
	blocchi := testi(Documento(progettoCompleto(), nil).Blocks())

	assert.Contains(t, blocchi, "Luoghi")
	assert.Contains(t, blocchi, "Canicattì, Agrigento")
	assert.Contains(t, blocchi, "Ruolo di Intus")
	assert.Contains(t, blocchi, "Seconda parte.")
	assert.Contains(t, blocchi, "Video aggiuntivi")
	assert.Contains(t, blocchi, "1. https://youtu.be/extra")

	// i partner portano link e marcatore capofila
	assert.Contains(t, blocchi, "1. Comune di Canicattì (https://comune.example.it)")
	assert.Contains(t, blocchi, "2. Intus - Capofila")

	// i prodotti sono blocchi multipli separati da riga vuota
	assert.Contains(t, blocchi, "1. Mappa di comunità")
	assert.Contains(t, blocchi, "Una mappa partecipata")
	assert.Contains(t, blocchi, "Link: https://mappa.example.it")
	assert.Contains(t, blocchi, "2. Report finale")
	assert.Contains(t, blocchi, "Immagine: https://cdn.example.com/report.jpg")
	assert.Contains(t, blocchi, "")
}

func TestDocumentoProgettoSelezione(t *testing.T) {
	t.Parallel()
	blocchi := testi(Documento(progettoCompleto(), []string{"status", "partner"}).Blocks())

	assert.Contains(t, blocchi, "Stato")
	assert.Contains(t, blocchi, "Partner")
	assert.NotContains(t, blocchi, "Categoria")
	assert.NotContains(t, blocchi, "Contenuto")
	assert.NotContains(t, blocchi, "Prodotti realizzati")
}

func TestDocumentoProgettoVuoto(t *testing.T) {
	t.Parallel()
	d := Documento(domain.Progetto{}, nil)
	require.Len(t, d.Blocks(), 1)
	assert.Equal(t, "Progetto", d.Title())
}

func TestDOCXNomeFile(t *testing.T) {
	t.Parallel()
	_, nome, err := DOCX(domain.Progetto{Titolo: "Spazi Comuni"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "spazi-comuni.docx", nome)
}
