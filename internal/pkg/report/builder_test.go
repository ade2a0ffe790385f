package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentBuilder(t *testing.T) {
	t.Parallel()
	d := New("Titolo").
		Heading("Sezione").
		Para("riga uno").
		Paragraphs("primo\n\n\nsecondo\n\n   \n\nterzo")

	assert.Equal(t, "Titolo", d.Title())
	blocks := d.Blocks()
	require.Len(t, blocks, 6)
	assert.Equal(t, BlockTitle, blocks[0].Kind)
	assert.Equal(t, BlockHeading, blocks[1].Kind)
	assert.Equal(t, "secondo", blocks[4].Text)
	assert.Equal(t, "terzo", blocks[5].Text)
}

func TestSectionVuotaOmessa(t *testing.T) {
	t.Parallel()
	d := New("Titolo").Section("Vuota")
	assert.Len(t, d.Blocks(), 1)

	d.Section("Piena", "a", "b")
	assert.Len(t, d.Blocks(), 4)
}

func TestItemLine(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1. Mario Rossi", ItemLine(0, "Mario Rossi"))
	assert.Equal(t, "3. a b", ItemLine(2, "a", "", "b"))
}

func TestField(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Email: x@y.it", Field("Email", "x@y.it"))
	assert.Empty(t, Field("Email", ""))
}

func TestEuro(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "zero", input: 0, want: "€ 0,00"},
		{name: "decimali", input: 12.5, want: "€ 12,50"},
		{name: "migliaia", input: 1234.56, want: "€ 1.234,56"},
		{name: "milioni", input: 1234567.89, want: "€ 1.234.567,89"},
		{name: "negativo", input: -42, want: "-€ 42,00"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Euro(tc.input))
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "orto-urbano-2026", SanitizeFilename("Orto Urbano 2026", "doc"))
	assert.Equal(t, "caff-", SanitizeFilename("Caffè", "doc"))
	assert.Equal(t, "doc", SanitizeFilename("   ", "doc"))
}
