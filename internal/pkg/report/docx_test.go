package report

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocxBytes(t *testing.T) {
	t.Parallel()
	d := New("Relazione <2026>").
		Heading("Sezione").
		Para("testo & altro")

	data, err := DocxBytes(d)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	voci := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		voci[f.Name] = string(content)
	}

	require.Contains(t, voci, "[Content_Types].xml")
	require.Contains(t, voci, "_rels/.rels")
	require.Contains(t, voci, "word/styles.xml")
	require.Contains(t, voci, "word/document.xml")

	docXML := voci["word/document.xml"]
	// i caratteri riservati XML sono sempre escapati
	assert.Contains(t, docXML, "Relazione &lt;2026&gt;")
	assert.Contains(t, docXML, "testo &amp; altro")
	assert.Contains(t, docXML, `<w:pStyle w:val="Title"/>`)
	assert.Contains(t, docXML, `<w:pStyle w:val="Heading2"/>`)
	assert.NotContains(t, docXML, "<2026>")
}
