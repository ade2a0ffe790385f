package report

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Serializzazione DOCX minimale: un pacchetto OOXML valido contiene i
// content types, la relazione verso document.xml e il documento stesso.
// Gli stili Title/Heading2 sono definiti in styles.xml così i riferimenti
// di paragrafo risolvono correttamente.

// DocxContentType è il MIME type dei pacchetti DOCX generati.
const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:rPr><w:b/><w:sz w:val="56"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:rPr><w:b/><w:sz w:val="32"/></w:rPr></w:style>
</w:styles>`

// WriteDocx serializza il documento come pacchetto DOCX sul writer dato.
func WriteDocx(w io.Writer, d *Document) error {
	zw := zip.NewWriter(w)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/document.xml", documentXML(d)},
	}
	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return errors.Wrapf(err, "creazione voce %s", p.name)
		}
		if _, err := f.Write([]byte(p.content)); err != nil {
			return errors.Wrapf(err, "scrittura voce %s", p.name)
		}
	}
	return zw.Close()
}

// DocxBytes è la variante in memoria di WriteDocx.
func DocxBytes(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteDocx(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func documentXML(d *Document) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, blk := range d.Blocks() {
		b.WriteString(`<w:p>`)
		switch blk.Kind {
		case BlockTitle:
			b.WriteString(`<w:pPr><w:pStyle w:val="Title"/></w:pPr>`)
		case BlockHeading:
			b.WriteString(`<w:pPr><w:pStyle w:val="Heading2"/></w:pPr>`)
		}
		b.WriteString(`<w:r><w:t xml:space="preserve">`)
		b.WriteString(escapeXML(blk.Text))
		b.WriteString(`</w:t></w:r></w:p>`)
	}
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	// EscapeText fallisce solo su writer che falliscono, mai su bytes.Buffer.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
