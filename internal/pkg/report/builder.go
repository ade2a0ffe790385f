// Copyright 2024 intusaps
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package report costruisce documenti strutturati (titolo, sezioni, paragrafi)
// a partire dalle entità del sito, e li serializza in formato DOCX.
package report

import (
	"fmt"
	"regexp"
	"strings"
)

type BlockKind uint8

const (
	BlockTitle BlockKind = iota
	BlockHeading
	BlockPara
)

type Block struct {
	Kind BlockKind
	Text string
}

// Document è una sequenza ordinata di blocchi tipizzati.
type Document struct {
	blocks []Block
}

func New(title string) *Document {
	return &Document{blocks: []Block{{Kind: BlockTitle, Text: title}}}
}

func (d *Document) Heading(text string) *Document {
	d.blocks = append(d.blocks, Block{Kind: BlockHeading, Text: text})
	return d
}

func (d *Document) Para(text string) *Document {
	d.blocks = append(d.blocks, Block{Kind: BlockPara, Text: text})
	return d
}

var paragraphSep = regexp.MustCompile(`\n\n+`)

// Paragraphs spezza un testo multi-paragrafo sulle righe vuote ed emette un
// blocco per ogni frammento non vuoto.
func (d *Document) Paragraphs(text string) *Document {
	for _, part := range paragraphSep.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d.Para(part)
	}
	return d
}

// Section emette un'intestazione seguita dalle righe date. Se non ci sono
// righe la sezione viene omessa del tutto.
func (d *Document) Section(title string, lines ...string) *Document {
	if len(lines) == 0 {
		return d
	}
	d.Heading(title)
	for _, l := range lines {
		d.Para(l)
	}
	return d
}

func (d *Document) Blocks() []Block {
	return d.blocks
}

func (d *Document) Title() string {
	if len(d.blocks) == 0 {
		return ""
	}
	return d.blocks[0].Text
}

// ItemLine rende un sotto-elemento con prefisso a indice 1-based,
// concatenando solo le parti non vuote.
func ItemLine(idx int, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return fmt.Sprintf("%d. %s", idx+1, strings.Join(kept, " "))
}

// Field rende "Etichetta: valore", oppure stringa vuota se il valore manca,
// così la riga può essere scartata dal chiamante.
func Field(label, value string) string {
	if value == "" {
		return ""
	}
	return label + ": " + value
}

// Euro formatta un importo in stile it-IT: separatore migliaia '.',
// decimali ',', simbolo in testa.
func Euro(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	whole := fmt.Sprintf("%.2f", v)
	intPart := whole[:len(whole)-3]
	decPart := whole[len(whole)-2:]
	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	out := "€ " + b.String() + "," + decPart
	if neg {
		out = "-" + out
	}
	return out
}

var filenameUnsafe = regexp.MustCompile(`[^a-z0-9_-]+`)

// SanitizeFilename normalizza il nome dell'entità per usarlo come nome file:
// minuscole, tutto ciò che non è [a-z0-9_-] diventa '-'.
func SanitizeFilename(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fallback
	}
	return filenameUnsafe.ReplaceAllString(strings.ToLower(name), "-")
}
