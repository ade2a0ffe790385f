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

package export

import (
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/intusaps/intus-website/internal/blog/internal/domain"
	"github.com/intusaps/intus-website/internal/pkg/report"
)

// Documento costruisce il DOCX di un articolo limitato ai campi selezionati.
// L'ordine delle sezioni è fisso; una selezione vuota include tutto.
func Documento(a domain.Articolo, selected []string) *report.Document {
	if len(selected) == 0 {
		selected = domain.CampiExport()
	}
	inclusi := func(campo string) bool {
		return slice.Contains(selected, campo)
	}

	titolo := a.Titolo
	if titolo == "" {
		titolo = "Articolo"
	}
	d := report.New(titolo)

	if inclusi("categoria") && a.Categoria != "" {
		d.Section("Categoria", a.Categoria)
	}
	if inclusi("autore") && a.Autore != "" {
		d.Section("Autore", a.Autore)
	}
	if inclusi("created_at") && a.Ctime > 0 {
		d.Section("Creato il",
			time.UnixMilli(a.Ctime).Format("02/01/2006 15:04"))
	}
	if inclusi("excerpt") && a.Excerpt != "" {
		d.Section("Anteprima", a.Excerpt)
	}
	if inclusi("contenuto") && a.Contenuto != "" {
		d.Heading("Contenuto")
		d.Paragraphs(a.Contenuto)
	}
	if inclusi("youtube_url") && a.YoutubeURL != "" {
		d.Section("Video", a.YoutubeURL)
	}
	if inclusi("copertina_url") && a.CopertinaURL != "" {
		d.Section("Copertina", a.CopertinaURL)
	}
	if inclusi("immagini") && len(a.Immagini) > 0 {
		d.Heading("Immagini")
		for i, url := range a.Immagini {
			d.Para(report.ItemLine(i, url))
		}
	}
	return d
}

// DOCX ritorna i byte del pacchetto e il nome file suggerito.
func DOCX(a domain.Articolo, selected []string) ([]byte, string, error) {
	data, err := report.DocxBytes(Documento(a, selected))
	if err != nil {
		return nil, "", err
	}
	nome := report.SanitizeFilename(a.Titolo, "articolo") + ".docx"
	return data, nome, nil
}
