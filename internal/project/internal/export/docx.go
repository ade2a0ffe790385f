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
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/intusaps/intus-website/internal/pkg/report"
	"github.com/intusaps/intus-website/internal/project/internal/domain"
)

// Documento costruisce il DOCX di un progetto limitato ai campi selezionati,
// nell'ordine fisso delle sezioni. Una selezione vuota include tutto.
func Documento(p domain.Progetto, selected []string) *report.Document {
	if len(selected) == 0 {
		selected = domain.CampiExport()
	}
	inclusi := func(campo string) bool {
		return slice.Contains(selected, campo)
	}

	titolo := p.Titolo
	if titolo == "" {
		titolo = "Progetto"
	}
	d := report.New(titolo)

	if inclusi("categoria") && p.Categoria != "" {
		d.Section("Categoria", p.Categoria)
	}
	if inclusi("status") && p.Status != "" {
		d.Section("Stato", p.Status)
	}
	if inclusi("data_inizio") && p.DataInizio != "" {
		d.Section("Data inizio", p.DataInizio)
	}
	if inclusi("luoghi") && len(p.Luoghi) > 0 {
		d.Section("Luoghi", strings.Join(p.Luoghi, ", "))
	}
	if inclusi("numero_partecipanti") && p.NumeroPartecipanti != "" {
		d.Section("Partecipanti", p.NumeroPartecipanti)
	}
	if inclusi("descrizione_breve") && p.DescrizioneBreve != "" {
		d.Section("Descrizione breve", p.DescrizioneBreve)
	}
	if inclusi("contenuto") && p.Contenuto != "" {
		d.Heading("Contenuto")
		d.Paragraphs(p.Contenuto)
	}
	if inclusi("ruolo_intus") && p.RuoloIntus != "" {
		d.Section("Ruolo di Intus", p.RuoloIntus)
	}
	if inclusi("partecipanti_diretti") && p.PartecipantiDiretti != "" {
		d.Section("Partecipanti diretti", p.PartecipantiDiretti)
	}
	if inclusi("partecipanti_indiretti") && p.PartecipantiIndiretti != "" {
		d.Section("Partecipanti indiretti", p.PartecipantiIndiretti)
	}
	if inclusi("ente_finanziatore") && p.EnteFinanziatore != "" {
		d.Section("Ente finanziatore", p.EnteFinanziatore)
	}
	if inclusi("linea_di_finanziamento") && p.LineaDiFinanziamento != "" {
		d.Section("Linea di finanziamento", p.LineaDiFinanziamento)
	}
	if inclusi("youtube_url") && p.YoutubeURL != "" {
		d.Section("Video", p.YoutubeURL)
	}
	if inclusi("youtube_urls") && len(p.YoutubeURLs) > 0 {
		d.Heading("Video aggiuntivi")
		for i, url := range p.YoutubeURLs {
			d.Para(report.ItemLine(i, url))
		}
	}
	if inclusi("partner") && len(p.Partner) > 0 {
		d.Heading("Partner")
		for i, pa := range p.Partner {
			link := ""
			if pa.Link != "" {
				link = "(" + pa.Link + ")"
			}
			capofila := ""
			if pa.Capofila {
				capofila = "- Capofila"
			}
			d.Para(report.ItemLine(i, pa.Nome, link, capofila))
		}
	}
	if inclusi("immagini") && len(p.Immagini) > 0 {
		d.Heading("Immagini")
		for i, url := range p.Immagini {
			d.Para(report.ItemLine(i, url))
		}
	}
	if inclusi("prodotti") && len(p.Prodotti) > 0 {
		d.Heading("Prodotti realizzati")
		for i, prod := range p.Prodotti {
			if prod.Titolo != "" {
				d.Para(report.ItemLine(i, prod.Titolo))
			}
			if prod.DescrizioneBreve != "" {
				d.Para(prod.DescrizioneBreve)
			}
			if prod.Link != "" {
				d.Para("Link: " + prod.Link)
			}
			if prod.Immagine != "" {
				d.Para("Immagine: " + prod.Immagine)
			}
			if i < len(p.Prodotti)-1 {
				d.Para("")
			}
		}
	}
	return d
}

// DOCX ritorna i byte del pacchetto e il nome file suggerito.
func DOCX(p domain.Progetto, selected []string) ([]byte, string, error) {
	data, err := report.DocxBytes(Documento(p, selected))
	if err != nil {
		return nil, "", err
	}
	nome := report.SanitizeFilename(p.Titolo, "progetto") + ".docx"
	return data, nome, nil
}
