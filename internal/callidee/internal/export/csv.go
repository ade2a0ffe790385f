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

// Package export produce gli artefatti scaricabili della dashboard:
// CSV riepilogativo, documento DOCX per singola proposta e lettera d'esito.
package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/intusaps/intus-website/internal/callidee/internal/domain"
	"github.com/intusaps/intus-website/internal/pkg/report"
)

// Intestazione fissa del CSV, una riga per proposta. L'ordine delle colonne
// è parte del contratto con i fogli di calcolo della segreteria.
var intestazioneCSV = []string{
	"ID",
	"Titolo Progetto",
	"Descrizione Progetto",
	"Data Inizio",
	"Data Fine",
	"Referente Nome",
	"Referente Cognome",
	"Referente Email",
	"Referente Telefono",
	"Referente Data Nascita",
	"Numero Partecipanti",
	"Luogo Svolgimento",
	"Categoria",
	"Categoria Descrizione",
	"Tipo Evento",
	"Descrizione Evento",
	"Altro",
	"Partecipanti JSON",
	"Totale Spese Attrezzature",
	"Totale Spese Servizi",
	"SIAE",
	"Assicurazione",
	"Rimborso Spese",
	"Totale Complessivo",
	"Punteggio Valutazione",
	"Stato Valutazione",
	"Note Valutatore",
	"Data Valutazione",
	"Valutatore",
	"Data Creazione",
	"Timestamp Creazione",
}

// CSV serializza le proposte con BOM UTF-8 in testa e terminatori CRLF,
// per compatibilità con i fogli di calcolo.
func CSV(proposte []domain.Proposta) []byte {
	var b strings.Builder
	b.WriteString("\ufeff")
	scriviRiga(&b, intestazioneCSV)
	for _, p := range proposte {
		scriviRiga(&b, rigaCSV(p))
	}
	return []byte(b.String())
}

func scriviRiga(b *strings.Builder, campi []string) {
	for i, c := range campi {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeCSV(c))
	}
	b.WriteString("\r\n")
}

// escapeCSV applica il quoting RFC 4180: il campo viene racchiuso tra doppi
// apici se contiene virgole, apici, newline o CR; gli apici interni sono
// raddoppiati.
func escapeCSV(campo string) string {
	if !strings.ContainsAny(campo, ",\"\n\r") {
		return campo
	}
	return `"` + strings.ReplaceAll(campo, `"`, `""`) + `"`
}

func rigaCSV(p domain.Proposta) []string {
	partecipantiJSON, _ := json.Marshal(p.Partecipanti)
	var punteggio, noteValutatore, dataValutazione, valutatore string
	if p.Valutazione != nil {
		punteggio = strconv.FormatFloat(p.Valutazione.PunteggioEffettivo(), 'f', -1, 64)
		noteValutatore = p.Valutazione.NoteValutatore
		valutatore = p.Valutazione.Valutatore
		if !p.Valutazione.DataValutazione.IsZero() {
			dataValutazione = p.Valutazione.DataValutazione.Format(time.RFC3339)
		}
	}
	return []string{
		idPubblico(p),
		p.TitoloProgetto,
		p.DescrizioneProgetto,
		p.DataInizio,
		p.DataFine,
		p.Referente.Nome,
		p.Referente.Cognome,
		p.Referente.Email,
		p.Referente.Telefono,
		p.Referente.DataNascita,
		p.NumeroPartecipanti,
		p.LuogoSvolgimento,
		p.Categoria,
		p.CategoriaDescrizione,
		p.TipoEvento,
		p.DescrizioneEvento,
		p.Altro,
		string(partecipantiJSON),
		importo(domain.Subtotale(p.SpeseAttrezzature)),
		importo(domain.Subtotale(p.SpeseServizi)),
		importo(domain.ParseImporto(p.SpeseGenerali.Siae)),
		importo(domain.ParseImporto(p.SpeseGenerali.Assicurazione)),
		importo(domain.ParseImporto(p.SpeseGenerali.RimborsoSpese)),
		importo(domain.TotaleComplessivo(p)),
		punteggio,
		string(p.StatoCorrente()),
		noteValutatore,
		dataValutazione,
		valutatore,
		p.CreatedAt.Format("02/01/2006"),
		p.CreatedAt.Format(time.RFC3339),
	}
}

func importo(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func idPubblico(p domain.Proposta) string {
	if p.SN != "" {
		return p.SN
	}
	return strconv.FormatInt(p.ID, 10)
}

// NomeFileCSV segue lo schema richieste_call_idee_<data>.csv per l'export
// massivo e richiesta_<titolo>_<data>.csv per la singola proposta.
func NomeFileCSV(proposte []domain.Proposta, oggi time.Time) string {
	data := oggi.Format("2006-01-02")
	if len(proposte) == 1 {
		titolo := report.SanitizeFilename(proposte[0].TitoloProgetto, "richiesta")
		return fmt.Sprintf("richiesta_%s_%s.csv", titolo, data)
	}
	return fmt.Sprintf("richieste_call_idee_%s.csv", data)
}
