package export

import (
	"fmt"
	"strconv"

	"github.com/intusaps/intus-website/internal/callidee/internal/domain"
	"github.com/intusaps/intus-website/internal/pkg/report"
)

// Documento mappa la proposta sulla sequenza di blocchi del report:
// titolo, sezione "Dettagli" con i soli scalari presenti, paragrafi spezzati
// sulle righe vuote, sotto-elementi numerati con indice 1-based.
func Documento(p domain.Proposta) *report.Document {
	d := report.New(titoloOFallback(p))

	dettagli := righeNonVuote(
		report.Field("Categoria", p.Categoria),
		report.Field("Tipo evento", p.TipoEvento),
		report.Field("Luogo di svolgimento", p.LuogoSvolgimento),
		report.Field("Data inizio", p.DataInizio),
		report.Field("Data fine", p.DataFine),
		report.Field("Numero partecipanti", p.NumeroPartecipanti),
		report.Field("Data presentazione", dataPresentazione(p)),
	)
	d.Section("Dettagli", dettagli...)

	if p.DescrizioneProgetto != "" {
		d.Heading("Descrizione del progetto")
		d.Paragraphs(p.DescrizioneProgetto)
	}
	if p.CategoriaDescrizione != "" {
		d.Heading("Descrizione della categoria")
		d.Paragraphs(p.CategoriaDescrizione)
	}

	if len(p.Coprogramma) > 0 {
		d.Heading("Coprogramma")
		for i, a := range p.Coprogramma {
			d.Para(report.ItemLine(i,
				report.Field("Attività", a.Attivita),
				report.Field("Descrizione", a.Descrizione),
				report.Field("Mesi", a.Mesi)))
		}
	}

	d.Section("Referente", righeNonVuote(
		report.Field("Nome", p.Referente.Nome+" "+p.Referente.Cognome),
		report.Field("Email", p.Referente.Email),
		report.Field("Telefono", p.Referente.Telefono),
		report.Field("Data di nascita", p.Referente.DataNascita),
		report.Field("Codice fiscale", p.Referente.CodiceFiscale),
	)...)

	if p.DescrizioneGruppo != "" {
		d.Heading("Il gruppo")
		d.Paragraphs(p.DescrizioneGruppo)
	}
	if len(p.Partecipanti) > 0 {
		d.Heading(fmt.Sprintf("Partecipanti (%d)", len(p.Partecipanti)))
		for i, part := range p.Partecipanti {
			d.Para(report.ItemLine(i,
				part.Nome+" "+part.Cognome,
				report.Field("Email", part.Email),
				report.Field("Telefono", part.Telefono),
				report.Field("Data di nascita", part.DataNascita)))
		}
	}
	if len(p.FigureSupporto) > 0 {
		d.Heading("Figure di supporto")
		for i, f := range p.FigureSupporto {
			d.Para(report.ItemLine(i,
				f.Nome+" "+f.Cognome,
				report.Field("Email", f.Email),
				report.Field("Telefono", f.Telefono),
				report.Field("Ruolo", f.Ruolo)))
		}
	}

	if p.DescrizioneEvento != "" {
		d.Heading("Evento pubblico")
		d.Paragraphs(p.DescrizioneEvento)
	}
	if p.Altro != "" {
		d.Heading("Altro")
		d.Paragraphs(p.Altro)
	}
	if p.Autorizzazioni != "" {
		d.Heading("Autorizzazioni")
		d.Paragraphs(p.Autorizzazioni)
	}

	if len(p.Allegati) > 0 {
		d.Heading("Allegati")
		for i, a := range p.Allegati {
			d.Para(report.ItemLine(i, a.Name, "("+a.URL+")"))
		}
	}

	pianoFinanziario(d, p)
	valutazione(d, p.Valutazione)
	return d
}

func pianoFinanziario(d *report.Document, p domain.Proposta) {
	if len(p.SpeseAttrezzature) == 0 && len(p.SpeseServizi) == 0 &&
		domain.TotaleGenerali(p.SpeseGenerali) == 0 {
		return
	}
	d.Heading("Piano finanziario")
	vociSpesa(d, "Spese per attrezzature", p.SpeseAttrezzature)
	vociSpesa(d, "Spese per prestazioni di servizi", p.SpeseServizi)

	generali := righeNonVuote(
		vocePresente("SIAE", p.SpeseGenerali.Siae),
		vocePresente("Assicurazione", p.SpeseGenerali.Assicurazione),
		vocePresente("Rimborso spese", p.SpeseGenerali.RimborsoSpese),
	)
	d.Section("Spese generali", generali...)
	d.Para(report.Field("Totale complessivo", report.Euro(domain.TotaleComplessivo(p))))
}

func vociSpesa(d *report.Document, titolo string, voci []domain.VoceSpesa) {
	if len(voci) == 0 {
		return
	}
	d.Heading(titolo)
	for i, v := range voci {
		d.Para(report.ItemLine(i,
			v.Descrizione,
			"(x"+v.Quantita+")",
			report.Euro(domain.TotaleLinea(v))))
	}
	d.Para(report.Field("Subtotale", report.Euro(domain.Subtotale(voci))))
}

func vocePresente(etichetta, valore string) string {
	if valore == "" {
		return ""
	}
	return report.Field(etichetta, report.Euro(domain.ParseImporto(valore)))
}

// La sezione valutazione è emessa solo se presente; il punteggio a criteri
// (0-100) ha precedenza su quello storico (0-10).
func valutazione(d *report.Document, v *domain.Valutazione) {
	if v == nil {
		return
	}
	d.Heading("Valutazione")
	d.Para(report.Field("Stato", string(v.Stato)))
	if pt := v.PunteggioEffettivo(); pt > 0 {
		d.Para(report.Field("Punteggio", strconv.FormatFloat(pt, 'f', -1, 64)))
	}
	if v.Criteri != nil {
		c := v.Criteri
		d.Para(report.Field("Cantierabilità", strconv.Itoa(c.Cantierabilita)))
		d.Para(report.Field("Sostenibilità", strconv.Itoa(c.Sostenibilita)))
		d.Para(report.Field("Risposta al territorio", strconv.Itoa(c.RispostaTerritorio)))
		d.Para(report.Field("Coinvolgimento giovani", strconv.Itoa(c.CoinvolgimentoGiovani)))
		d.Para(report.Field("Promozione del territorio", strconv.Itoa(c.PromozioneTerritorio)))
	}
	if v.NoteValutatore != "" {
		d.Paragraphs(v.NoteValutatore)
	}
	if !v.DataValutazione.IsZero() {
		d.Para(report.Field("Data valutazione", v.DataValutazione.Format("02/01/2006 15:04")))
	}
	if v.Valutatore != "" {
		d.Para(report.Field("Valutatore", v.Valutatore))
	}
}

// DOCX serializza la proposta e ritorna bytes e nome file.
func DOCX(p domain.Proposta) ([]byte, string, error) {
	data, err := report.DocxBytes(Documento(p))
	if err != nil {
		return nil, "", err
	}
	nome := report.SanitizeFilename(p.TitoloProgetto, "richiesta") + ".docx"
	return data, nome, nil
}

func titoloOFallback(p domain.Proposta) string {
	if p.TitoloProgetto != "" {
		return p.TitoloProgetto
	}
	return "Richiesta Call Idee Giovani"
}

func dataPresentazione(p domain.Proposta) string {
	if p.CreatedAt.IsZero() {
		return ""
	}
	return p.CreatedAt.Format("02/01/2006 15:04")
}

func righeNonVuote(righe ...string) []string {
	out := make([]string, 0, len(righe))
	for _, r := range righe {
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}
