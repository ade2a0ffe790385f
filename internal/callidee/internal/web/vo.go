package web

import (
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/intusaps/intus-website/internal/callidee/internal/domain"
)

// Proposta è la rappresentazione sul filo di una candidatura. I nomi dei
// campi annidati seguono il formato storico del form pubblico.
type Proposta struct {
	ID                   int64            `json:"id,omitempty"`
	SN                   string           `json:"sn,omitempty"`
	TitoloProgetto       string           `json:"titolo_progetto"`
	DescrizioneProgetto  string           `json:"descrizione_progetto"`
	Coprogramma          []Attivita       `json:"coprogramma"`
	DataInizio           string           `json:"data_inizio"`
	DataFine             string           `json:"data_fine"`
	Autorizzazioni       string           `json:"autorizzazioni,omitempty"`
	Referente            Referente        `json:"referente"`
	NumeroPartecipanti   string           `json:"numero_partecipanti"`
	DescrizioneGruppo    string           `json:"descrizione_gruppo"`
	Partecipanti         []Partecipante   `json:"partecipanti"`
	FigureSupporto       []FiguraSupporto `json:"figure_supporto,omitempty"`
	LuogoSvolgimento     string           `json:"luogo_svolgimento"`
	Categoria            string           `json:"categoria"`
	CategoriaDescrizione string           `json:"categoria_descrizione,omitempty"`
	TipoEvento           string           `json:"tipo_evento"`
	DescrizioneEvento    string           `json:"descrizione_evento,omitempty"`
	Altro                string           `json:"altro,omitempty"`
	Allegati             []Allegato       `json:"allegati,omitempty"`
	SpeseAttrezzature    []VoceSpesa      `json:"spese_attrezzature,omitempty"`
	SpeseServizi         []VoceSpesa      `json:"spese_servizi,omitempty"`
	SpeseGenerali        SpeseGenerali    `json:"spese_generali,omitempty"`
	Valutazione          *Valutazione     `json:"valutazione,omitempty"`
	Stato                string           `json:"stato,omitempty"`
	CreatedAt            string           `json:"created_at,omitempty"`
}

type Referente struct {
	Nome          string `json:"nome"`
	Cognome       string `json:"cognome"`
	Email         string `json:"email"`
	Telefono      string `json:"telefono"`
	DataNascita   string `json:"dataNascita"`
	CodiceFiscale string `json:"codiceFiscale"`
}

type Partecipante struct {
	Nome        string `json:"nome"`
	Cognome     string `json:"cognome"`
	Email       string `json:"email"`
	Telefono    string `json:"telefono"`
	DataNascita string `json:"dataNascita"`
}

type FiguraSupporto struct {
	Nome     string `json:"nome"`
	Cognome  string `json:"cognome"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Ruolo    string `json:"ruolo"`
}

type Attivita struct {
	Attivita    string `json:"attivita"`
	Descrizione string `json:"descrizione"`
	Mesi        string `json:"mesi"`
}

type VoceSpesa struct {
	Descrizione string `json:"descrizione"`
	Costo       string `json:"costo"`
	Quantita    string `json:"quantita"`
}

type SpeseGenerali struct {
	Siae          string `json:"siae,omitempty"`
	Assicurazione string `json:"assicurazione,omitempty"`
	RimborsoSpese string `json:"rimborsoSpese,omitempty"`
}

type Allegato struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

type Valutazione struct {
	Punteggio       float64  `json:"punteggio,omitempty"`
	PunteggioTotale int      `json:"punteggio_totale,omitempty"`
	Criteri         *Criteri `json:"criteri,omitempty"`
	Stato           string   `json:"stato"`
	NoteValutatore  string   `json:"note_valutatore"`
	DataValutazione string   `json:"data_valutazione,omitempty"`
	Valutatore      string   `json:"valutatore,omitempty"`
}

type Criteri struct {
	Cantierabilita        int `json:"cantierabilita"`
	Sostenibilita         int `json:"sostenibilita"`
	RispostaTerritorio    int `json:"risposta_territorio"`
	CoinvolgimentoGiovani int `json:"coinvolgimento_giovani"`
	PromozioneTerritorio  int `json:"promozione_territorio"`
}

type PresentaReq struct {
	Proposta Proposta `json:"proposta"`
}

type PropostaID struct {
	ID int64 `json:"id"`
}

type ListaReq struct {
	Ricerca   string `json:"ricerca,omitempty"`
	Categoria string `json:"categoria,omitempty"`
	Stato     string `json:"stato,omitempty"`
}

type ListaProposte struct {
	Proposte []Proposta `json:"proposte"`
	Totale   int        `json:"totale"`
}

type SalvaValutazioneReq struct {
	ID          int64       `json:"id"`
	Valutazione Valutazione `json:"valutazione"`
}

func (p Proposta) toDomain() domain.Proposta {
	return domain.Proposta{
		ID:                  p.ID,
		SN:                  p.SN,
		TitoloProgetto:      p.TitoloProgetto,
		DescrizioneProgetto: p.DescrizioneProgetto,
		Coprogramma: slice.Map(p.Coprogramma, func(idx int, a Attivita) domain.AttivitaCoprogramma {
			return domain.AttivitaCoprogramma(a)
		}),
		DataInizio:         p.DataInizio,
		DataFine:           p.DataFine,
		Autorizzazioni:     p.Autorizzazioni,
		Referente:          domain.Referente(p.Referente),
		NumeroPartecipanti: p.NumeroPartecipanti,
		DescrizioneGruppo:  p.DescrizioneGruppo,
		Partecipanti: slice.Map(p.Partecipanti, func(idx int, pa Partecipante) domain.Partecipante {
			return domain.Partecipante(pa)
		}),
		FigureSupporto: slice.Map(p.FigureSupporto, func(idx int, f FiguraSupporto) domain.FiguraSupporto {
			return domain.FiguraSupporto(f)
		}),
		LuogoSvolgimento:     p.LuogoSvolgimento,
		Categoria:            p.Categoria,
		CategoriaDescrizione: p.CategoriaDescrizione,
		TipoEvento:           p.TipoEvento,
		DescrizioneEvento:    p.DescrizioneEvento,
		Altro:                p.Altro,
		Allegati: slice.Map(p.Allegati, func(idx int, a Allegato) domain.Allegato {
			return domain.Allegato(a)
		}),
		SpeseAttrezzature: slice.Map(p.SpeseAttrezzature, func(idx int, v VoceSpesa) domain.VoceSpesa {
			return domain.VoceSpesa(v)
		}),
		SpeseServizi: slice.Map(p.SpeseServizi, func(idx int, v VoceSpesa) domain.VoceSpesa {
			return domain.VoceSpesa(v)
		}),
		SpeseGenerali: domain.SpeseGenerali(p.SpeseGenerali),
	}
}

func (v Valutazione) toDomain() domain.Valutazione {
	res := domain.Valutazione{
		Punteggio:       v.Punteggio,
		PunteggioTotale: v.PunteggioTotale,
		Stato:           domain.StatoValutazione(v.Stato),
		NoteValutatore:  v.NoteValutatore,
		Valutatore:      v.Valutatore,
	}
	if v.Criteri != nil {
		c := domain.CriteriValutazione(*v.Criteri)
		res.Criteri = &c
	}
	return res
}

func newProposta(p domain.Proposta) Proposta {
	return Proposta{
		ID:                  p.ID,
		SN:                  p.SN,
		TitoloProgetto:      p.TitoloProgetto,
		DescrizioneProgetto: p.DescrizioneProgetto,
		Coprogramma: slice.Map(p.Coprogramma, func(idx int, a domain.AttivitaCoprogramma) Attivita {
			return Attivita(a)
		}),
		DataInizio:         p.DataInizio,
		DataFine:           p.DataFine,
		Autorizzazioni:     p.Autorizzazioni,
		Referente:          Referente(p.Referente),
		NumeroPartecipanti: p.NumeroPartecipanti,
		DescrizioneGruppo:  p.DescrizioneGruppo,
		Partecipanti: slice.Map(p.Partecipanti, func(idx int, pa domain.Partecipante) Partecipante {
			return Partecipante(pa)
		}),
		FigureSupporto: slice.Map(p.FigureSupporto, func(idx int, f domain.FiguraSupporto) FiguraSupporto {
			return FiguraSupporto(f)
		}),
		LuogoSvolgimento:     p.LuogoSvolgimento,
		Categoria:            p.Categoria,
		CategoriaDescrizione: p.CategoriaDescrizione,
		TipoEvento:           p.TipoEvento,
		DescrizioneEvento:    p.DescrizioneEvento,
		Altro:                p.Altro,
		Allegati: slice.Map(p.Allegati, func(idx int, a domain.Allegato) Allegato {
			return Allegato(a)
		}),
		SpeseAttrezzature: slice.Map(p.SpeseAttrezzature, func(idx int, v domain.VoceSpesa) VoceSpesa {
			return VoceSpesa(v)
		}),
		SpeseServizi: slice.Map(p.SpeseServizi, func(idx int, v domain.VoceSpesa) VoceSpesa {
			return VoceSpesa(v)
		}),
		SpeseGenerali: SpeseGenerali(p.SpeseGenerali),
		Valutazione:   newValutazione(p.Valutazione),
		Stato:         string(p.StatoCorrente()),
		CreatedAt:     formatCreatedAt(p.CreatedAt),
	}
}

func newValutazione(v *domain.Valutazione) *Valutazione {
	if v == nil {
		return nil
	}
	res := &Valutazione{
		Punteggio:       v.Punteggio,
		PunteggioTotale: v.PunteggioTotale,
		Stato:           string(v.Stato),
		NoteValutatore:  v.NoteValutatore,
		Valutatore:      v.Valutatore,
	}
	if v.Criteri != nil {
		c := Criteri(*v.Criteri)
		res.Criteri = &c
	}
	if !v.DataValutazione.IsZero() {
		res.DataValutazione = v.DataValutazione.Format(time.RFC3339)
	}
	return res
}

func formatCreatedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
