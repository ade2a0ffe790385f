package domain

import "time"

// Proposta è una candidatura alla Call Idee Giovani: il record compilato dal
// form pubblico, più l'eventuale valutazione assegnata dalla dashboard admin.
type Proposta struct {
	ID                   int64
	SN                   string
	TitoloProgetto       string
	DescrizioneProgetto  string
	Coprogramma          []AttivitaCoprogramma
	DataInizio           string
	DataFine             string
	Autorizzazioni       string
	Referente            Referente
	NumeroPartecipanti   string
	DescrizioneGruppo    string
	Partecipanti         []Partecipante
	FigureSupporto       []FiguraSupporto
	LuogoSvolgimento     string
	Categoria            string
	CategoriaDescrizione string
	TipoEvento           string
	DescrizioneEvento    string
	Altro                string
	Allegati             []Allegato
	SpeseAttrezzature    []VoceSpesa
	SpeseServizi         []VoceSpesa
	SpeseGenerali        SpeseGenerali
	Valutazione          *Valutazione
	CreatedAt            time.Time
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

// FiguraSupporto è un adulto di supporto al gruppo. Il ruolo è testo libero.
type FiguraSupporto struct {
	Nome     string `json:"nome"`
	Cognome  string `json:"cognome"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Ruolo    string `json:"ruolo"`
}

type AttivitaCoprogramma struct {
	Attivita    string `json:"attivita"`
	Descrizione string `json:"descrizione"`
	Mesi        string `json:"mesi"`
}

// VoceSpesa è una riga del piano finanziario. Costo e quantità restano
// stringhe come inserite dall'utente: la coercizione numerica avviene solo
// nel calcolo dei totali.
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

type StatoValutazione string

const (
	StatoInAttesa      StatoValutazione = "in_attesa"
	StatoInValutazione StatoValutazione = "in_valutazione"
	StatoApprovato     StatoValutazione = "approvato"
	StatoRifiutato     StatoValutazione = "rifiutato"
)

// CriteriValutazione sono i cinque criteri del bando, 0-20 punti ciascuno.
type CriteriValutazione struct {
	Cantierabilita        int `json:"cantierabilita"`
	Sostenibilita         int `json:"sostenibilita"`
	RispostaTerritorio    int `json:"risposta_territorio"`
	CoinvolgimentoGiovani int `json:"coinvolgimento_giovani"`
	PromozioneTerritorio  int `json:"promozione_territorio"`
}

func (c CriteriValutazione) Totale() int {
	return c.Cantierabilita + c.Sostenibilita + c.RispostaTerritorio +
		c.CoinvolgimentoGiovani + c.PromozioneTerritorio
}

// Valutazione è il sotto-record assegnato dall'admin. PunteggioTotale (0-100)
// è il campo corrente; Punteggio (0-10) sopravvive nei record storici.
type Valutazione struct {
	Punteggio       float64             `json:"punteggio,omitempty"`
	PunteggioTotale int                 `json:"punteggio_totale,omitempty"`
	Criteri         *CriteriValutazione `json:"criteri,omitempty"`
	Stato           StatoValutazione    `json:"stato"`
	NoteValutatore  string              `json:"note_valutatore"`
	DataValutazione time.Time           `json:"data_valutazione"`
	Valutatore      string              `json:"valutatore"`
}

// PunteggioEffettivo preferisce il punteggio a criteri; ripiega sul campo
// storico quando il primo è assente.
func (v Valutazione) PunteggioEffettivo() float64 {
	if v.PunteggioTotale > 0 {
		return float64(v.PunteggioTotale)
	}
	return v.Punteggio
}

// StatoCorrente deriva lo stato della proposta: in_attesa finché nessuna
// valutazione è stata salvata.
func (p Proposta) StatoCorrente() StatoValutazione {
	if p.Valutazione == nil || p.Valutazione.Stato == "" {
		return StatoInAttesa
	}
	return p.Valutazione.Stato
}

// Categorie ammesse dal bando, nell'ordine del form pubblico.
func Categorie() []string {
	return []string{
		"sociale",
		"ambientale",
		"culturale",
		"educativo",
		"tecnologico",
		"sportivo",
		"imprenditoriale",
	}
}

// OpzioniNumeroPartecipanti sono le fasce di dimensione del gruppo.
func OpzioniNumeroPartecipanti() []string {
	return []string{"2-4", "5-9", "+10"}
}

const (
	// MaxVociSpesa è il tetto di righe per ciascuna lista di spese.
	MaxVociSpesa = 15
	// MaxAllegati è il numero massimo di allegati per proposta.
	MaxAllegati = 3
)

// NuovaBozza costruisce lo stato iniziale del form: le liste con minimo 1
// partono con un elemento vuoto, la fascia partecipanti col primo valore.
func NuovaBozza() Proposta {
	return Proposta{
		NumeroPartecipanti: "2-4",
		Coprogramma:        []AttivitaCoprogramma{{}},
		Partecipanti:       []Partecipante{{}},
	}
}
