package domain

// Progetto è un progetto dell'associazione, passato o in corso.
type Progetto struct {
	ID                    int64
	Titolo                string
	Categoria             string
	Status                string
	DataInizio            string
	Luoghi                []string
	NumeroPartecipanti    string
	DescrizioneBreve      string
	Contenuto             string
	RuoloIntus            string
	PartecipantiDiretti   string
	PartecipantiIndiretti string
	EnteFinanziatore      string
	LineaDiFinanziamento  string
	YoutubeURL            string
	YoutubeURLs           []string
	Partner               []Partner
	Immagini              []string
	Prodotti              []Prodotto
	Ctime                 int64
	Utime                 int64
}

type Partner struct {
	Nome     string `json:"nome"`
	Link     string `json:"link,omitempty"`
	Capofila bool   `json:"capofila,omitempty"`
}

// Prodotto è un risultato concreto del progetto (pubblicazione, video, sito).
type Prodotto struct {
	Titolo           string `json:"titolo"`
	DescrizioneBreve string `json:"descrizione_breve,omitempty"`
	Link             string `json:"link,omitempty"`
	Immagine         string `json:"immagine,omitempty"`
}

// CampiExport sono i campi selezionabili nell'export DOCX, nell'ordine in
// cui compaiono nel documento.
func CampiExport() []string {
	return []string{
		"categoria",
		"status",
		"data_inizio",
		"luoghi",
		"numero_partecipanti",
		"descrizione_breve",
		"contenuto",
		"ruolo_intus",
		"partecipanti_diretti",
		"partecipanti_indiretti",
		"ente_finanziatore",
		"linea_di_finanziamento",
		"youtube_url",
		"youtube_urls",
		"partner",
		"immagini",
		"prodotti",
	}
}
