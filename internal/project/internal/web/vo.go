package web

import (
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/intusaps/intus-website/internal/project/internal/domain"
)

type Progetto struct {
	ID                    int64      `json:"id,omitempty"`
	Titolo                string     `json:"titolo"`
	Categoria             string     `json:"categoria,omitempty"`
	Status                string     `json:"status,omitempty"`
	DataInizio            string     `json:"data_inizio,omitempty"`
	Luoghi                []string   `json:"luoghi,omitempty"`
	NumeroPartecipanti    string     `json:"numero_partecipanti,omitempty"`
	DescrizioneBreve      string     `json:"descrizione_breve,omitempty"`
	Contenuto             string     `json:"contenuto,omitempty"`
	RuoloIntus            string     `json:"ruolo_intus,omitempty"`
	PartecipantiDiretti   string     `json:"partecipanti_diretti,omitempty"`
	PartecipantiIndiretti string     `json:"partecipanti_indiretti,omitempty"`
	EnteFinanziatore      string     `json:"ente_finanziatore,omitempty"`
	LineaDiFinanziamento  string     `json:"linea_di_finanziamento,omitempty"`
	YoutubeURL            string     `json:"youtube_url,omitempty"`
	YoutubeURLs           []string   `json:"youtube_urls,omitempty"`
	Partner               []Partner  `json:"partner,omitempty"`
	Immagini              []string   `json:"immagini,omitempty"`
	Prodotti              []Prodotto `json:"prodotti,omitempty"`
	CreatedAt             string     `json:"created_at,omitempty"`
}

type Partner struct {
	Nome     string `json:"nome"`
	Link     string `json:"link,omitempty"`
	Capofila bool   `json:"capofila,omitempty"`
}

type Prodotto struct {
	Titolo           string `json:"titolo"`
	DescrizioneBreve string `json:"descrizione_breve,omitempty"`
	Link             string `json:"link,omitempty"`
	Immagine         string `json:"immagine,omitempty"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ProgettoID struct {
	ID int64 `json:"id"`
}

type SaveReq struct {
	Progetto Progetto `json:"progetto"`
}

type ProgettiList struct {
	Progetti []Progetto `json:"progetti"`
	Total    int64      `json:"total"`
}

func (p Progetto) toDomain() domain.Progetto {
	return domain.Progetto{
		ID:                    p.ID,
		Titolo:                p.Titolo,
		Categoria:             p.Categoria,
		Status:                p.Status,
		DataInizio:            p.DataInizio,
		Luoghi:                p.Luoghi,
		NumeroPartecipanti:    p.NumeroPartecipanti,
		DescrizioneBreve:      p.DescrizioneBreve,
		Contenuto:             p.Contenuto,
		RuoloIntus:            p.RuoloIntus,
		PartecipantiDiretti:   p.PartecipantiDiretti,
		PartecipantiIndiretti: p.PartecipantiIndiretti,
		EnteFinanziatore:      p.EnteFinanziatore,
		LineaDiFinanziamento:  p.LineaDiFinanziamento,
		YoutubeURL:            p.YoutubeURL,
		YoutubeURLs:           p.YoutubeURLs,
		Partner: slice.Map(p.Partner, func(idx int, pa Partner) domain.Partner {
			return domain.Partner(pa)
		}),
		Immagini: p.Immagini,
		Prodotti: slice.Map(p.Prodotti, func(idx int, pr Prodotto) domain.Prodotto {
			return domain.Prodotto(pr)
		}),
	}
}

func newProgetto(p domain.Progetto) Progetto {
	res := Progetto{
		ID:                    p.ID,
		Titolo:                p.Titolo,
		Categoria:             p.Categoria,
		Status:                p.Status,
		DataInizio:            p.DataInizio,
		Luoghi:                p.Luoghi,
		NumeroPartecipanti:    p.NumeroPartecipanti,
		DescrizioneBreve:      p.DescrizioneBreve,
		Contenuto:             p.Contenuto,
		RuoloIntus:            p.RuoloIntus,
		PartecipantiDiretti:   p.PartecipantiDiretti,
		PartecipantiIndiretti: p.PartecipantiIndiretti,
		EnteFinanziatore:      p.EnteFinanziatore,
		LineaDiFinanziamento:  p.LineaDiFinanziamento,
		YoutubeURL:            p.YoutubeURL,
		YoutubeURLs:           p.YoutubeURLs,
		Partner: slice.Map(p.Partner, func(idx int, pa domain.Partner) Partner {
			return Partner(pa)
		}),
		Immagini: p.Immagini,
		Prodotti: slice.Map(p.Prodotti, func(idx int, pr domain.Prodotto) Prodotto {
			return Prodotto(pr)
		}),
	}
	if p.Ctime > 0 {
		res.CreatedAt = time.UnixMilli(p.Ctime).Format(time.RFC3339)
	}
	return res
}
