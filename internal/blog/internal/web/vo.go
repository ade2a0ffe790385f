package web

import (
	"time"

	"github.com/intusaps/intus-website/internal/blog/internal/domain"
)

type Articolo struct {
	ID           int64    `json:"id,omitempty"`
	Titolo       string   `json:"titolo"`
	Categoria    string   `json:"categoria,omitempty"`
	Autore       string   `json:"autore,omitempty"`
	Excerpt      string   `json:"excerpt,omitempty"`
	Contenuto    string   `json:"contenuto,omitempty"`
	YoutubeURL   string   `json:"youtube_url,omitempty"`
	CopertinaURL string   `json:"copertina_url,omitempty"`
	Immagini     []string `json:"immagini,omitempty"`
	CreatedAt    string   `json:"created_at,omitempty"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ArticoloID struct {
	ID int64 `json:"id"`
}

type SaveReq struct {
	Articolo Articolo `json:"articolo"`
}

type ArticoliList struct {
	Articoli []Articolo `json:"articoli"`
	Total    int64      `json:"total"`
}

func (a Articolo) toDomain() domain.Articolo {
	return domain.Articolo{
		ID:           a.ID,
		Titolo:       a.Titolo,
		Categoria:    a.Categoria,
		Autore:       a.Autore,
		Excerpt:      a.Excerpt,
		Contenuto:    a.Contenuto,
		YoutubeURL:   a.YoutubeURL,
		CopertinaURL: a.CopertinaURL,
		Immagini:     a.Immagini,
	}
}

func newArticolo(a domain.Articolo) Articolo {
	res := Articolo{
		ID:           a.ID,
		Titolo:       a.Titolo,
		Categoria:    a.Categoria,
		Autore:       a.Autore,
		Excerpt:      a.Excerpt,
		Contenuto:    a.Contenuto,
		YoutubeURL:   a.YoutubeURL,
		CopertinaURL: a.CopertinaURL,
		Immagini:     a.Immagini,
	}
	if a.Ctime > 0 {
		res.CreatedAt = time.UnixMilli(a.Ctime).Format(time.RFC3339)
	}
	return res
}
