package domain

// Articolo è un post del blog associativo. Contenuto è HTML già sanificato
// in ingresso.
type Articolo struct {
	ID           int64
	Titolo       string
	Categoria    string
	Autore       string
	Excerpt      string
	Contenuto    string
	YoutubeURL   string
	CopertinaURL string
	Immagini     []string
	Ctime        int64
	Utime        int64
}

// CampiExport sono i campi selezionabili nell'export DOCX, nell'ordine in
// cui compaiono nel documento.
func CampiExport() []string {
	return []string{
		"categoria",
		"autore",
		"created_at",
		"excerpt",
		"contenuto",
		"youtube_url",
		"copertina_url",
		"immagini",
	}
}
