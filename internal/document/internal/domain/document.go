package domain

// Documento è un file dell'archivio documentale esterno.
type Documento struct {
	ID          string `json:"id"`
	Nome        string `json:"name,omitempty"`
	NomeFile    string `json:"originalName,omitempty"`
	Descrizione string `json:"description,omitempty"`
	Categoria   string `json:"category,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
	Dimensione  string `json:"size,omitempty"`
	URL         string `json:"url,omitempty"`
	DownloadURL string `json:"downloadUrl,omitempty"`
	CaricatoIl  string `json:"uploadDate,omitempty"`
	Source      string `json:"source,omitempty"`
}

const (
	// MaxDimensioneFile è il tetto per singolo upload.
	MaxDimensioneFile = 10 << 20
	// MaxLunghezzaNomeFile è il limite sul nome del file originale.
	MaxLunghezzaNomeFile = 255
)

// EstensioniAmmesse sono i formati accettati dall'archivio.
func EstensioniAmmesse() []string {
	return []string{".pdf", ".doc", ".docx"}
}
