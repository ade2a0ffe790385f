package export

import (
	"bytes"
	"strconv"

	"github.com/intusaps/intus-website/internal/callidee/internal/domain"
	"github.com/intusaps/intus-website/internal/pkg/report"
	"github.com/lukasjarosch/go-docx"
	"github.com/pkg/errors"
)

// ErrValutazioneAssente indica che la lettera d'esito è stata richiesta per
// una proposta non ancora valutata.
var ErrValutazioneAssente = errors.New("la proposta non è ancora stata valutata")

// LetteraEsito compila il modello .docx della lettera d'esito sostituendo i
// segnaposto con i dati della proposta valutata. Il modello è un file di
// cancelleria mantenuto dalla segreteria.
func LetteraEsito(templatePath string, p domain.Proposta) ([]byte, string, error) {
	if p.Valutazione == nil {
		return nil, "", ErrValutazioneAssente
	}
	doc, err := docx.Open(templatePath)
	if err != nil {
		return nil, "", errors.Wrap(err, "apertura modello lettera")
	}
	v := p.Valutazione
	replaceMap := docx.PlaceholderMap{
		"titolo_progetto":   p.TitoloProgetto,
		"referente_nome":    p.Referente.Nome,
		"referente_cognome": p.Referente.Cognome,
		"stato":             string(v.Stato),
		"punteggio":         strconv.FormatFloat(v.PunteggioEffettivo(), 'f', -1, 64),
		"note":              v.NoteValutatore,
		"data":              v.DataValutazione.Format("02/01/2006"),
		"valutatore":        v.Valutatore,
	}
	if err := doc.ReplaceAll(replaceMap); err != nil {
		return nil, "", errors.Wrap(err, "sostituzione segnaposto lettera")
	}
	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, "", errors.Wrap(err, "scrittura lettera")
	}
	nome := "esito_" + report.SanitizeFilename(p.TitoloProgetto, "richiesta") + ".docx"
	return buf.Bytes(), nome, nil
}
