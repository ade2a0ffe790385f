package domain

import "strings"

// Filtro compone ricerca testuale, categoria e stato in AND. I valori "all"
// (o vuoto per la ricerca) non filtrano.
type Filtro struct {
	Ricerca   string
	Categoria string
	Stato     string
}

const FiltroTutti = "all"

// Applica ritorna il sottoinsieme delle proposte che soddisfano tutti i
// predicati, preservando l'ordine di ingresso.
func (f Filtro) Applica(proposte []Proposta) []Proposta {
	out := make([]Proposta, 0, len(proposte))
	term := strings.ToLower(strings.TrimSpace(f.Ricerca))
	for _, p := range proposte {
		if term != "" && !corrispondeRicerca(p, term) {
			continue
		}
		if f.Categoria != "" && f.Categoria != FiltroTutti && p.Categoria != f.Categoria {
			continue
		}
		if f.Stato != "" && f.Stato != FiltroTutti && string(p.StatoCorrente()) != f.Stato {
			continue
		}
		out = append(out, p)
	}
	return out
}

// La ricerca è un match case-insensitive per sottostringa su titolo,
// nome e cognome del referente e descrizione, in OR.
func corrispondeRicerca(p Proposta, term string) bool {
	return strings.Contains(strings.ToLower(p.TitoloProgetto), term) ||
		strings.Contains(strings.ToLower(p.Referente.Nome), term) ||
		strings.Contains(strings.ToLower(p.Referente.Cognome), term) ||
		strings.Contains(strings.ToLower(p.DescrizioneProgetto), term)
}
