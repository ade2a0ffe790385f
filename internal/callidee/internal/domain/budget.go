package domain

import (
	"math"
	"strconv"
	"strings"
)

// Aggregatore del piano finanziario. Funzione totale e deterministica: ogni
// input produce un numero finito >= 0, mai NaN. Tutti i punti di chiamata
// (riepilogo form, card di review, export CSV e DOCX) passano da qui.

// ParseImporto converte una stringa utente in importo. Vuoto, non numerico,
// negativo o non finito valgono 0: la coercizione è silenziosa, non un errore.
func ParseImporto(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// TotaleLinea è costo * quantità della singola voce.
func TotaleLinea(v VoceSpesa) float64 {
	return ParseImporto(v.Costo) * ParseImporto(v.Quantita)
}

// Subtotale somma le voci di una lista; una lista assente vale 0.
func Subtotale(voci []VoceSpesa) float64 {
	var tot float64
	for _, v := range voci {
		tot += TotaleLinea(v)
	}
	return tot
}

// TotaleGenerali somma SIAE, assicurazione e rimborso spese, ciascuno
// indipendentemente coercibile a 0.
func TotaleGenerali(g SpeseGenerali) float64 {
	return ParseImporto(g.Siae) + ParseImporto(g.Assicurazione) + ParseImporto(g.RimborsoSpese)
}

// TotaleComplessivo è il totale progetto.
func TotaleComplessivo(p Proposta) float64 {
	tot := Subtotale(p.SpeseAttrezzature) + Subtotale(p.SpeseServizi) + TotaleGenerali(p.SpeseGenerali)
	if math.IsNaN(tot) || math.IsInf(tot, 0) || tot < 0 {
		return 0
	}
	return tot
}
