package domain

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Schema di validazione della proposta. Gli errori sono mappati per percorso
// campo (es. "partecipanti.2.email") con messaggio in chiaro, così il form
// può mostrarli inline. La validazione non è mai fatale: nessun invio
// parziale viene tentato.

// CampiErrati mappa percorso campo -> messaggio.
type CampiErrati map[string]string

func (c CampiErrati) add(path, msg string) {
	if _, ok := c[path]; !ok {
		c[path] = msg
	}
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func runeLen(s string) int { return utf8.RuneCountInString(s) }

// Valida applica lo schema completo. Ritorna nil quando la proposta è valida.
func (p Proposta) Valida() CampiErrati {
	errs := CampiErrati{}

	if runeLen(p.TitoloProgetto) < 3 {
		errs.add("titoloProgetto", "Il titolo deve contenere almeno 3 caratteri")
	}
	if runeLen(p.DescrizioneProgetto) < 50 {
		errs.add("descrizioneProgetto", "La descrizione deve contenere almeno 50 caratteri")
	}
	if len(p.Coprogramma) < 1 {
		errs.add("coprogramma", "Almeno un'attività di coprogramma richiesta")
	}
	for i, a := range p.Coprogramma {
		if runeLen(a.Attivita) < 3 {
			errs.add(fmt.Sprintf("coprogramma.%d.attivita", i), "Nome attività richiesto (min 3 caratteri)")
		}
		if runeLen(a.Descrizione) < 10 {
			errs.add(fmt.Sprintf("coprogramma.%d.descrizione", i), "Descrizione attività richiesta (min 10 caratteri)")
		}
		if runeLen(a.Mesi) < 1 {
			errs.add(fmt.Sprintf("coprogramma.%d.mesi", i), "Mesi di svolgimento richiesti")
		}
	}
	if p.DataInizio == "" {
		errs.add("dataInizio", "Data di inizio richiesta")
	}
	if p.DataFine == "" {
		errs.add("dataFine", "Data di fine richiesta")
	}

	validaAnagrafica(errs, "referente", p.Referente.Nome, p.Referente.Cognome,
		p.Referente.Email, p.Referente.Telefono, p.Referente.DataNascita)
	if runeLen(p.Referente.CodiceFiscale) != 16 {
		errs.add("referente.codiceFiscale", "Codice fiscale di 16 caratteri richiesto")
	}

	if !contiene(OpzioniNumeroPartecipanti(), p.NumeroPartecipanti) {
		errs.add("numeroPartecipanti", "Seleziona il numero di partecipanti")
	}
	if runeLen(p.DescrizioneGruppo) < 20 {
		errs.add("descrizioneGruppo", "Descrizione del gruppo richiesta (min 20 caratteri)")
	}
	if len(p.Partecipanti) < 1 {
		errs.add("partecipanti", "Almeno un partecipante richiesto")
	}
	for i, part := range p.Partecipanti {
		validaAnagrafica(errs, fmt.Sprintf("partecipanti.%d", i),
			part.Nome, part.Cognome, part.Email, part.Telefono, part.DataNascita)
	}
	// Le figure di supporto sono opzionali ma, se presenti, ben formate.
	// Il ruolo è testo libero e rimpiazza la data di nascita.
	for i, f := range p.FigureSupporto {
		prefix := fmt.Sprintf("figureSupporto.%d", i)
		if runeLen(f.Nome) < 2 {
			errs.add(prefix+".nome", "Nome richiesto")
		}
		if runeLen(f.Cognome) < 2 {
			errs.add(prefix+".cognome", "Cognome richiesto")
		}
		if !emailRe.MatchString(f.Email) {
			errs.add(prefix+".email", "Email non valida")
		}
		if runeLen(f.Telefono) < 8 {
			errs.add(prefix+".telefono", "Numero di telefono valido richiesto")
		}
	}

	if runeLen(p.LuogoSvolgimento) < 2 {
		errs.add("luogoSvolgimento", "Luogo di svolgimento richiesto")
	}
	if !contiene(Categorie(), p.Categoria) {
		errs.add("categoria", "Categoria richiesta")
	}
	if runeLen(p.CategoriaDescrizione) < 10 {
		errs.add("categoriaDescrizione", "Descrizione categoria richiesta (min 10 caratteri)")
	}
	if runeLen(p.TipoEvento) < 3 {
		errs.add("tipoEvento", "Tipo di evento richiesto")
	}
	if runeLen(p.DescrizioneEvento) < 20 {
		errs.add("descrizioneEvento", "Descrizione evento richiesta (min 20 caratteri)")
	}

	if len(p.Allegati) > MaxAllegati {
		errs.add("allegati", fmt.Sprintf("Massimo %d allegati", MaxAllegati))
	}
	validaSpese(errs, "speseAttrezzature", p.SpeseAttrezzature)
	validaSpese(errs, "speseServizi", p.SpeseServizi)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validaAnagrafica(errs CampiErrati, prefix, nome, cognome, email, telefono, dataNascita string) {
	if runeLen(nome) < 2 {
		errs.add(prefix+".nome", "Nome richiesto")
	}
	if runeLen(cognome) < 2 {
		errs.add(prefix+".cognome", "Cognome richiesto")
	}
	if !emailRe.MatchString(email) {
		errs.add(prefix+".email", "Email non valida")
	}
	if runeLen(telefono) < 8 {
		errs.add(prefix+".telefono", "Numero di telefono valido richiesto")
	}
	if dataNascita == "" {
		errs.add(prefix+".dataNascita", "Data di nascita richiesta")
	}
}

func validaSpese(errs CampiErrati, prefix string, voci []VoceSpesa) {
	if len(voci) > MaxVociSpesa {
		errs.add(prefix, fmt.Sprintf("Massimo %d voci", MaxVociSpesa))
	}
	for i, v := range voci {
		if runeLen(v.Descrizione) < 1 {
			errs.add(fmt.Sprintf("%s.%d.descrizione", prefix, i), "Descrizione richiesta")
		}
		if runeLen(v.Costo) < 1 {
			errs.add(fmt.Sprintf("%s.%d.costo", prefix, i), "Costo richiesto")
		}
		if runeLen(v.Quantita) < 1 {
			errs.add(fmt.Sprintf("%s.%d.quantita", prefix, i), "Quantità richiesta")
		}
	}
}

func contiene(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
