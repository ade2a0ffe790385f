package event

// PropostaRicevutaEvent notifica l'arrivo di una nuova candidatura, ad uso
// dei consumer di notifica (mail alla segreteria).
type PropostaRicevutaEvent struct {
	ID             int64  `json:"id"`
	SN             string `json:"sn"`
	Titolo         string `json:"titolo"`
	ReferenteEmail string `json:"referente_email"`
}

func (PropostaRicevutaEvent) Topic() string {
	return "call_idee_proposte_ricevute"
}
