package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	presentazioniTotali = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "call_idee_presentazioni_totali",
			Help: "Candidature presentate tramite il form pubblico",
		},
		[]string{"esito"},
	)

	esportazioniTotali = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "call_idee_esportazioni_totali",
			Help: "Export generati dalla dashboard admin",
		},
		[]string{"formato"},
	)
)
