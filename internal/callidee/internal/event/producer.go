package event

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"github.com/intusaps/intus-website/internal/pkg/mqx"
)

type PropostaEventProducer interface {
	Produce(ctx context.Context, evt PropostaRicevutaEvent) error
}

func NewPropostaEventProducer(q mq.MQ) (PropostaEventProducer, error) {
	return mqx.NewGeneralProducer[PropostaRicevutaEvent](q, PropostaRicevutaEvent{}.Topic())
}
