// Copyright 2024 intusaps
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/intusaps/intus-website/internal/callidee/internal/domain"
	"github.com/intusaps/intus-website/internal/callidee/internal/event"
	"github.com/intusaps/intus-website/internal/callidee/internal/repository"
	"github.com/lithammer/shortuuid/v4"
)

//go:generate mockgen -source=./service.go -package=svcmocks -destination=./mocks/service.mock.go Service
type Service interface {
	// Presenta valida e registra una nuova candidatura.
	// Gli errori di validazione sono ritornati come *ErroreValidazione.
	Presenta(ctx context.Context, p domain.Proposta) (domain.Proposta, error)
	// Lista ritorna tutte le candidature, più recenti per prime.
	Lista(ctx context.Context) ([]domain.Proposta, error)
	Dettaglio(ctx context.Context, id int64) (domain.Proposta, error)
	// SalvaValutazione timbra data e valutatore e persiste il sotto-record.
	// Ritorna la valutazione effettivamente salvata.
	SalvaValutazione(ctx context.Context, id int64, v domain.Valutazione) (domain.Valutazione, error)
}

type service struct {
	repo     repository.PropostaRepository
	producer event.PropostaEventProducer
	logger   *elog.Component
}

func NewService(repo repository.PropostaRepository, producer event.PropostaEventProducer) Service {
	return &service{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Presenta(ctx context.Context, p domain.Proposta) (domain.Proposta, error) {
	// Rivalida lato server: il form pubblico non è una barriera di fiducia.
	if campi := p.Valida(); campi != nil {
		return domain.Proposta{}, &ErroreValidazione{Campi: campi}
	}
	p.SN = shortuuid.New()
	p.CreatedAt = time.Now()
	id, err := s.repo.Crea(ctx, p)
	if err != nil {
		return domain.Proposta{}, err
	}
	p.ID = id
	s.notificaRicezione(ctx, p)
	return p, nil
}

// L'evento di notifica è best effort: un broker irraggiungibile non deve
// far fallire una candidatura già persistita.
func (s *service) notificaRicezione(ctx context.Context, p domain.Proposta) {
	if s.producer == nil {
		return
	}
	evt := event.PropostaRicevutaEvent{
		ID:             p.ID,
		SN:             p.SN,
		Titolo:         p.TitoloProgetto,
		ReferenteEmail: p.Referente.Email,
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("invio evento proposta ricevuta fallito",
			elog.FieldErr(err),
			elog.Int64("id", p.ID))
	}
}

func (s *service) Lista(ctx context.Context) ([]domain.Proposta, error) {
	return s.repo.Lista(ctx)
}

func (s *service) Dettaglio(ctx context.Context, id int64) (domain.Proposta, error) {
	return s.repo.Dettaglio(ctx, id)
}

func (s *service) SalvaValutazione(ctx context.Context, id int64, v domain.Valutazione) (domain.Valutazione, error) {
	if v.Stato == "" {
		v.Stato = domain.StatoInValutazione
	}
	if v.Criteri != nil {
		v.PunteggioTotale = v.Criteri.Totale()
	}
	v.DataValutazione = time.Now()
	if err := s.repo.AggiornaValutazione(ctx, id, v); err != nil {
		return domain.Valutazione{}, err
	}
	return v, nil
}
