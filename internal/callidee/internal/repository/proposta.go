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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/intusaps/intus-website/internal/callidee/internal/domain"
	"github.com/intusaps/intus-website/internal/callidee/internal/repository/dao"
	"github.com/pkg/errors"
)

var ErrPropostaNonTrovata = dao.ErrRecordNotFound

//go:generate mockgen -source=./proposta.go -package=repomocks -destination=./mocks/proposta.mock.go PropostaRepository
type PropostaRepository interface {
	Crea(ctx context.Context, p domain.Proposta) (int64, error)
	Lista(ctx context.Context) ([]domain.Proposta, error)
	Dettaglio(ctx context.Context, id int64) (domain.Proposta, error)
	AggiornaValutazione(ctx context.Context, id int64, v domain.Valutazione) error
}

type propostaRepo struct {
	dao dao.PropostaDAO
}

func NewPropostaRepository(d dao.PropostaDAO) PropostaRepository {
	return &propostaRepo{dao: d}
}

func (r *propostaRepo) Crea(ctx context.Context, p domain.Proposta) (int64, error) {
	id, err := r.dao.Crea(ctx, r.toEntity(p))
	if err != nil {
		return 0, errors.Wrap(err, "inserimento proposta")
	}
	return id, nil
}

func (r *propostaRepo) Lista(ctx context.Context) ([]domain.Proposta, error) {
	rows, err := r.dao.Lista(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "lista proposte")
	}
	return slice.Map(rows, func(idx int, row dao.Proposta) domain.Proposta {
		return r.toDomain(row)
	}), nil
}

func (r *propostaRepo) Dettaglio(ctx context.Context, id int64) (domain.Proposta, error) {
	row, err := r.dao.Dettaglio(ctx, id)
	if err != nil {
		return domain.Proposta{}, errors.Wrapf(err, "dettaglio proposta %d", id)
	}
	return r.toDomain(row), nil
}

func (r *propostaRepo) AggiornaValutazione(ctx context.Context, id int64, v domain.Valutazione) error {
	err := r.dao.AggiornaValutazione(ctx, id, v)
	if err != nil {
		return errors.Wrapf(err, "salvataggio valutazione proposta %d", id)
	}
	return nil
}

func (r *propostaRepo) toEntity(p domain.Proposta) dao.Proposta {
	return dao.Proposta{
		Id:                     p.ID,
		SN:                     p.SN,
		TitoloProgetto:         p.TitoloProgetto,
		DescrizioneProgetto:    p.DescrizioneProgetto,
		Coprogramma:            jsonCol(p.Coprogramma),
		DataInizio:             p.DataInizio,
		DataFine:               p.DataFine,
		Autorizzazioni:         p.Autorizzazioni,
		ReferenteNome:          p.Referente.Nome,
		ReferenteCognome:       p.Referente.Cognome,
		ReferenteEmail:         p.Referente.Email,
		ReferenteTelefono:      p.Referente.Telefono,
		ReferenteDataNascita:   p.Referente.DataNascita,
		ReferenteCodiceFiscale: p.Referente.CodiceFiscale,
		NumeroPartecipanti:     p.NumeroPartecipanti,
		DescrizioneGruppo:      p.DescrizioneGruppo,
		Partecipanti:           jsonCol(p.Partecipanti),
		FigureSupporto:         jsonCol(p.FigureSupporto),
		LuogoSvolgimento:       p.LuogoSvolgimento,
		Categoria:              p.Categoria,
		CategoriaDescrizione:   p.CategoriaDescrizione,
		TipoEvento:             p.TipoEvento,
		DescrizioneEvento:      p.DescrizioneEvento,
		Altro:                  p.Altro,
		Allegati:               jsonCol(p.Allegati),
		SpeseAttrezzature:      jsonCol(p.SpeseAttrezzature),
		SpeseServizi:           jsonCol(p.SpeseServizi),
		SpeseGenerali:          sqlx.JsonColumn[domain.SpeseGenerali]{Val: p.SpeseGenerali, Valid: true},
	}
}

func (r *propostaRepo) toDomain(row dao.Proposta) domain.Proposta {
	p := domain.Proposta{
		ID:                  row.Id,
		SN:                  row.SN,
		TitoloProgetto:      row.TitoloProgetto,
		DescrizioneProgetto: row.DescrizioneProgetto,
		Coprogramma:         row.Coprogramma.Val,
		DataInizio:          row.DataInizio,
		DataFine:            row.DataFine,
		Autorizzazioni:      row.Autorizzazioni,
		Referente: domain.Referente{
			Nome:          row.ReferenteNome,
			Cognome:       row.ReferenteCognome,
			Email:         row.ReferenteEmail,
			Telefono:      row.ReferenteTelefono,
			DataNascita:   row.ReferenteDataNascita,
			CodiceFiscale: row.ReferenteCodiceFiscale,
		},
		NumeroPartecipanti:   row.NumeroPartecipanti,
		DescrizioneGruppo:    row.DescrizioneGruppo,
		Partecipanti:         row.Partecipanti.Val,
		FigureSupporto:       row.FigureSupporto.Val,
		LuogoSvolgimento:     row.LuogoSvolgimento,
		Categoria:            row.Categoria,
		CategoriaDescrizione: row.CategoriaDescrizione,
		TipoEvento:           row.TipoEvento,
		DescrizioneEvento:    row.DescrizioneEvento,
		Altro:                row.Altro,
		Allegati:             row.Allegati.Val,
		SpeseAttrezzature:    row.SpeseAttrezzature.Val,
		SpeseServizi:         row.SpeseServizi.Val,
		SpeseGenerali:        row.SpeseGenerali.Val,
		CreatedAt:            time.UnixMilli(row.Ctime),
	}
	if row.Valutazione.Valid {
		v := row.Valutazione.Val
		p.Valutazione = &v
	}
	return p
}

func jsonCol[T any](val []T) sqlx.JsonColumn[[]T] {
	return sqlx.JsonColumn[[]T]{Val: val, Valid: len(val) > 0}
}
