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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
	"github.com/intusaps/intus-website/internal/project/internal/domain"
	"github.com/intusaps/intus-website/internal/project/internal/repository/cache"
	"github.com/intusaps/intus-website/internal/project/internal/repository/dao"
	"github.com/pkg/errors"
)

var ErrProgettoNonTrovato = errors.New("progetto non trovato")

type ProgettoRepository interface {
	Save(ctx context.Context, p domain.Progetto) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Progetto, error)
	// PubList passa dalla cache, per la galleria pubblica.
	PubList(ctx context.Context, offset, limit int) ([]domain.Progetto, error)
	Count(ctx context.Context) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Progetto, error)
	Delete(ctx context.Context, id int64) error
}

type progettoRepo struct {
	dao    dao.ProgettoDAO
	cache  cache.ProgettoCache
	logger *elog.Component
}

func NewProgettoRepository(d dao.ProgettoDAO, c cache.ProgettoCache) ProgettoRepository {
	return &progettoRepo{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *progettoRepo) Save(ctx context.Context, p domain.Progetto) (int64, error) {
	return r.dao.Save(ctx, toEntity(p))
}

func (r *progettoRepo) List(ctx context.Context, offset, limit int) ([]domain.Progetto, error) {
	rows, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "lista progetti")
	}
	return slice.Map(rows, func(idx int, row dao.Progetto) domain.Progetto {
		return toDomain(row)
	}), nil
}

func (r *progettoRepo) PubList(ctx context.Context, offset, limit int) ([]domain.Progetto, error) {
	if res, err := r.cache.GetLista(ctx, offset, limit); err == nil {
		return res, nil
	}
	res, err := r.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	if err := r.cache.SetLista(ctx, offset, limit, res); err != nil {
		r.logger.Error("scrittura cache progetti fallita", elog.FieldErr(err))
	}
	return res, nil
}

func (r *progettoRepo) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *progettoRepo) Detail(ctx context.Context, id int64) (domain.Progetto, error) {
	row, err := r.dao.Get(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Progetto{}, ErrProgettoNonTrovato
	}
	if err != nil {
		return domain.Progetto{}, errors.Wrapf(err, "dettaglio progetto %d", id)
	}
	return toDomain(row), nil
}

func (r *progettoRepo) Delete(ctx context.Context, id int64) error {
	err := r.dao.Delete(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return ErrProgettoNonTrovato
	}
	return err
}

func toEntity(p domain.Progetto) dao.Progetto {
	return dao.Progetto{
		Id:                    p.ID,
		Titolo:                p.Titolo,
		Categoria:             p.Categoria,
		Status:                p.Status,
		DataInizio:            p.DataInizio,
		Luoghi:                jsonCol(p.Luoghi),
		NumeroPartecipanti:    p.NumeroPartecipanti,
		DescrizioneBreve:      p.DescrizioneBreve,
		Contenuto:             p.Contenuto,
		RuoloIntus:            p.RuoloIntus,
		PartecipantiDiretti:   p.PartecipantiDiretti,
		PartecipantiIndiretti: p.PartecipantiIndiretti,
		EnteFinanziatore:      p.EnteFinanziatore,
		LineaDiFinanziamento:  p.LineaDiFinanziamento,
		YoutubeURL:            p.YoutubeURL,
		YoutubeURLs:           jsonCol(p.YoutubeURLs),
		Partner:               jsonCol(p.Partner),
		Immagini:              jsonCol(p.Immagini),
		Prodotti:              jsonCol(p.Prodotti),
	}
}

func toDomain(row dao.Progetto) domain.Progetto {
	return domain.Progetto{
		ID:                    row.Id,
		Titolo:                row.Titolo,
		Categoria:             row.Categoria,
		Status:                row.Status,
		DataInizio:            row.DataInizio,
		Luoghi:                row.Luoghi.Val,
		NumeroPartecipanti:    row.NumeroPartecipanti,
		DescrizioneBreve:      row.DescrizioneBreve,
		Contenuto:             row.Contenuto,
		RuoloIntus:            row.RuoloIntus,
		PartecipantiDiretti:   row.PartecipantiDiretti,
		PartecipantiIndiretti: row.PartecipantiIndiretti,
		EnteFinanziatore:      row.EnteFinanziatore,
		LineaDiFinanziamento:  row.LineaDiFinanziamento,
		YoutubeURL:            row.YoutubeURL,
		YoutubeURLs:           row.YoutubeURLs.Val,
		Partner:               row.Partner.Val,
		Immagini:              row.Immagini.Val,
		Prodotti:              row.Prodotti.Val,
		Ctime:                 row.Ctime,
		Utime:                 row.Utime,
	}
}

func jsonCol[T any](val []T) sqlx.JsonColumn[[]T] {
	return sqlx.JsonColumn[[]T]{
		Val:   val,
		Valid: len(val) > 0,
	}
}
