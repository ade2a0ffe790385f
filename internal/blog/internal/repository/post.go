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
	"github.com/intusaps/intus-website/internal/blog/internal/domain"
	"github.com/intusaps/intus-website/internal/blog/internal/repository/cache"
	"github.com/intusaps/intus-website/internal/blog/internal/repository/dao"
	"github.com/pkg/errors"
)

var ErrArticoloNonTrovato = errors.New("articolo non trovato")

type ArticoloRepository interface {
	Save(ctx context.Context, a domain.Articolo) (int64, error)
	// List legge dalla base dati, per la dashboard admin.
	List(ctx context.Context, offset, limit int) ([]domain.Articolo, error)
	// PubList passa dalla cache, per la pagina pubblica del blog.
	PubList(ctx context.Context, offset, limit int) ([]domain.Articolo, error)
	Count(ctx context.Context) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Articolo, error)
	Delete(ctx context.Context, id int64) error
}

type articoloRepo struct {
	dao    dao.ArticoloDAO
	cache  cache.ArticoloCache
	logger *elog.Component
}

func NewArticoloRepository(d dao.ArticoloDAO, c cache.ArticoloCache) ArticoloRepository {
	return &articoloRepo{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *articoloRepo) Save(ctx context.Context, a domain.Articolo) (int64, error) {
	return r.dao.Save(ctx, toEntity(a))
}

func (r *articoloRepo) List(ctx context.Context, offset, limit int) ([]domain.Articolo, error) {
	rows, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "lista articoli")
	}
	return slice.Map(rows, func(idx int, row dao.Articolo) domain.Articolo {
		return toDomain(row)
	}), nil
}

func (r *articoloRepo) PubList(ctx context.Context, offset, limit int) ([]domain.Articolo, error) {
	if res, err := r.cache.GetLista(ctx, offset, limit); err == nil {
		return res, nil
	}
	res, err := r.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	// La cache è un'ottimizzazione: un errore di scrittura non blocca la lettura.
	if err := r.cache.SetLista(ctx, offset, limit, res); err != nil {
		r.logger.Error("scrittura cache articoli fallita", elog.FieldErr(err))
	}
	return res, nil
}

func (r *articoloRepo) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *articoloRepo) Detail(ctx context.Context, id int64) (domain.Articolo, error) {
	row, err := r.dao.Get(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Articolo{}, ErrArticoloNonTrovato
	}
	if err != nil {
		return domain.Articolo{}, errors.Wrapf(err, "dettaglio articolo %d", id)
	}
	return toDomain(row), nil
}

func (r *articoloRepo) Delete(ctx context.Context, id int64) error {
	err := r.dao.Delete(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return ErrArticoloNonTrovato
	}
	return err
}

func toEntity(a domain.Articolo) dao.Articolo {
	return dao.Articolo{
		Id:           a.ID,
		Titolo:       a.Titolo,
		Categoria:    a.Categoria,
		Autore:       a.Autore,
		Excerpt:      a.Excerpt,
		Contenuto:    a.Contenuto,
		YoutubeURL:   a.YoutubeURL,
		CopertinaURL: a.CopertinaURL,
		Immagini: sqlx.JsonColumn[[]string]{
			Val:   a.Immagini,
			Valid: len(a.Immagini) > 0,
		},
	}
}

func toDomain(row dao.Articolo) domain.Articolo {
	return domain.Articolo{
		ID:           row.Id,
		Titolo:       row.Titolo,
		Categoria:    row.Categoria,
		Autore:       row.Autore,
		Excerpt:      row.Excerpt,
		Contenuto:    row.Contenuto,
		YoutubeURL:   row.YoutubeURL,
		CopertinaURL: row.CopertinaURL,
		Immagini:     row.Immagini.Val,
		Ctime:        row.Ctime,
		Utime:        row.Utime,
	}
}
