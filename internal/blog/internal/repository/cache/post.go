package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/intusaps/intus-website/internal/blog/internal/domain"
	"github.com/pkg/errors"
)

const articoliExpiration = 10 * time.Minute

var ErrArticoliNonInCache = errors.New("lista articoli non in cache")

// ArticoloCache tiene in cache la lista pubblica del blog, che è la pagina
// più letta del sito.
type ArticoloCache interface {
	SetLista(ctx context.Context, offset, limit int, articoli []domain.Articolo) error
	GetLista(ctx context.Context, offset, limit int) ([]domain.Articolo, error)
}

type articoloCache struct {
	ec ecache.Cache
}

func NewArticoloCache(ec ecache.Cache) ArticoloCache {
	return &articoloCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "blog:",
		},
	}
}

func (c *articoloCache) SetLista(ctx context.Context, offset, limit int, articoli []domain.Articolo) error {
	data, err := json.Marshal(articoli)
	if err != nil {
		return errors.Wrap(err, "serializzazione lista articoli")
	}
	return c.ec.Set(ctx, c.listaKey(offset, limit), string(data), articoliExpiration)
}

func (c *articoloCache) GetLista(ctx context.Context, offset, limit int) ([]domain.Articolo, error) {
	val := c.ec.Get(ctx, c.listaKey(offset, limit))
	if val.KeyNotFound() {
		return nil, ErrArticoliNonInCache
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "lettura cache articoli")
	}
	var res []domain.Articolo
	if err := json.Unmarshal([]byte(val.Val.(string)), &res); err != nil {
		return nil, errors.Wrap(err, "deserializzazione lista articoli")
	}
	return res, nil
}

func (c *articoloCache) listaKey(offset, limit int) string {
	return fmt.Sprintf("lista:%d:%d", offset, limit)
}
