package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/intusaps/intus-website/internal/project/internal/domain"
	"github.com/pkg/errors"
)

const progettiExpiration = 10 * time.Minute

var ErrProgettiNonInCache = errors.New("lista progetti non in cache")

type ProgettoCache interface {
	SetLista(ctx context.Context, offset, limit int, progetti []domain.Progetto) error
	GetLista(ctx context.Context, offset, limit int) ([]domain.Progetto, error)
}

type progettoCache struct {
	ec ecache.Cache
}

func NewProgettoCache(ec ecache.Cache) ProgettoCache {
	return &progettoCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "project:",
		},
	}
}

func (c *progettoCache) SetLista(ctx context.Context, offset, limit int, progetti []domain.Progetto) error {
	data, err := json.Marshal(progetti)
	if err != nil {
		return errors.Wrap(err, "serializzazione lista progetti")
	}
	return c.ec.Set(ctx, c.listaKey(offset, limit), string(data), progettiExpiration)
}

func (c *progettoCache) GetLista(ctx context.Context, offset, limit int) ([]domain.Progetto, error) {
	val := c.ec.Get(ctx, c.listaKey(offset, limit))
	if val.KeyNotFound() {
		return nil, ErrProgettiNonInCache
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "lettura cache progetti")
	}
	var res []domain.Progetto
	if err := json.Unmarshal([]byte(val.Val.(string)), &res); err != nil {
		return nil, errors.Wrap(err, "deserializzazione lista progetti")
	}
	return res, nil
}

func (c *progettoCache) listaKey(offset, limit int) string {
	return fmt.Sprintf("lista:%d:%d", offset, limit)
}
