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

	"github.com/intusaps/intus-website/internal/blog/internal/domain"
	"github.com/intusaps/intus-website/internal/blog/internal/repository"
	"github.com/intusaps/intus-website/internal/pkg/sanitize"
)

//go:generate mockgen -source=./service.go -package=svcmocks -destination=./mocks/service.mock.go Service
type Service interface {
	// Save sanifica il contenuto HTML e inserisce o aggiorna l'articolo.
	Save(ctx context.Context, a domain.Articolo) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Articolo, int64, error)
	PubList(ctx context.Context, offset, limit int) ([]domain.Articolo, error)
	Detail(ctx context.Context, id int64) (domain.Articolo, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo repository.ArticoloRepository
}

func NewService(repo repository.ArticoloRepository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, a domain.Articolo) (int64, error) {
	a.Contenuto = sanitize.HTML(a.Contenuto)
	a.Excerpt = sanitize.HTML(a.Excerpt)
	return s.repo.Save(ctx, a)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Articolo, int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	res, err := s.repo.List(ctx, offset, limit)
	return res, count, err
}

func (s *service) PubList(ctx context.Context, offset, limit int) ([]domain.Articolo, error) {
	return s.repo.PubList(ctx, offset, limit)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Articolo, error) {
	return s.repo.Detail(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
