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

	"github.com/intusaps/intus-website/internal/pkg/sanitize"
	"github.com/intusaps/intus-website/internal/project/internal/domain"
	"github.com/intusaps/intus-website/internal/project/internal/repository"
)

//go:generate mockgen -source=./service.go -package=svcmocks -destination=./mocks/service.mock.go Service
type Service interface {
	Save(ctx context.Context, p domain.Progetto) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Progetto, int64, error)
	PubList(ctx context.Context, offset, limit int) ([]domain.Progetto, error)
	Detail(ctx context.Context, id int64) (domain.Progetto, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo repository.ProgettoRepository
}

func NewService(repo repository.ProgettoRepository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, p domain.Progetto) (int64, error) {
	p.Contenuto = sanitize.HTML(p.Contenuto)
	p.DescrizioneBreve = sanitize.HTML(p.DescrizioneBreve)
	return s.repo.Save(ctx, p)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Progetto, int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	res, err := s.repo.List(ctx, offset, limit)
	return res, count, err
}

func (s *service) PubList(ctx context.Context, offset, limit int) ([]domain.Progetto, error) {
	return s.repo.PubList(ctx, offset, limit)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Progetto, error) {
	return s.repo.Detail(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
