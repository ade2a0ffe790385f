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

//go:build wireinject

package blog

import (
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/intusaps/intus-website/internal/blog/internal/repository"
	"github.com/intusaps/intus-website/internal/blog/internal/repository/cache"
	"github.com/intusaps/intus-website/internal/blog/internal/service"
	"github.com/intusaps/intus-website/internal/blog/internal/web"
)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(
		initArticoloDAO,
		cache.NewArticoloCache,
		repository.NewArticoloRepository,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
