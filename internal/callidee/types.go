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

package callidee

import (
	"github.com/intusaps/intus-website/internal/callidee/internal/domain"
	"github.com/intusaps/intus-website/internal/callidee/internal/service"
	"github.com/intusaps/intus-website/internal/callidee/internal/web"
)

// Handler e AdminHandler sono esposti a ioc.
type Handler = web.Handler
type AdminHandler = web.AdminHandler
type Proposta = domain.Proposta
type Valutazione = domain.Valutazione

type Service = service.Service

// ReviewEngine è lo stato di revisione condiviso dalla dashboard admin.
type ReviewEngine = service.ReviewEngine

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
	Review   *ReviewEngine
}
