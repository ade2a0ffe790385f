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

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/intusaps/intus-website/internal/callidee/internal/domain"
	"github.com/intusaps/intus-website/internal/callidee/internal/errs"
	"github.com/intusaps/intus-website/internal/callidee/internal/service"
)

// Handler espone il form pubblico della Call Idee Giovani.
type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/call-idee/presenta", ginx.B[PresentaReq](h.Presenta))
	server.GET("/call-idee/opzioni", ginx.W(h.Opzioni))
}

func (h *Handler) Presenta(ctx *ginx.Context, req PresentaReq) (ginx.Result, error) {
	saved, err := h.svc.Presenta(ctx, req.Proposta.toDomain())
	if err != nil {
		var ev *service.ErroreValidazione
		if errors.As(err, &ev) {
			presentazioniTotali.WithLabelValues("respinta").Inc()
			return ginx.Result{
				Code: errs.ValidationError.Code,
				Msg:  errs.ValidationError.Msg,
				Data: ev.Campi,
			}, nil
		}
		presentazioniTotali.WithLabelValues("errore").Inc()
		return systemErrorResult, err
	}
	presentazioniTotali.WithLabelValues("accettata").Inc()
	return ginx.Result{
		Data: newProposta(saved),
	}, nil
}

// Opzioni ritorna le liste chiuse del form, così il client non le duplica.
func (h *Handler) Opzioni(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{
		Data: map[string]any{
			"categorie":           domain.Categorie(),
			"numero_partecipanti": domain.OpzioniNumeroPartecipanti(),
		},
	}, nil
}
