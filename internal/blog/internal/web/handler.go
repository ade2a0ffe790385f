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
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/intusaps/intus-website/internal/blog/internal/domain"
	"github.com/intusaps/intus-website/internal/blog/internal/export"
	"github.com/intusaps/intus-website/internal/blog/internal/repository"
	"github.com/intusaps/intus-website/internal/blog/internal/service"
	"github.com/intusaps/intus-website/internal/pkg/report"
)

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
	server.POST("/blog/list", ginx.B[Page](h.PubList))
	server.POST("/blog/detail", ginx.B[ArticoloID](h.Detail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/blog/save", ginx.B[SaveReq](h.Save))
	server.POST("/blog/admin/list", ginx.B[Page](h.List))
	server.POST("/blog/admin/detail", ginx.B[ArticoloID](h.Detail))
	server.POST("/blog/delete", ginx.B[ArticoloID](h.Delete))
	server.GET("/blog/export/docx/:id", h.EsportaDOCX)
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.Articolo.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) PubList(ctx *ginx.Context, req Page) (ginx.Result, error) {
	data, err := h.svc.PubList(ctx, req.Offset, paginaLimite(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ArticoliList{
			Articoli: slice.Map(data, func(idx int, a domain.Articolo) Articolo {
				return newArticolo(a)
			}),
		},
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	data, total, err := h.svc.List(ctx, req.Offset, paginaLimite(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ArticoliList{
			Total: total,
			Articoli: slice.Map(data, func(idx int, a domain.Articolo) Articolo {
				return newArticolo(a)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req ArticoloID) (ginx.Result, error) {
	a, err := h.svc.Detail(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrArticoloNonTrovato) {
			return ginx.Result{
				Code: 404,
				Msg:  "articolo non trovato",
			}, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newArticolo(a),
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req ArticoloID) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.ID)
	if err != nil && !errors.Is(err, repository.ErrArticoloNonTrovato) {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

// EsportaDOCX accetta in query string i campi da includere, separati da
// virgola. Senza parametro esporta tutto.
func (h *Handler) EsportaDOCX(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.AbortWithStatus(http.StatusBadRequest)
		return
	}
	a, err := h.svc.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArticoloNonTrovato) {
			ctx.AbortWithStatus(http.StatusNotFound)
			return
		}
		h.logger.Error("caricamento articolo per export fallito",
			elog.FieldErr(err),
			elog.Int64("id", id))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	var selected []string
	if campi := ctx.Query("campi"); campi != "" {
		selected = strings.Split(campi, ",")
	}
	data, nome, err := export.DOCX(a, selected)
	if err != nil {
		h.logger.Error("export articolo fallito",
			elog.FieldErr(err),
			elog.Int64("id", id))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nome))
	ctx.Data(http.StatusOK, report.DocxContentType, data)
}

func paginaLimite(limit int) int {
	if limit <= 0 || limit > 100 {
		return 20
	}
	return limit
}
