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
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/intusaps/intus-website/internal/callidee/internal/domain"
	"github.com/intusaps/intus-website/internal/callidee/internal/export"
	"github.com/intusaps/intus-website/internal/callidee/internal/repository"
	"github.com/intusaps/intus-website/internal/callidee/internal/service"
	"github.com/intusaps/intus-website/internal/pkg/report"
)

// AdminHandler è la dashboard di revisione: elenco filtrato, dettaglio,
// salvataggio valutazioni ed export CSV/DOCX.
type AdminHandler struct {
	svc     service.Service
	lettera string
	logger  *elog.Component
}

// NewAdminHandler riceve il percorso del template della lettera di esito.
func NewAdminHandler(svc service.Service, lettera string) *AdminHandler {
	return &AdminHandler{
		svc:     svc,
		lettera: lettera,
		logger:  elog.DefaultLogger,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/call-idee/list", ginx.B[ListaReq](h.Lista))
	server.POST("/call-idee/detail", ginx.B[PropostaID](h.Dettaglio))
	server.POST("/call-idee/valutazione/save", ginx.BS[SalvaValutazioneReq](h.SalvaValutazione))
	server.GET("/call-idee/export/csv", h.EsportaCSV)
	server.GET("/call-idee/export/docx/:id", h.EsportaDOCX)
	server.GET("/call-idee/export/lettera/:id", h.EsportaLettera)
}

func (h *AdminHandler) Lista(ctx *ginx.Context, req ListaReq) (ginx.Result, error) {
	proposte, err := h.filtrate(ctx, req)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListaProposte{
			Totale: len(proposte),
			Proposte: slice.Map(proposte, func(idx int, p domain.Proposta) Proposta {
				return newProposta(p)
			}),
		},
	}, nil
}

func (h *AdminHandler) Dettaglio(ctx *ginx.Context, req PropostaID) (ginx.Result, error) {
	p, err := h.svc.Dettaglio(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrPropostaNonTrovata) {
			return ginx.Result{
				Code: 404,
				Msg:  "proposta non trovata",
			}, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProposta(p),
	}, nil
}

func (h *AdminHandler) SalvaValutazione(ctx *ginx.Context,
	req SalvaValutazioneReq,
	sess session.Session) (ginx.Result, error) {
	v := req.Valutazione.toDomain()
	if v.Valutatore == "" {
		v.Valutatore = sess.Claims().Get("nome").StringOrDefault(
			fmt.Sprintf("admin-%d", sess.Claims().Uid))
	}
	saved, err := h.svc.SalvaValutazione(ctx, req.ID, v)
	if err != nil {
		if errors.Is(err, repository.ErrPropostaNonTrovata) {
			return ginx.Result{
				Code: 404,
				Msg:  "proposta non trovata",
			}, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newValutazione(&saved),
	}, nil
}

// EsportaCSV genera il CSV delle proposte correnti. I parametri di filtro
// della dashboard arrivano come query string e compongono in AND.
func (h *AdminHandler) EsportaCSV(ctx *gin.Context) {
	req := ListaReq{
		Ricerca:   ctx.Query("ricerca"),
		Categoria: ctx.Query("categoria"),
		Stato:     ctx.Query("stato"),
	}
	proposte, err := h.filtrate(ctx, req)
	if err != nil {
		h.logger.Error("export csv fallito", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	esportazioniTotali.WithLabelValues("csv").Inc()
	nome := export.NomeFileCSV(proposte, time.Now())
	scaricaFile(ctx, nome, "text/csv; charset=utf-8", export.CSV(proposte))
}

func (h *AdminHandler) EsportaDOCX(ctx *gin.Context) {
	p, ok := h.perExport(ctx)
	if !ok {
		return
	}
	data, nome, err := export.DOCX(p)
	if err != nil {
		h.logger.Error("export docx fallito",
			elog.FieldErr(err),
			elog.Int64("id", p.ID))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	esportazioniTotali.WithLabelValues("docx").Inc()
	scaricaFile(ctx, nome, report.DocxContentType, data)
}

// EsportaLettera compila il template della lettera di esito. Richiede una
// valutazione già salvata.
func (h *AdminHandler) EsportaLettera(ctx *gin.Context) {
	p, ok := h.perExport(ctx)
	if !ok {
		return
	}
	data, nome, err := export.LetteraEsito(h.lettera, p)
	if err != nil {
		if errors.Is(err, export.ErrValutazioneAssente) {
			ctx.AbortWithStatus(http.StatusConflict)
			return
		}
		h.logger.Error("export lettera fallito",
			elog.FieldErr(err),
			elog.Int64("id", p.ID))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	esportazioniTotali.WithLabelValues("lettera").Inc()
	scaricaFile(ctx, nome, report.DocxContentType, data)
}

func (h *AdminHandler) perExport(ctx *gin.Context) (domain.Proposta, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.AbortWithStatus(http.StatusBadRequest)
		return domain.Proposta{}, false
	}
	p, err := h.svc.Dettaglio(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropostaNonTrovata) {
			ctx.AbortWithStatus(http.StatusNotFound)
		} else {
			h.logger.Error("caricamento proposta per export fallito",
				elog.FieldErr(err),
				elog.Int64("id", id))
			ctx.AbortWithStatus(http.StatusInternalServerError)
		}
		return domain.Proposta{}, false
	}
	return p, true
}

func (h *AdminHandler) filtrate(ctx context.Context, req ListaReq) ([]domain.Proposta, error) {
	proposte, err := h.svc.Lista(ctx)
	if err != nil {
		return nil, err
	}
	f := domain.Filtro{
		Ricerca:   req.Ricerca,
		Categoria: req.Categoria,
		Stato:     req.Stato,
	}
	return f.Applica(proposte), nil
}

func scaricaFile(ctx *gin.Context, nome, contentType string, data []byte) {
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nome))
	ctx.Data(http.StatusOK, contentType, data)
}
