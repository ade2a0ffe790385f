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
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/intusaps/intus-website/internal/document/internal/errs"
	"github.com/intusaps/intus-website/internal/document/internal/service"
)

// Handler fa da proxy verso l'archivio documentale esterno: l'API key non
// deve mai raggiungere il browser.
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
	server.GET("/documenti/health", ginx.W(h.Salute))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/documenti/upload", h.Upload)
	server.POST("/documenti/allegato", h.UploadAllegato)
	server.GET("/documenti/list", ginx.W(h.Lista))
	server.POST("/documenti/delete", ginx.B[DeleteReq](h.Elimina))
	server.GET("/documenti/rate-limit", ginx.W(h.StatoLimite))
}

func (h *Handler) Upload(ctx *gin.Context) {
	h.uploadCon(ctx, func(up service.Upload) (service.EsitoUpload, error) {
		up.Nome = ctx.PostForm("name")
		up.Descrizione = ctx.PostForm("description")
		up.Categoria = ctx.PostForm("category")
		return h.svc.UploadDocumento(ctx, up)
	})
}

func (h *Handler) UploadAllegato(ctx *gin.Context) {
	h.uploadCon(ctx, func(up service.Upload) (service.EsitoUpload, error) {
		return h.svc.UploadAllegato(ctx, up)
	})
}

func (h *Handler) uploadCon(ctx *gin.Context,
	invia func(service.Upload) (service.EsitoUpload, error)) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ginx.Result{
			Code: errs.FileNonValido.Code,
			Msg:  errs.FileNonValido.Msg,
		})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, systemErrorResult)
		return
	}
	defer func() { _ = f.Close() }()

	esito, err := invia(service.Upload{
		NomeFile:   fileHeader.Filename,
		Contenuto:  f,
		Dimensione: fileHeader.Size,
	})
	switch {
	case errors.Is(err, service.ErrLimiteUpload):
		ctx.JSON(http.StatusTooManyRequests, ginx.Result{
			Code: errs.LimiteSuperato.Code,
			Msg:  errs.LimiteSuperato.Msg,
		})
	case errors.Is(err, service.ErrFileTroppoGrande),
		errors.Is(err, service.ErrEstensioneNonValida),
		errors.Is(err, service.ErrNomeFileNonValido):
		ctx.JSON(http.StatusBadRequest, ginx.Result{
			Code: errs.FileNonValido.Code,
			Msg:  err.Error(),
		})
	case err != nil:
		h.logger.Error("upload documento fallito", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, systemErrorResult)
	default:
		ctx.JSON(http.StatusOK, ginx.Result{Data: esito})
	}
}

func (h *Handler) Lista(ctx *ginx.Context) (ginx.Result, error) {
	docs, err := h.svc.Lista(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: docs,
	}, nil
}

func (h *Handler) Elimina(ctx *ginx.Context, req DeleteReq) (ginx.Result, error) {
	err := h.svc.Elimina(ctx, req.Source, req.Filename)
	if err != nil {
		if errors.Is(err, service.ErrParametriNonValidi) {
			return ginx.Result{
				Code: errs.FileNonValido.Code,
				Msg:  errs.FileNonValido.Msg,
			}, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Salute(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{
		Data: h.svc.Salute(ctx),
	}, nil
}

func (h *Handler) StatoLimite(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{
		Data: h.svc.StatoLimite(),
	}, nil
}
