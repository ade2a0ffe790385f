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

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
	"github.com/intusaps/intus-website/internal/blog"
	"github.com/intusaps/intus-website/internal/callidee"
	"github.com/intusaps/intus-website/internal/document"
	"github.com/intusaps/intus-website/internal/project"
)

type AdminServer *egin.Component

func InitAdminServer(ideeHdl *callidee.AdminHandler,
	blogHdl *blog.Handler,
	prjHdl *project.Handler,
	docHdl *document.Handler,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"X-Timestamp", "Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// solo il nostro dominio
			return strings.Contains(origin, "intusaps.it")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	// verifica del login
	res.Use(session.CheckLoginMiddleware())
	res.Use(AdminPermission())
	ideeHdl.PrivateRoutes(res.Engine)
	blogHdl.PrivateRoutes(res.Engine)
	prjHdl.PrivateRoutes(res.Engine)
	docHdl.PrivateRoutes(res.Engine)
	return res
}

func AdminPermission() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		xctx := &ginx.Context{Context: ctx}
		sess, err := session.Get(xctx)
		if err != nil {
			ctx.AbortWithStatus(http.StatusInternalServerError)
			elog.Error("accesso illegittimo alle API admin", elog.FieldErr(err))
			return
		}
		if sess.Claims().Get("creator").StringOrDefault("") != "true" {
			ctx.AbortWithStatus(http.StatusInternalServerError)
			elog.Error("accesso illegittimo alle API admin, permesso mancante")
			return
		}
	}
}
