package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/intusaps/intus-website/internal/blog"
	"github.com/intusaps/intus-website/internal/callidee"
	"github.com/intusaps/intus-website/internal/document"
	"github.com/intusaps/intus-website/internal/pkg/middleware"
	"github.com/intusaps/intus-website/internal/project"
)

func initGinxServer(sp session.Provider,
	ideeHdl *callidee.Handler,
	blogHdl *blog.Handler,
	prjHdl *project.Handler,
	docHdl *document.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(middleware.NewMetricsBuilder().Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
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
	ideeHdl.PublicRoutes(res.Engine)
	blogHdl.PublicRoutes(res.Engine)
	prjHdl.PublicRoutes(res.Engine)
	docHdl.PublicRoutes(res.Engine)
	return res
}
