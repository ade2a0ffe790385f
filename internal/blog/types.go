package blog

import (
	"github.com/intusaps/intus-website/internal/blog/internal/domain"
	"github.com/intusaps/intus-website/internal/blog/internal/service"
	"github.com/intusaps/intus-website/internal/blog/internal/web"
)

type Handler = web.Handler
type Articolo = domain.Articolo
type Service = service.Service

type Module struct {
	Hdl *Handler
	Svc Service
}
