package project

import (
	"github.com/intusaps/intus-website/internal/project/internal/domain"
	"github.com/intusaps/intus-website/internal/project/internal/service"
	"github.com/intusaps/intus-website/internal/project/internal/web"
)

type Handler = web.Handler
type Progetto = domain.Progetto
type Service = service.Service

type Module struct {
	Hdl *Handler
	Svc Service
}
