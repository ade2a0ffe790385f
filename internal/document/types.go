package document

import (
	"github.com/intusaps/intus-website/internal/document/internal/domain"
	"github.com/intusaps/intus-website/internal/document/internal/service"
	"github.com/intusaps/intus-website/internal/document/internal/web"
)

type Handler = web.Handler
type Documento = domain.Documento
type Service = service.Service

type Module struct {
	Hdl *Handler
	Svc Service
}
