//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/intusaps/intus-website/internal/blog"
	"github.com/intusaps/intus-website/internal/callidee"
	"github.com/intusaps/intus-website/internal/document"
	"github.com/intusaps/intus-website/internal/project"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		callidee.InitModule,
		wire.FieldsOf(new(*callidee.Module), "Hdl", "AdminHdl"),
		blog.InitModule,
		wire.FieldsOf(new(*blog.Module), "Hdl"),
		project.InitModule,
		wire.FieldsOf(new(*project.Module), "Hdl"),
		document.InitModule,
		wire.FieldsOf(new(*document.Module), "Hdl"),
		InitSession,
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
