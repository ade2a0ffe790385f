package document

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/intusaps/intus-website/internal/document/internal/service"
	"github.com/intusaps/intus-website/internal/document/internal/web"
)

// InitModule costruisce il client verso l'archivio documentale. La chiave
// API resta lato server.
func InitModule() (*Module, error) {
	type Config struct {
		BaseURL string `yaml:"baseURL"`
		APIKey  string `yaml:"apiKey"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("archivioDocumenti", &cfg); err != nil {
		return nil, err
	}
	svc := service.NewClient(cfg.BaseURL, cfg.APIKey, nil)
	return &Module{
		Hdl: web.NewHandler(svc),
		Svc: svc,
	}, nil
}
