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

package callidee

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/intusaps/intus-website/internal/callidee/internal/event"
	"github.com/intusaps/intus-website/internal/callidee/internal/repository/dao"
	"github.com/intusaps/intus-website/internal/callidee/internal/service"
	"github.com/intusaps/intus-website/internal/callidee/internal/web"
	"gorm.io/gorm"
)

var daoOnce = sync.Once{}

func initTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		if err := dao.InitTable(db); err != nil {
			panic(err)
		}
	})
}

func initPropostaDAO(db *egorm.Component) dao.PropostaDAO {
	initTableOnce(db)
	return dao.NewPropostaDAO(db)
}

func initProducer(q mq.MQ) (event.PropostaEventProducer, error) {
	return event.NewPropostaEventProducer(q)
}

type moduleConfig struct {
	LetteraTemplate string `yaml:"letteraTemplate"`
	Valutatore      string `yaml:"valutatore"`
}

func loadConfig() moduleConfig {
	var cfg moduleConfig
	if err := econf.UnmarshalKey("callIdee", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

// initAdminHandler legge da configurazione il percorso del modello della
// lettera di esito.
func initAdminHandler(svc service.Service) *web.AdminHandler {
	return web.NewAdminHandler(svc, loadConfig().LetteraTemplate)
}

func initReviewEngine(svc service.Service) *service.ReviewEngine {
	return service.NewReviewEngine(svc, loadConfig().Valutatore)
}
