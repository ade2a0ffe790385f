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

package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/intusaps/intus-website/internal/callidee/internal/domain"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type PropostaDAO interface {
	// Crea inserisce la candidatura e ritorna l'id assegnato.
	Crea(ctx context.Context, p Proposta) (int64, error)
	// Lista ritorna tutte le candidature, più recenti per prime.
	Lista(ctx context.Context) ([]Proposta, error)
	Dettaglio(ctx context.Context, id int64) (Proposta, error)
	// AggiornaValutazione sostituisce il sotto-record valutazione.
	AggiornaValutazione(ctx context.Context, id int64, v domain.Valutazione) error
}

type propostaDAO struct {
	db *egorm.Component
}

func NewPropostaDAO(db *egorm.Component) PropostaDAO {
	return &propostaDAO{db: db}
}

func (d *propostaDAO) Crea(ctx context.Context, p Proposta) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	err := d.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (d *propostaDAO) Lista(ctx context.Context) ([]Proposta, error) {
	var res []Proposta
	err := d.db.WithContext(ctx).Order("ctime desc").Find(&res).Error
	return res, err
}

func (d *propostaDAO) Dettaglio(ctx context.Context, id int64) (Proposta, error) {
	var p Proposta
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (d *propostaDAO) AggiornaValutazione(ctx context.Context, id int64, v domain.Valutazione) error {
	res := d.db.WithContext(ctx).
		Model(&Proposta{}).
		Where("id = ?", id).Updates(map[string]any{
		"valutazione": sqlx.JsonColumn[domain.Valutazione]{Val: v, Valid: true},
		"utime":       time.Now().UnixMilli(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
