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
	"github.com/intusaps/intus-website/internal/project/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

// Progetto è la riga della tabella projects. Le liste vivono in colonne JSON.
type Progetto struct {
	Id                    int64                              `gorm:"primaryKey,autoIncrement"`
	Titolo                string                             `gorm:"type:varchar(512);not null"`
	Categoria             string                             `gorm:"type:varchar(64);index:idx_project_categoria"`
	Status                string                             `gorm:"type:varchar(32)"`
	DataInizio            string                             `gorm:"type:varchar(32)"`
	Luoghi                sqlx.JsonColumn[[]string]          `gorm:"type:json"`
	NumeroPartecipanti    string                             `gorm:"type:varchar(32)"`
	DescrizioneBreve      string                             `gorm:"type:text"`
	Contenuto             string                             `gorm:"type:longtext"`
	RuoloIntus            string                             `gorm:"type:text"`
	PartecipantiDiretti   string                             `gorm:"type:varchar(64)"`
	PartecipantiIndiretti string                             `gorm:"type:varchar(64)"`
	EnteFinanziatore      string                             `gorm:"type:varchar(256)"`
	LineaDiFinanziamento  string                             `gorm:"type:varchar(256)"`
	YoutubeURL            string                             `gorm:"column:youtube_url;type:varchar(512)"`
	YoutubeURLs           sqlx.JsonColumn[[]string]          `gorm:"column:youtube_urls;type:json"`
	Partner               sqlx.JsonColumn[[]domain.Partner]  `gorm:"type:json"`
	Immagini              sqlx.JsonColumn[[]string]          `gorm:"type:json"`
	Prodotti              sqlx.JsonColumn[[]domain.Prodotto] `gorm:"type:json"`
	Ctime                 int64
	Utime                 int64
}

func (Progetto) TableName() string {
	return "projects"
}

func InitTable(db *egorm.Component) error {
	return db.AutoMigrate(&Progetto{})
}

type ProgettoDAO interface {
	Save(ctx context.Context, p Progetto) (int64, error)
	List(ctx context.Context, offset, limit int) ([]Progetto, error)
	Count(ctx context.Context) (int64, error)
	Get(ctx context.Context, id int64) (Progetto, error)
	Delete(ctx context.Context, id int64) error
}

type progettoDAO struct {
	db *egorm.Component
}

func NewProgettoDAO(db *egorm.Component) ProgettoDAO {
	return &progettoDAO{db: db}
}

func (d *progettoDAO) Save(ctx context.Context, p Progetto) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{
			"titolo", "categoria", "status", "data_inizio", "luoghi",
			"numero_partecipanti", "descrizione_breve", "contenuto",
			"ruolo_intus", "partecipanti_diretti", "partecipanti_indiretti",
			"ente_finanziatore", "linea_di_finanziamento", "youtube_url",
			"youtube_urls", "partner", "immagini", "prodotti", "utime",
		}),
	}).Create(&p).Error
	return p.Id, err
}

func (d *progettoDAO) List(ctx context.Context, offset, limit int) ([]Progetto, error) {
	var res []Progetto
	err := d.db.WithContext(ctx).
		Order("ctime desc").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *progettoDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Progetto{}).Count(&count).Error
	return count, err
}

func (d *progettoDAO) Get(ctx context.Context, id int64) (Progetto, error) {
	var p Progetto
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (d *progettoDAO) Delete(ctx context.Context, id int64) error {
	res := d.db.WithContext(ctx).Where("id = ?", id).Delete(&Progetto{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
