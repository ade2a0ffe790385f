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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

// Articolo è la riga della tabella blog_posts.
type Articolo struct {
	Id           int64                     `gorm:"primaryKey,autoIncrement"`
	Titolo       string                    `gorm:"type:varchar(512);not null"`
	Categoria    string                    `gorm:"type:varchar(64);index:idx_blog_categoria"`
	Autore       string                    `gorm:"type:varchar(256)"`
	Excerpt      string                    `gorm:"type:text"`
	Contenuto    string                    `gorm:"type:longtext"`
	YoutubeURL   string                    `gorm:"column:youtube_url;type:varchar(512)"`
	CopertinaURL string                    `gorm:"column:copertina_url;type:varchar(512)"`
	Immagini     sqlx.JsonColumn[[]string] `gorm:"type:json"`
	Ctime        int64
	Utime        int64
}

func (Articolo) TableName() string {
	return "blog_posts"
}

func InitTable(db *egorm.Component) error {
	return db.AutoMigrate(&Articolo{})
}

type ArticoloDAO interface {
	Save(ctx context.Context, a Articolo) (int64, error)
	List(ctx context.Context, offset, limit int) ([]Articolo, error)
	Count(ctx context.Context) (int64, error)
	Get(ctx context.Context, id int64) (Articolo, error)
	Delete(ctx context.Context, id int64) error
}

type articoloDAO struct {
	db *egorm.Component
}

func NewArticoloDAO(db *egorm.Component) ArticoloDAO {
	return &articoloDAO{db: db}
}

func (d *articoloDAO) Save(ctx context.Context, a Articolo) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime = now
	a.Utime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{
			"titolo", "categoria", "autore", "excerpt", "contenuto",
			"youtube_url", "copertina_url", "immagini", "utime",
		}),
	}).Create(&a).Error
	return a.Id, err
}

func (d *articoloDAO) List(ctx context.Context, offset, limit int) ([]Articolo, error) {
	var res []Articolo
	err := d.db.WithContext(ctx).
		Order("ctime desc").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *articoloDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Articolo{}).Count(&count).Error
	return count, err
}

func (d *articoloDAO) Get(ctx context.Context, id int64) (Articolo, error) {
	var a Articolo
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	return a, err
}

func (d *articoloDAO) Delete(ctx context.Context, id int64) error {
	res := d.db.WithContext(ctx).Where("id = ?", id).Delete(&Articolo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
