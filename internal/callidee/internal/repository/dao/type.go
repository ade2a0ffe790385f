package dao

import (
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/intusaps/intus-website/internal/callidee/internal/domain"
)

// Proposta è la riga della tabella call_idee_giovani. Le strutture annidate
// (liste di partecipanti, spese, valutazione) vivono in colonne JSON.
type Proposta struct {
	Id                     int64                                         `gorm:"primaryKey,autoIncrement"`
	SN                     string                                        `gorm:"column:sn;type:varchar(255);uniqueIndex"`
	TitoloProgetto         string                                        `gorm:"type:varchar(512);not null"`
	DescrizioneProgetto    string                                        `gorm:"type:text"`
	Coprogramma            sqlx.JsonColumn[[]domain.AttivitaCoprogramma] `gorm:"type:json"`
	DataInizio             string                                        `gorm:"type:varchar(32)"`
	DataFine               string                                        `gorm:"type:varchar(32)"`
	Autorizzazioni         string                                        `gorm:"type:text"`
	ReferenteNome          string                                        `gorm:"type:varchar(256)"`
	ReferenteCognome       string                                        `gorm:"type:varchar(256)"`
	ReferenteEmail         string                                        `gorm:"type:varchar(256)"`
	ReferenteTelefono      string                                        `gorm:"type:varchar(64)"`
	ReferenteDataNascita   string                                        `gorm:"type:varchar(32)"`
	ReferenteCodiceFiscale string                                        `gorm:"type:varchar(16)"`
	NumeroPartecipanti     string                                        `gorm:"type:varchar(8)"`
	DescrizioneGruppo      string                                        `gorm:"type:text"`
	Partecipanti           sqlx.JsonColumn[[]domain.Partecipante]        `gorm:"type:json"`
	FigureSupporto         sqlx.JsonColumn[[]domain.FiguraSupporto]      `gorm:"type:json"`
	LuogoSvolgimento       string                                        `gorm:"type:varchar(256)"`
	Categoria              string                                        `gorm:"type:varchar(64);index:idx_categoria"`
	CategoriaDescrizione   string                                        `gorm:"type:text"`
	TipoEvento             string                                        `gorm:"type:varchar(256)"`
	DescrizioneEvento      string                                        `gorm:"type:text"`
	Altro                  string                                        `gorm:"type:text"`
	Allegati               sqlx.JsonColumn[[]domain.Allegato]            `gorm:"type:json"`
	SpeseAttrezzature      sqlx.JsonColumn[[]domain.VoceSpesa]           `gorm:"type:json"`
	SpeseServizi           sqlx.JsonColumn[[]domain.VoceSpesa]           `gorm:"type:json"`
	SpeseGenerali          sqlx.JsonColumn[domain.SpeseGenerali]         `gorm:"type:json"`
	Valutazione            sqlx.JsonColumn[domain.Valutazione]           `gorm:"type:json"`
	Ctime                  int64
	Utime                  int64
}

func (Proposta) TableName() string {
	return "call_idee_giovani"
}

func InitTable(db *egorm.Component) error {
	return db.AutoMigrate(&Proposta{})
}
