package project

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/intusaps/intus-website/internal/project/internal/repository/dao"
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

func initProgettoDAO(db *egorm.Component) dao.ProgettoDAO {
	initTableOnce(db)
	return dao.NewProgettoDAO(db)
}
