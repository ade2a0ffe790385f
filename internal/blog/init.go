package blog

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/intusaps/intus-website/internal/blog/internal/repository/dao"
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

func initArticoloDAO(db *egorm.Component) dao.ArticoloDAO {
	initTableOnce(db)
	return dao.NewArticoloDAO(db)
}
