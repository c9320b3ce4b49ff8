package sqlite

import (
	"userhub/be/biz/config"
	"userhub/be/biz/model/storage"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var dbConn *gorm.DB

func Init() {
	path := config.GetSQLiteConf().Path
	if path == "" {
		path = "users.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		panic(err)
	}
	if err := db.AutoMigrate(&storage.UserRecord{}); err != nil {
		panic(err)
	}

	hlog.Infof("sqlite opened: %s", path)
	dbConn = db
}

func GetDbConn() *gorm.DB {
	return dbConn
}
