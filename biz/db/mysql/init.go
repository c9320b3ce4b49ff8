package mysql

import (
	"fmt"

	"userhub/be/biz/config"
	"userhub/be/biz/model/storage"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var dbConn *gorm.DB

func Init() {
	conf := config.GetMySQLConf()
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		conf.Username, conf.Password, conf.IP, conf.Port, conf.DBName)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic(err)
	}
	if err := db.AutoMigrate(&storage.UserRecord{}); err != nil {
		panic(err)
	}

	hlog.Infof("mysql connected: %s:%d/%s", conf.IP, conf.Port, conf.DBName)
	dbConn = db
}

func GetDbConn() *gorm.DB {
	return dbConn
}
