package db

import (
	"userhub/be/biz/config"
	"userhub/be/biz/db/mysql"
	"userhub/be/biz/db/redis"
	"userhub/be/biz/db/s3"
	"userhub/be/biz/db/sqlite"
)

// Init connects the backend selected by store.driver.
func Init() {
	switch config.GetStoreConf().Driver {
	case config.DriverMySQL:
		mysql.Init()
	case config.DriverSQLite:
		sqlite.Init()
	case config.DriverRedis:
		redis.Init()
	case config.DriverS3:
		s3.Init()
	}
}
