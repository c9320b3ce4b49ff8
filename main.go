package main

import (
	"flag"

	"userhub/be/biz/config"
	"userhub/be/biz/db"
	"userhub/be/biz/util/ip"
	"userhub/be/biz/util/logger"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var confPath = flag.String("conf", "conf/deploy.yml", "config file path")

//	@title			userhub
//	@version		1.0
//	@description	用户注册, 登录与用户列表服务
//	@BasePath		/
func main() {
	flag.Parse()

	config.Init(*confPath)
	logger.Init()
	db.Init()

	h := NewEngine()
	hlog.Infof("server starting, ip: %s, store: %s", ip.IPv4(), config.GetStoreConf().Driver)
	h.Spin()
}
