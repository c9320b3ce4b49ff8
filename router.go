package main

import (
	"fmt"
	"os"

	"userhub/be/biz/config"
	"userhub/be/biz/handler"
	"userhub/be/biz/middleware"
	_ "userhub/be/docs"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"
)

const defaultPort = 3000

func NewEngine() *server.Hertz {
	conf := config.GetServerConf()
	port := conf.Port
	if port == 0 {
		port = defaultPort
	}

	h := server.New(
		server.WithHostPorts(fmt.Sprintf("%s:%d", conf.Host, port)),
		server.WithDisablePrintRoute(true),
	)
	h.Use(middleware.Suite()...)
	register(h, conf)
	return h
}

func register(h *server.Hertz, conf config.ServerConf) {
	api := h.Group("/api")
	api.POST("/register", handler.Register)
	api.POST("/login", handler.Login)
	api.GET("/users", handler.ListUsers)

	h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler))

	staticDir := conf.StaticDir
	if staticDir == "" {
		staticDir = "public"
	}
	if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
		h.Static("/", staticDir)
	} else {
		hlog.Warnf("static dir %q not found, skip static files", staticDir)
	}
}
