package cors

import (
	"slices"
	"time"

	"userhub/be/biz/config"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/cors"
)

var (
	defaultMethods = []string{"GET", "POST", "OPTIONS"}
	defaultHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Log-ID"}
)

func New() app.HandlerFunc {
	return cors.New(newConfig(config.GetCORSConf()))
}

func newConfig(conf config.CORSConf) cors.Config {
	cfg := cors.Config{
		AllowMethods:     defaultIfEmpty(conf.AllowMethods, defaultMethods),
		AllowHeaders:     defaultIfEmpty(conf.AllowHeaders, defaultHeaders),
		ExposeHeaders:    []string{"X-Log-ID"},
		AllowCredentials: conf.AllowCredentials,
		MaxAge:           time.Duration(conf.MaxAge) * time.Second,
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = 12 * time.Hour
	}

	switch {
	case len(conf.AllowOrigins) == 0, slices.Contains(conf.AllowOrigins, "*") && conf.AllowCredentials:
		// a literal "*" cannot be combined with credentials, echo the origin instead
		cfg.AllowOriginFunc = func(string) bool { return true }
	case slices.Contains(conf.AllowOrigins, "*"):
		cfg.AllowAllOrigins = true
	default:
		cfg.AllowOrigins = conf.AllowOrigins
	}
	return cfg
}

func defaultIfEmpty(v, def []string) []string {
	if len(v) == 0 {
		return def
	}
	return v
}
