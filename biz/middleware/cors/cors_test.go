package cors

import (
	"testing"
	"time"

	"userhub/be/biz/config"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := newConfig(config.CORSConf{})
		assert.Equal(t, defaultMethods, cfg.AllowMethods)
		assert.Equal(t, 12*time.Hour, cfg.MaxAge)
		assert.NotNil(t, cfg.AllowOriginFunc)
		assert.False(t, cfg.AllowAllOrigins)
	})

	t.Run("wildcard without credentials", func(t *testing.T) {
		cfg := newConfig(config.CORSConf{AllowOrigins: []string{"*"}, MaxAge: 60})
		assert.True(t, cfg.AllowAllOrigins)
		assert.Equal(t, time.Minute, cfg.MaxAge)
	})

	t.Run("wildcard with credentials", func(t *testing.T) {
		cfg := newConfig(config.CORSConf{AllowOrigins: []string{"*"}, AllowCredentials: true})
		assert.False(t, cfg.AllowAllOrigins)
		assert.True(t, cfg.AllowOriginFunc("https://example.com"))
	})

	t.Run("explicit origins", func(t *testing.T) {
		cfg := newConfig(config.CORSConf{AllowOrigins: []string{"https://example.com"}})
		assert.Equal(t, []string{"https://example.com"}, cfg.AllowOrigins)
		assert.Nil(t, cfg.AllowOriginFunc)
	})
}
