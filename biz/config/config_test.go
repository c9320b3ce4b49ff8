package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "deploy.yml")
	if err := os.WriteFile(p, []byte(`server:
  host: "127.0.0.1"
  port: 3000
  static_dir: "public"

store:
  driver: "redis"
  file_path: "users.json"
  max_retries: 3

redis:
  ip: "127.0.0.1"
  port: 6379
  password: ""
  db: 0
  key: "userhub:users"

s3:
  region: "us-east-1"
  bucket: "userhub"
  key: "users.json"
  use_path_style: true

cors:
  allow_origins:
    - "*"
  allow_methods:
    - "GET"
  allow_headers:
    - "Origin"
  allow_credentials: true
  max_age: 600

logger:
  level: "debug"
  dir: "./log"
`), 0600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	Init(p)
	assert.Equal(t, 3000, GetServerConf().Port)
	assert.Equal(t, DriverRedis, GetStoreConf().Driver)
	assert.Equal(t, 3, GetStoreConf().MaxRetries)
	assert.Equal(t, "userhub:users", GetRedisConf().Key)
	assert.True(t, GetS3Conf().UsePathStyle)
	assert.Equal(t, []string{"*"}, GetCORSConf().AllowOrigins)
	assert.Equal(t, "debug", GetLoggerConf().Level)
	assert.Empty(t, GetMySQLConf().IP)
}

func TestInit_Panics(t *testing.T) {
	assert.Panics(t, func() { Init(filepath.Join(t.TempDir(), "missing.yml")) })

	p := filepath.Join(t.TempDir(), "bad.yml")
	assert.NoError(t, os.WriteFile(p, []byte("server: [1, 2"), 0600))
	assert.Panics(t, func() { Init(p) })
}
