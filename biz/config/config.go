package config

import (
	"os"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gopkg.in/yaml.v3"
)

func Init(filepath string) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		panic(err)
	}

	var conf ServiceConf
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(err)
	}
	globalConfig = conf

	hlog.Debugf("config debug: %+v", globalConfig)
}

func GetServerConf() ServerConf {
	return globalConfig.Server
}

func GetStoreConf() StoreConf {
	return globalConfig.Store
}

func GetMySQLConf() MySQLConf {
	return globalConfig.MySQL
}

func GetSQLiteConf() SQLiteConf {
	return globalConfig.SQLite
}

func GetRedisConf() RedisConf {
	return globalConfig.Redis
}

func GetS3Conf() S3Conf {
	return globalConfig.S3
}

func GetCORSConf() CORSConf {
	return globalConfig.CORS
}

func GetLoggerConf() LoggerConf {
	return globalConfig.Logger
}

var globalConfig ServiceConf

type ServiceConf struct {
	Server ServerConf `yaml:"server"`
	Store  StoreConf  `yaml:"store"`
	MySQL  MySQLConf  `yaml:"mysql"`
	SQLite SQLiteConf `yaml:"sqlite"`
	Redis  RedisConf  `yaml:"redis"`
	S3     S3Conf     `yaml:"s3"`
	CORS   CORSConf   `yaml:"cors"`
	Logger LoggerConf `yaml:"logger"`
}

type ServerConf struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	StaticDir string `yaml:"static_dir"`
}

const (
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
	DriverS3     = "s3"
)

type StoreConf struct {
	Driver     string `yaml:"driver"`
	FilePath   string `yaml:"file_path"`
	MaxRetries int    `yaml:"max_retries"`
}

type MySQLConf struct {
	DBName   string `yaml:"db_name"`
	IP       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type SQLiteConf struct {
	Path string `yaml:"path"`
}

type RedisConf struct {
	IP       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`
}

type S3Conf struct {
	Region       string `yaml:"region"`
	BaseEndpoint string `yaml:"base_endpoint"`
	AccessKey    string `yaml:"access_key"`
	SecretKey    string `yaml:"secret_key"`
	Bucket       string `yaml:"bucket"`
	Key          string `yaml:"key"`
	UsePathStyle bool   `yaml:"use_path_style"`
}

type CORSConf struct {
	AllowOrigins     []string `yaml:"allow_origins"`
	AllowMethods     []string `yaml:"allow_methods"`
	AllowHeaders     []string `yaml:"allow_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

type LoggerConf struct {
	Level      string `yaml:"level"`
	Dir        string `yaml:"dir"`
	FileName   string `yaml:"file_name"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Stdout     bool   `yaml:"stdout"`
}
