package redis

import (
	"context"
	"fmt"
	"time"

	"userhub/be/biz/config"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

func Init() {
	conf := config.GetRedisConf()
	addr := fmt.Sprintf("%s:%d", conf.IP, conf.Port)

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		panic(err)
	}

	hlog.Infof("redis connected: %s/%d", addr, conf.DB)
	client = rdb
}

func GetRedisClient() *redis.Client {
	return client
}
