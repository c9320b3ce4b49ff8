package middleware

import (
	"userhub/be/biz/middleware/accesslog"
	"userhub/be/biz/middleware/cors"
	"userhub/be/biz/middleware/recovery"
	"userhub/be/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
)

func Suite() []app.HandlerFunc {
	return []app.HandlerFunc{
		recovery.New(),  // panic handler
		trace.New(),     // 链路ID
		accesslog.New(), // 接口日志
		cors.New(),      // 跨域请求
	}
}
