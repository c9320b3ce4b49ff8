package accesslog

import (
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/logger/accesslog"
)

// New logs one line per request through hlog, so the line carries the log id.
func New() app.HandlerFunc {
	return accesslog.New(
		accesslog.WithAccessLogFunc(hlog.CtxInfof),
		accesslog.WithTimeFormat(time.RFC3339),
		accesslog.WithFormat("[${time}] ${status} - ${latency} ${method} ${path} ${ip}"),
	)
}
