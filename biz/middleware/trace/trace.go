package trace

import (
	"context"

	"userhub/be/biz/util/id_gen"
	"userhub/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/app"
)

const (
	HeaderKeyLogId = "X-Log-ID"
)

func New() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		logID := c.Request.Header.Get(HeaderKeyLogId)
		if logID == "" {
			logID = id_gen.NewID()
		}
		ctx = trace_info.WithLogId(ctx, logID)
		ctx = trace_info.WithClientIP(ctx, c.ClientIP())
		c.Header(HeaderKeyLogId, logID)
		c.Next(ctx)
	}
}
