package recovery

import (
	"context"

	"userhub/be/biz/model/errs"
	"userhub/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func New() app.HandlerFunc {
	return recovery.Recovery(recovery.WithRecoveryHandler(handle))
}

func handle(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
	hlog.CtxErrorf(ctx, "[Recovery] panic recovered: %v\n%s", err, stack)
	resp.AbortWithErr(c, errs.ServerError)
}
