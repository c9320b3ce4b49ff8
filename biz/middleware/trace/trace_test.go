package trace

import (
	"context"
	"net/http"
	"testing"

	"userhub/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
)

func TestTrace(t *testing.T) {
	var seen string
	h := server.New()
	h.Use(New())
	h.GET("/ping", func(ctx context.Context, c *app.RequestContext) {
		seen = trace_info.GetLogId(ctx)
		c.String(http.StatusOK, "pong")
	})

	w := ut.PerformRequest(h.Engine, http.MethodGet, "/ping", nil,
		ut.Header{Key: HeaderKeyLogId, Value: "given-id"})
	assert.Equal(t, "given-id", seen)
	assert.Equal(t, "given-id", string(w.Result().Header.Peek(HeaderKeyLogId)))

	w = ut.PerformRequest(h.Engine, http.MethodGet, "/ping", nil)
	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "given-id", seen)
	assert.Equal(t, seen, string(w.Result().Header.Peek(HeaderKeyLogId)))
}
