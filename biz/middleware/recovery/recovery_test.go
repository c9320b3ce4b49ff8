package recovery

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"userhub/be/biz/model/dto"
	"userhub/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery(t *testing.T) {
	h := server.New()
	h.Use(New())
	h.GET("/panic", func(ctx context.Context, c *app.RequestContext) {
		panic("boom")
	})

	w := ut.PerformRequest(h.Engine, http.MethodGet, "/panic", nil)
	res := w.Result()
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode())

	var r dto.CommonResp
	require.NoError(t, json.Unmarshal(res.Body(), &r))
	assert.False(t, r.Success)
	assert.Equal(t, int(errs.ServerError.Code()), r.Code)
	assert.NotContains(t, string(res.Body()), "boom")
}
