package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"userhub/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := NewLogger(logrus.New())
	l.SetOutput(&buf)
	l.SetLevel(hlog.LevelTrace)
	return l, &buf
}

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLogger_CtxAddsLogID(t *testing.T) {
	l, buf := newTestLogger(t)

	ctx := trace_info.WithLogId(context.Background(), "abc123")
	ctx = trace_info.WithClientIP(ctx, "10.0.0.1")
	l.CtxInfof(ctx, "test info data: %d, %s", 123, "ttt")
	l.CtxErrorf(context.Background(), "no log id")

	got := lines(t, buf)
	require.Len(t, got, 2)
	assert.Equal(t, "test info data: 123, ttt", got[0]["msg"])
	assert.Equal(t, "info", got[0]["level"])
	assert.Equal(t, "abc123", got[0][fieldLogID])
	assert.Equal(t, "10.0.0.1", got[0][fieldClientIP])
	assert.Equal(t, "error", got[1]["level"])
	assert.NotContains(t, got[1], fieldLogID)
}

func TestLogger_Level(t *testing.T) {
	l, buf := newTestLogger(t)
	l.SetLevel(hlog.LevelWarn)

	l.Infof("hidden")
	l.CtxDebugf(context.Background(), "hidden")
	l.Noticef("notice %s", "shown")
	l.Error("shown")

	got := lines(t, buf)
	require.Len(t, got, 2)
	assert.Equal(t, "notice shown", got[0]["msg"])
	assert.Equal(t, "warning", got[0]["level"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, hlog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, hlog.LevelError, parseLevel("error"))
	assert.Equal(t, hlog.LevelTrace, parseLevel(""))
}
