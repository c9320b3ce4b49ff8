package trace_info

import (
	"context"
)

type logIdKey struct{}

type clientIPKey struct{}

func WithLogId(ctx context.Context, logId string) context.Context {
	return context.WithValue(ctx, logIdKey{}, logId)
}

func GetLogId(ctx context.Context) string {
	logId, _ := ctx.Value(logIdKey{}).(string)
	return logId
}

// WithClientIP records the remote address of the request being served.
func WithClientIP(ctx context.Context, ip string) context.Context {
	if ip == "" {
		return ctx
	}
	return context.WithValue(ctx, clientIPKey{}, ip)
}

func GetClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}
