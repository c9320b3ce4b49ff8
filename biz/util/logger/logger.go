package logger

import (
	"context"
	"fmt"
	"io"

	"userhub/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/sirupsen/logrus"
)

const (
	fieldLogID    = "log_id"
	fieldClientIP = "client_ip"
)

func Init() {
	hlog.SetLogger(NewLogger(logrus.New()))
	hlog.SetOutput(newOutput())
	hlog.SetLevel(newLevel())
}

var _ hlog.FullLogger = (*Logger)(nil)

// Logger adapts logrus to hlog.FullLogger.
type Logger struct {
	l *logrus.Logger
}

func NewLogger(l *logrus.Logger) *Logger {
	l.SetFormatter(&logrus.JSONFormatter{})
	return &Logger{l: l}
}

func (l *Logger) Logger() *logrus.Logger {
	return l.l
}

func (l *Logger) SetLevel(level hlog.Level) {
	var lv logrus.Level
	switch level {
	case hlog.LevelTrace:
		lv = logrus.TraceLevel
	case hlog.LevelDebug:
		lv = logrus.DebugLevel
	case hlog.LevelInfo:
		lv = logrus.InfoLevel
	case hlog.LevelNotice, hlog.LevelWarn:
		lv = logrus.WarnLevel
	case hlog.LevelError:
		lv = logrus.ErrorLevel
	case hlog.LevelFatal:
		lv = logrus.FatalLevel
	default:
		lv = logrus.WarnLevel
	}
	l.l.SetLevel(lv)
}

func (l *Logger) SetOutput(w io.Writer) {
	l.l.SetOutput(w)
}

func (l *Logger) Trace(v ...interface{})  { l.l.Trace(v...) }
func (l *Logger) Debug(v ...interface{})  { l.l.Debug(v...) }
func (l *Logger) Info(v ...interface{})   { l.l.Info(v...) }
func (l *Logger) Notice(v ...interface{}) { l.l.Warn(v...) }
func (l *Logger) Warn(v ...interface{})   { l.l.Warn(v...) }
func (l *Logger) Error(v ...interface{})  { l.l.Error(v...) }
func (l *Logger) Fatal(v ...interface{})  { l.l.Fatal(v...) }

func (l *Logger) Tracef(format string, v ...interface{})  { l.l.Tracef(format, v...) }
func (l *Logger) Debugf(format string, v ...interface{})  { l.l.Debugf(format, v...) }
func (l *Logger) Infof(format string, v ...interface{})   { l.l.Infof(format, v...) }
func (l *Logger) Noticef(format string, v ...interface{}) { l.l.Warnf(format, v...) }
func (l *Logger) Warnf(format string, v ...interface{})   { l.l.Warnf(format, v...) }
func (l *Logger) Errorf(format string, v ...interface{})  { l.l.Errorf(format, v...) }
func (l *Logger) Fatalf(format string, v ...interface{})  { l.l.Fatalf(format, v...) }

func (l *Logger) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	l.ctxLog(ctx, logrus.TraceLevel, format, v...)
}

func (l *Logger) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	l.ctxLog(ctx, logrus.DebugLevel, format, v...)
}

func (l *Logger) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	l.ctxLog(ctx, logrus.InfoLevel, format, v...)
}

func (l *Logger) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	l.ctxLog(ctx, logrus.WarnLevel, format, v...)
}

func (l *Logger) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	l.ctxLog(ctx, logrus.WarnLevel, format, v...)
}

func (l *Logger) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	l.ctxLog(ctx, logrus.ErrorLevel, format, v...)
}

func (l *Logger) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	l.ctxLog(ctx, logrus.FatalLevel, format, v...)
	l.l.Exit(1)
}

func (l *Logger) ctxLog(ctx context.Context, level logrus.Level, format string, v ...interface{}) {
	if !l.l.IsLevelEnabled(level) {
		return
	}
	entry := logrus.NewEntry(l.l).WithContext(ctx)
	if logID := trace_info.GetLogId(ctx); logID != "" {
		entry = entry.WithField(fieldLogID, logID)
	}
	if ip := trace_info.GetClientIP(ctx); ip != "" {
		entry = entry.WithField(fieldClientIP, ip)
	}
	entry.Log(level, fmt.Sprintf(format, v...))
}
