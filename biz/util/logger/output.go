package logger

import (
	"io"
	"os"
	"path/filepath"

	"userhub/be/biz/config"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gopkg.in/natefinch/lumberjack.v2"
)

func newOutput() io.Writer {
	conf := config.GetLoggerConf()
	dir := conf.Dir
	if dir == "" {
		dir = "./log"
	}
	filename := conf.FileName
	if filename == "" {
		filename = "userhub.log"
	}

	maxSize := conf.MaxSize
	if maxSize == 0 {
		maxSize = 512
	}

	maxBackups := conf.MaxBackups
	if maxBackups == 0 {
		maxBackups = 10
	}

	maxAge := conf.MaxAge
	if maxAge == 0 {
		maxAge = 14
	}

	writers := []io.Writer{
		&lumberjack.Logger{
			Filename:   filepath.Join(dir, filename),
			MaxSize:    maxSize,
			MaxAge:     maxAge,
			MaxBackups: maxBackups,
			LocalTime:  true,
			Compress:   false,
		},
	}
	if conf.Stdout {
		writers = append(writers, os.Stdout)
	}
	return io.MultiWriter(writers...)
}

func newLevel() hlog.Level {
	return parseLevel(config.GetLoggerConf().Level)
}

func parseLevel(level string) hlog.Level {
	switch level {
	case "trace":
		return hlog.LevelTrace
	case "debug":
		return hlog.LevelDebug
	case "info":
		return hlog.LevelInfo
	case "notice":
		return hlog.LevelNotice
	case "warn":
		return hlog.LevelWarn
	case "error":
		return hlog.LevelError
	case "fatal":
		return hlog.LevelFatal
	}

	return hlog.LevelTrace
}
