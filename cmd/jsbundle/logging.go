package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"jsbundle/internal/buildpipeline"
	"jsbundle/internal/bundler"
	"jsbundle/internal/driver"
	"jsbundle/internal/graph"
	"jsbundle/internal/transform"
)

// parseLogLevel maps --log-level; enabled is false for "off".
func parseLogLevel(s string) (level zapcore.Level, enabled bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off":
		return zapcore.InfoLevel, false, nil
	case "error":
		return zapcore.ErrorLevel, true, nil
	case "warn":
		return zapcore.WarnLevel, true, nil
	case "info":
		return zapcore.InfoLevel, true, nil
	case "debug":
		return zapcore.DebugLevel, true, nil
	}
	return zapcore.InfoLevel, false, fmt.Errorf("invalid --log-level %q (expected off|error|warn|info|debug)", s)
}

// newLogger builds a console logger on stderr.
func newLogger(levelName string, colored bool) (*zap.Logger, error) {
	level, enabled, err := parseLogLevel(levelName)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return zap.NewNop(), nil
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	if colored {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level)
	return zap.New(core), nil
}

func installLogger(l *zap.Logger) {
	graph.SetLogger(l.Named("graph"))
	transform.SetLogger(l.Named("transform"))
	bundler.SetLogger(l.Named("bundler"))
	buildpipeline.SetLogger(l.Named("pipeline"))
	driver.SetLogger(l.Named("check"))
}
