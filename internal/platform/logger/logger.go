package logger

import (
	"fmt"

	"github.com/ogurasousui/codex-payroll-console/internal/platform/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New は設定から zap.Logger を構築します。verbose が真の場合はレベルを debug に上書きします。
func New(cfg config.LogConfig, verbose bool) (*zap.Logger, error) {
	zcfg, err := BuildConfig(cfg, verbose)
	if err != nil {
		return nil, err
	}

	l, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logger: build: %w", err)
	}
	return l, nil
}

// BuildConfig は LogConfig を zap.Config に変換します。
func BuildConfig(cfg config.LogConfig, verbose bool) (zap.Config, error) {
	zcfg := zap.NewProductionConfig()

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return zap.Config{}, fmt.Errorf("logger: parse level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	if cfg.Encoding != "" {
		zcfg.Encoding = cfg.Encoding
	}
	if len(cfg.OutputPaths) > 0 {
		zcfg.OutputPaths = cfg.OutputPaths
	}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg, nil
}
