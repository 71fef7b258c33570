package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration
type Config struct {
	Level       string
	ServiceName string
	Development bool
}

// Logger wraps a zap.Logger
type Logger struct {
	*zap.Logger
}

var global *Logger

// Init initializes the global logger
func Init(cfg *Config) error {
	var zapCfg zap.Config
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	if level, err := zapcore.ParseLevel(cfg.Level); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	zapCfg.InitialFields = map[string]interface{}{
		"service": cfg.ServiceName,
	}

	log, err := zapCfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		return err
	}

	global = &Logger{Logger: log}
	return nil
}

// Get returns the global logger, falling back to a no-op logger before Init
func Get() *Logger {
	if global == nil {
		return &Logger{Logger: zap.NewNop()}
	}
	return global
}

// Sync flushes any buffered log entries
func Sync() {
	if global != nil {
		_ = global.Logger.Sync()
	}
}
