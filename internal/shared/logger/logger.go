package logger

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	once   sync.Once
)

// GetLogger returns zap.Logger instance, but using singleton pattern creates only one reusable instace.
// Development config by default, production encoder when LOG_ENV=production, level from LOG_LEVEL
func GetLogger() *zap.Logger {
	once.Do(func() {
		// package level loggers are built before config.Load runs
		_ = godotenv.Load()
		var err error
		logger, err = build(os.Getenv("LOG_ENV"), os.Getenv("LOG_LEVEL"))
		if err != nil {
			panic("failed logger setup : " + err.Error())
		}
	})
	return logger
}

func build(env, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	if level != "" {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, err
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg.Build()
}
