// Package logger provides the shared zap logger instance.
package logger

import (
	"sync"

	"go.uber.org/zap"

	"ayoo/internal/config"
)

var (
	once     sync.Once
	instance *zap.Logger
)

// Get returns the process-wide logger, building it on first use.
func Get() *zap.Logger {
	once.Do(func() {
		var cfg zap.Config
		if config.IsProduction() {
			cfg = zap.NewProductionConfig()
		} else {
			cfg = zap.NewDevelopmentConfig()
		}
		cfg.OutputPaths = []string{"stdout"}
		l, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		instance = l
	})
	return instance
}

// Sugar returns the sugared form of the shared logger.
func Sugar() *zap.SugaredLogger {
	return Get().Sugar()
}
