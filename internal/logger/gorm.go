package logger

import (
	"github.com/deppfellow/chinook/internal/config"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

// gormWriter lets gorm print through zerolog at a fixed level.
type gormWriter struct {
	log   *zerolog.Logger
	level zerolog.Level
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.WithLevel(w.level).Str("component", "gorm").Msgf(format, args...)
}

// NewGormLogger adapts the application logger to gorm.
//
// Slow queries (above SlowQueryThreshold) and errors are always reported.
// At debug level every statement is traced as well.
func NewGormLogger(l *zerolog.Logger, cfg config.LoggingConfig) gormlogger.Interface {
	level := gormlogger.Warn
	writerLevel := zerolog.WarnLevel
	if l.GetLevel() <= zerolog.DebugLevel {
		level = gormlogger.Info
		writerLevel = zerolog.DebugLevel
	}

	return gormlogger.New(gormWriter{log: l, level: writerLevel}, gormlogger.Config{
		SlowThreshold:             cfg.SlowQueryThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
