package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Init inicializa el logger global con el nivel indicado ("debug", "info", ...).
// Los mensajes publicados en el exchange solo se registran en nivel debug.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "json"            // Logs estructurados en JSON
	cfg.EncoderConfig.TimeKey = "ts" // timestamp
	cfg.EncoderConfig.MessageKey = "msg"
	cfg.EncoderConfig.LevelKey = "level"
	cfg.EncoderConfig.CallerKey = "caller"

	log, err = cfg.Build()
	return err
}

// Logger retorna el logger estructurado
func Logger() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
