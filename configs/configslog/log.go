package configslog

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış alanlarla loglama için kullanılır.
var Log *zap.Logger

// SLog printf tarzı loglama için kullanılır.
var SLog *zap.SugaredLogger

func init() {
	// InitLogger çağrılmadan önce (örn. testlerde) nil logger panik üretmesin.
	Log = zap.NewNop()
	SLog = Log.Sugar()
}

// InitLogger LOG_LEVEL ve APP_ENV değişkenlerine göre global logger'ı kurar.
func InitLogger() {
	level := zapcore.InfoLevel
	if raw := strings.TrimSpace(os.Getenv("LOG_LEVEL")); raw != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(raw))); err != nil {
			level = zapcore.InfoLevel
		}
	}

	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		logger = zap.NewExample()
		logger.Error("Logger kurulamadı, örnek logger kullanılıyor", zap.Error(err))
	}
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger bekleyen log kayıtlarını boşaltır. main içinde defer ile çağrılmalı.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
