package configsdatabase

import (
	"fmt"
	"time"

	"wildhearts.link/configs"
	"wildhearts.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var db *gorm.DB

// DBConfig veritabanı bağlantı ayarlarını tutar.
type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Path     string // Sadece sqlite
	LogLevel logger.LogLevel
}

// LoadDBConfig ayarları ortam değişkenlerinden okur.
func LoadDBConfig() DBConfig {
	logLevel := logger.Warn
	if configs.GetEnvBool("DB_LOG_SQL", false) {
		logLevel = logger.Info
	}
	return DBConfig{
		Driver:   configs.GetEnv("DB_DRIVER", DriverPostgres),
		Host:     configs.GetEnv("DB_HOST", "localhost"),
		Port:     configs.GetEnv("DB_PORT", "5432"),
		User:     configs.GetEnv("DB_USER", "postgres"),
		Password: configs.GetEnv("DB_PASSWORD", ""),
		Name:     configs.GetEnv("DB_NAME", "wildhearts"),
		SSLMode:  configs.GetEnv("DB_SSLMODE", "disable"),
		Path:     configs.GetEnv("DB_PATH", "wildhearts.db"),
		LogLevel: logLevel,
	}
}

// DSN postgres bağlantı cümlesini üretir.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Open verilen ayarlarla yeni bir gorm bağlantısı açar. Global değişkene dokunmaz.
func Open(cfg DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	case DriverSQLite:
		dialector = sqlite.Open(cfg.Path)
	default:
		return nil, fmt.Errorf("desteklenmeyen DB_DRIVER: %q", cfg.Driver)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(cfg.LogLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Driver == DriverSQLite {
		// sqlite tek yazıcı ile çalışır; ":memory:" için bağlantı paylaşımı da gerekir.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}
	return conn, nil
}

// InitDB global bağlantıyı ortam ayarlarıyla kurar. Bağlantı kurulamazsa uygulama durur.
func InitDB() {
	cfg := LoadDBConfig()
	conn, err := Open(cfg)
	if err != nil {
		configslog.Log.Fatal("Veritabanına bağlanılamadı", zap.String("driver", cfg.Driver), zap.Error(err))
	}
	db = conn
	configslog.SLog.Infof("Veritabanı bağlantısı kuruldu (driver: %s)", cfg.Driver)
}

// GetDB global bağlantıyı döndürür. InitDB'den önce çağrılırsa nil döner.
func GetDB() *gorm.DB {
	return db
}

// CloseDB global bağlantıyı kapatır.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Veritabanı bağlantısı alınamadı", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
		return
	}
	configslog.SLog.Info("Veritabanı bağlantısı kapatıldı")
}
