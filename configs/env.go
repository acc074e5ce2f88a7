package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"wildhearts.link/configs/configslog"

	"github.com/joho/godotenv"
)

// InitEnv .env dosyasını (varsa) ortam değişkenlerine yükler.
// Dosya yoksa sadece mevcut ortam değişkenleri kullanılır.
func InitEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			configslog.SLog.Warnf("%s dosyası yüklenemedi: %v", f, err)
			continue
		}
		configslog.SLog.Debugf("%s dosyası yüklendi", f)
	}
}

// GetEnv boş değilse değişkenin değerini, aksi halde defaultValue döndürür.
func GetEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	raw := GetEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		configslog.SLog.Warnf("%s sayı değil (%q), varsayılan %d kullanılıyor", key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func GetEnvBool(key string, defaultValue bool) bool {
	raw := GetEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		configslog.SLog.Warnf("%s bool değil (%q), varsayılan %t kullanılıyor", key, raw, defaultValue)
		return defaultValue
	}
	return v
}

// GetEnvSeconds tam sayı saniye değerini time.Duration olarak okur.
func GetEnvSeconds(key string, defaultValue time.Duration) time.Duration {
	secs := GetEnvInt(key, -1)
	if secs < 0 {
		return defaultValue
	}
	return time.Duration(secs) * time.Second
}
