package configs

import "time"

// AppConfig uygulama genelindeki ayarları tutar.
type AppConfig struct {
	Port               string
	RSVPConfirmDisplay time.Duration // Onay ekranının otomatik kapanma süresi
	RSVPMaxGuests      int
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ContentSeedFile    string
}

// LoadAppConfig ortam değişkenlerinden AppConfig üretir.
func LoadAppConfig() AppConfig {
	return AppConfig{
		Port:               GetEnv("APP_PORT", "3000"),
		RSVPConfirmDisplay: GetEnvSeconds("RSVP_CONFIRM_SECONDS", 3*time.Second),
		RSVPMaxGuests:      GetEnvInt("RSVP_MAX_GUESTS", 4),
		ReadTimeout:        GetEnvSeconds("HTTP_READ_TIMEOUT_SECONDS", 15*time.Second),
		WriteTimeout:       GetEnvSeconds("HTTP_WRITE_TIMEOUT_SECONDS", 15*time.Second),
		ContentSeedFile:    GetEnv("CONTENT_SEED_FILE", ""),
	}
}
