package countdown

import (
	"time"
)

// DateLayout hedef tarihin biçimidir.
const DateLayout = "2006-01-02"

// Remaining kalan süreyi gün/saat/dakika/saniye olarak tutar.
type Remaining struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
	Passed  bool  `json:"passed"`
}

// Between now ve target arasındaki farkı parçalara ayırır.
// Hedef geçmişte ya da şu an ise tüm alanlar sıfır olur ve Passed true döner.
func Between(now, target time.Time) Remaining {
	d := target.Sub(now)
	if d <= 0 {
		return Remaining{Passed: true}
	}
	total := int64(d / time.Second)
	return Remaining{
		Days:    total / 86400,
		Hours:   (total / 3600) % 24,
		Minutes: (total / 60) % 60,
		Seconds: total % 60,
	}
}

// Target YYYY-MM-DD tarihini UTC gece yarısı olarak çözer.
func Target(date string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, time.UTC)
}

// Until tarih metninden kalan süreyi hesaplar.
func Until(now time.Time, date string) (Remaining, error) {
	target, err := Target(date)
	if err != nil {
		return Remaining{}, err
	}
	return Between(now, target), nil
}
