package models

import (
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RSVPStatus misafirin katılım kararıdır.
type RSVPStatus string

const (
	RSVPStatusAttending    RSVPStatus = "yes" // Katılacak
	RSVPStatusNotAttending RSVPStatus = "no"  // Katılmayacak
)

// IsValid bilinen bir karar olup olmadığını söyler.
func (s RSVPStatus) IsValid() bool {
	return s == RSVPStatusAttending || s == RSVPStatusNotAttending
}

// ValidEmail LCV'de kabul edilen e-posta biçimini kontrol eder. Sihirbazın ilk
// adımı ve kayıt doğrulaması aynı kuralı kullanır.
func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(strings.TrimSpace(email))
	return err == nil
}

// RSVPResponse misafir formundan gelen LCV yanıtıdır. Sadece eklenir; düzenlenmez, silinmez.
type RSVPResponse struct {
	BaseModel
	Reference           string     `gorm:"type:varchar(36);uniqueIndex;not null" json:"reference"`
	Name                string     `gorm:"type:varchar(150);not null" json:"name"`
	Email               string     `gorm:"type:varchar(150);not null;index" json:"email"`
	Attending           RSVPStatus `gorm:"type:varchar(10);not null;index" json:"attending"`
	Guests              int        `gorm:"type:integer;not null;default:1" json:"guests"`
	Message             string     `gorm:"type:text" json:"message"`
	DietaryRestrictions string     `gorm:"type:text" json:"dietaryRestrictions"`
}

func (RSVPResponse) TableName() string {
	return "rsvps"
}

// BeforeCreate misafire gösterilecek onay kodunu üretir.
func (r *RSVPResponse) BeforeCreate(tx *gorm.DB) error {
	if r.Reference == "" {
		r.Reference = uuid.NewString()
	}
	return nil
}

// PartySize kişi sayısını döndürür; katılmayanlar için 0.
func (r RSVPResponse) PartySize() int {
	if r.Attending != RSVPStatusAttending {
		return 0
	}
	return r.Guests
}
