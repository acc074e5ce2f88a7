package models

import (
	"time"

	"gorm.io/gorm"
)

type contextKey string

// ContextUserIDKey işlemi yapan admin kullanıcının ID'sini context'te taşır.
// WeddingContentRow.BeforeSave bu anahtardan UpdatedBy alanını doldurur.
const ContextUserIDKey contextKey = "user_id"

// BaseModel tüm tablolarda ortak alanları içerir.
type BaseModel struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// UserIDFromContext context'te admin ID varsa döndürür.
func UserIDFromContext(db *gorm.DB) (uint, bool) {
	if db == nil || db.Statement == nil || db.Statement.Context == nil {
		return 0, false
	}
	id, ok := db.Statement.Context.Value(ContextUserIDKey).(uint)
	return id, ok && id != 0
}
