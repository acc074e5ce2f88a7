package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound istenen kayıt bulunamadığında döner.
var ErrNotFound = errors.New("kayıt bulunamadı")

type txKey struct{}

// ContextWithTx işlemi context üzerinden repository'lere taşır.
func ContextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// dbFromContext context'te transaction varsa onu, yoksa ana bağlantıyı context ile döndürür.
func dbFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
