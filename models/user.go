package models

// User admin paneline giriş yapabilen kullanıcıdır. Rol modeli yoktur;
// geçerli bir oturum tek başına yetki sayılır.
type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Name         string `gorm:"type:varchar(100)" json:"name"`
}
