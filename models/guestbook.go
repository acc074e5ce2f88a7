package models

// GuestbookEntry ziyaretçi defterine bırakılan nottur. Sadece eklenir.
type GuestbookEntry struct {
	BaseModel
	Name     string `gorm:"type:varchar(150);not null" json:"name"`
	Message  string `gorm:"type:text;not null" json:"message"`
	Location string `gorm:"type:varchar(150)" json:"location,omitempty"`
}

func (GuestbookEntry) TableName() string {
	return "guestbook"
}
