package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"wildhearts.link/models/helpers"

	"gorm.io/gorm"
)

// WeddingDateLayout içerikteki takvim tarihlerinin biçimidir.
const WeddingDateLayout = "2006-01-02"

// ContentRowID sistemdeki tek içerik kaydının sabit ID'sidir.
const ContentRowID uint = 1

type CoupleNames struct {
	Partner1 string `json:"partner1"`
	Partner2 string `json:"partner2"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
	Elevation   string      `json:"elevation"`
}

// TimelineEvent hikayedeki bir durak. Sıra gösterim sırasıdır.
type TimelineEvent struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// GalleryImage galeri görseli. ID sadece arayüz anahtarıdır.
type GalleryImage struct {
	ID      int    `json:"id"`
	Image   string `json:"image"`
	Caption string `json:"caption"`
}

type Story struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Playlist struct {
	Title      string `json:"title"`
	SpotifyURL string `json:"spotifyUrl"`
}

// WeddingContent sitede gösterilen tüm düğün bilgilerini içeren tekil belgedir.
// Her zaman varsayılanlarla birleştirilmiş halde dolaşır.
type WeddingContent struct {
	CoupleNames CoupleNames     `json:"coupleNames"`
	WeddingDate string          `json:"weddingDate"`
	Location    Location        `json:"location"`
	HeroQuote   string          `json:"heroQuote"`
	Timeline    []TimelineEvent `json:"timeline"`
	Gallery     []GalleryImage  `json:"gallery"`
	GearList    []string        `json:"gearList"`
	Story       Story           `json:"story"`
	Playlist    Playlist        `json:"playlist"`
}

// DefaultContent yerleşik varsayılan içeriği döndürür. Her çağrı yeni kopya üretir.
func DefaultContent() WeddingContent {
	return WeddingContent{
		CoupleNames: CoupleNames{Partner1: "Alex", Partner2: "Jordan"},
		WeddingDate: "2024-08-15",
		Location: Location{
			Name:        "Yosemite National Park",
			Address:     "Glacier Point, CA",
			Coordinates: Coordinates{Lat: 37.7309, Lng: -119.5731},
			Elevation:   "7,214 ft",
		},
		HeroQuote: "Not all who wander are lost",
		Timeline: []TimelineEvent{
			{
				Date:        "2020-03-15",
				Title:       "First Hike Together",
				Description: "Where our adventure began on the Appalachian Trail",
				Image:       "https://images.unsplash.com/photo-1551632811-561732d1e306?w=800&h=600&fit=crop",
			},
			{
				Date:        "2022-06-20",
				Title:       "The Proposal",
				Description: "Under the stars at Mount Washington summit",
				Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=600&fit=crop",
			},
			{
				Date:        "2024-08-15",
				Title:       "Our Wedding Day",
				Description: `Saying "I do" at Glacier Point`,
				Image:       "https://images.unsplash.com/photo-1469474968028-56623f02e42e?w=800&h=600&fit=crop",
			},
		},
		Gallery: []GalleryImage{
			{ID: 1, Image: "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=1200&h=800&fit=crop", Caption: "Morning mist in the valley"},
			{ID: 2, Image: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=1200&h=800&fit=crop", Caption: "Summit celebrations"},
			{ID: 3, Image: "https://images.unsplash.com/photo-1551632811-561732d1e306?w=1200&h=800&fit=crop", Caption: "Trail adventures together"},
		},
		GearList: []string{"Hiking boots", "Warm layers", "Camera", "Sense of adventure"},
		Story: Story{
			Title:   "How We Eloped",
			Content: "Our love story began on a mountain trail and continues with every step we take together...",
		},
		Playlist: Playlist{
			Title:      "Our Adventure Soundtrack",
			SpotifyURL: "https://open.spotify.com/playlist/37i9dQZF1DX0XUsuxWHRQd",
		},
	}
}

// Clone slice alanları paylaşmayan derin bir kopya döndürür.
func (c WeddingContent) Clone() WeddingContent {
	out := c
	if c.Timeline != nil {
		out.Timeline = append([]TimelineEvent(nil), c.Timeline...)
	}
	if c.Gallery != nil {
		out.Gallery = append([]GalleryImage(nil), c.Gallery...)
	}
	if c.GearList != nil {
		out.GearList = append([]string(nil), c.GearList...)
	}
	return out
}

// WeddingTime düğün tarihini UTC gece yarısı olarak döndürür.
func (c WeddingContent) WeddingTime() (time.Time, error) {
	return time.ParseInLocation(WeddingDateLayout, c.WeddingDate, time.UTC)
}

// Validate admin kaydından önce temel kontrolleri yapar.
func (c WeddingContent) Validate() error {
	if _, err := c.WeddingTime(); err != nil {
		return fmt.Errorf("düğün tarihi %q YYYY-MM-DD biçiminde olmalı", c.WeddingDate)
	}
	return nil
}

// contentPatch saklanan (kısmi olabilecek) kaydı çözer. nil alan = kayıtta yok.
type contentPatch struct {
	CoupleNames *CoupleNames     `json:"coupleNames"`
	WeddingDate *string          `json:"weddingDate"`
	Location    *Location        `json:"location"`
	HeroQuote   *string          `json:"heroQuote"`
	Timeline    *[]TimelineEvent `json:"timeline"`
	Gallery     *[]GalleryImage  `json:"gallery"`
	GearList    *[]string        `json:"gearList"`
	Story       *Story           `json:"story"`
	Playlist    *Playlist        `json:"playlist"`
}

// MergeOverDefaults saklanan JSON'u varsayılanların üzerine yüzeysel olarak birleştirir:
// kayıtta olan her üst seviye alan varsayılanı ezer, olmayanlar varsayılanda kalır.
func MergeOverDefaults(raw []byte) (WeddingContent, error) {
	content := DefaultContent()
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return content, nil
	}

	var patch contentPatch
	if err := json.Unmarshal(trimmed, &patch); err != nil {
		return content, err
	}
	if patch.CoupleNames != nil {
		content.CoupleNames = *patch.CoupleNames
	}
	if patch.WeddingDate != nil {
		content.WeddingDate = *patch.WeddingDate
	}
	if patch.Location != nil {
		content.Location = *patch.Location
	}
	if patch.HeroQuote != nil {
		content.HeroQuote = *patch.HeroQuote
	}
	if patch.Timeline != nil {
		content.Timeline = *patch.Timeline
	}
	if patch.Gallery != nil {
		content.Gallery = *patch.Gallery
	}
	if patch.GearList != nil {
		content.GearList = *patch.GearList
	}
	if patch.Story != nil {
		content.Story = *patch.Story
	}
	if patch.Playlist != nil {
		content.Playlist = *patch.Playlist
	}
	return content, nil
}

// WeddingContentRow wedding_content tablosundaki tekil satırdır.
type WeddingContentRow struct {
	ID        uint          `gorm:"primarykey;autoIncrement:false"`
	Content   helpers.JSONB `gorm:"not null"`
	UpdatedAt time.Time
	UpdatedBy *uint `gorm:"index"`
}

func (WeddingContentRow) TableName() string {
	return "wedding_content"
}

// BeforeSave context'te admin ID varsa UpdatedBy alanına yazar.
func (r *WeddingContentRow) BeforeSave(tx *gorm.DB) error {
	if userID, ok := UserIDFromContext(tx); ok {
		r.UpdatedBy = &userID
	}
	return nil
}

// NewContentRow içeriği JSON'a çevirip tekil satırı hazırlar.
func NewContentRow(content WeddingContent) (*WeddingContentRow, error) {
	payload, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	return &WeddingContentRow{ID: ContentRowID, Content: helpers.JSONB(payload)}, nil
}
