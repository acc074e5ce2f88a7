package models

import "strings"

// ContentEdit içerik üzerinde alan bazlı, tip güvenli düzenleme yapar.
// Orijinal içerik değişmez; Build yeni bir kopya döndürür.
type ContentEdit struct {
	content WeddingContent
}

// NewContentEdit mevcut içerikten bir düzenleme başlatır.
func NewContentEdit(base WeddingContent) *ContentEdit {
	return &ContentEdit{content: base.Clone()}
}

func (e *ContentEdit) Partner1(v string) *ContentEdit {
	e.content.CoupleNames.Partner1 = v
	return e
}

func (e *ContentEdit) Partner2(v string) *ContentEdit {
	e.content.CoupleNames.Partner2 = v
	return e
}

func (e *ContentEdit) WeddingDate(v string) *ContentEdit {
	e.content.WeddingDate = strings.TrimSpace(v)
	return e
}

func (e *ContentEdit) HeroQuote(v string) *ContentEdit {
	e.content.HeroQuote = v
	return e
}

func (e *ContentEdit) LocationName(v string) *ContentEdit {
	e.content.Location.Name = v
	return e
}

func (e *ContentEdit) LocationAddress(v string) *ContentEdit {
	e.content.Location.Address = v
	return e
}

func (e *ContentEdit) Elevation(v string) *ContentEdit {
	e.content.Location.Elevation = v
	return e
}

func (e *ContentEdit) Coordinates(lat, lng float64) *ContentEdit {
	e.content.Location.Coordinates = Coordinates{Lat: lat, Lng: lng}
	return e
}

func (e *ContentEdit) StoryTitle(v string) *ContentEdit {
	e.content.Story.Title = v
	return e
}

func (e *ContentEdit) StoryContent(v string) *ContentEdit {
	e.content.Story.Content = v
	return e
}

func (e *ContentEdit) PlaylistTitle(v string) *ContentEdit {
	e.content.Playlist.Title = v
	return e
}

func (e *ContentEdit) PlaylistURL(v string) *ContentEdit {
	e.content.Playlist.SpotifyURL = strings.TrimSpace(v)
	return e
}

// GearList satır satır girilmiş listeyi ayıklar; boş satırlar atlanır.
func (e *ContentEdit) GearList(lines string) *ContentEdit {
	var items []string
	for _, line := range strings.Split(lines, "\n") {
		if item := strings.TrimSpace(line); item != "" {
			items = append(items, item)
		}
	}
	if items == nil {
		items = []string{}
	}
	e.content.GearList = items
	return e
}

func (e *ContentEdit) Timeline(events []TimelineEvent) *ContentEdit {
	e.content.Timeline = append([]TimelineEvent{}, events...)
	return e
}

func (e *ContentEdit) Gallery(images []GalleryImage) *ContentEdit {
	e.content.Gallery = append([]GalleryImage{}, images...)
	return e
}

// Build düzenlenmiş içeriğin kopyasını döndürür.
func (e *ContentEdit) Build() WeddingContent {
	return e.content.Clone()
}
