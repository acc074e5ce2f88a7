// Package rsvpwizard LCV formunun dört adımlı durum makinesini içerir.
// Sihirbaz oturumda JSON olarak saklanır; her istek tek bir adımı işler.
package rsvpwizard

import (
	"encoding/json"
	"strings"

	"wildhearts.link/models"
)

type Step int

const (
	StepDetails Step = iota + 1
	StepAttendance
	StepDietary
	StepMessage
)

// StepCount toplam adım sayısıdır.
const StepCount = int(StepMessage)

// Form sihirbaz boyunca toplanan alanlar.
type Form struct {
	Name                string            `json:"name"`
	Email               string            `json:"email"`
	Attending           models.RSVPStatus `json:"attending"`
	Guests              int               `json:"guests"`
	DietaryRestrictions string            `json:"dietaryRestrictions"`
	Message             string            `json:"message"`
}

// Input bir adımın formundan gelen ham değerler. Sadece mevcut adımın
// alanları dikkate alınır.
type Input struct {
	Name                string `form:"name"`
	Email               string `form:"email"`
	Attending           string `form:"attending"`
	Guests              int    `form:"guests"`
	DietaryRestrictions string `form:"dietaryRestrictions"`
	Message             string `form:"message"`
}

type Wizard struct {
	Step Step `json:"step"`
	Form Form `json:"form"`
}

// New ilk adımda, tek kişilik boş bir sihirbaz döndürür.
func New() *Wizard {
	return &Wizard{Step: StepDetails, Form: Form{Guests: 1}}
}

// Apply mevcut adımın alanlarını forma yazar.
func (w *Wizard) Apply(in Input) {
	switch w.Step {
	case StepDetails:
		w.Form.Name = in.Name
		w.Form.Email = in.Email
	case StepAttendance:
		w.Form.Attending = models.RSVPStatus(strings.TrimSpace(in.Attending))
		if in.Guests > 0 {
			w.Form.Guests = in.Guests
		}
		if w.Form.Attending != models.RSVPStatusAttending {
			w.Form.Guests = 1
		}
	case StepDietary:
		w.Form.DietaryRestrictions = in.DietaryRestrictions
	case StepMessage:
		w.Form.Message = in.Message
	}
}

func (w *Wizard) attending() bool {
	return w.Form.Attending == models.RSVPStatusAttending
}

// CanAdvance mevcut adımın zorunlu alanlarının dolu olup olmadığını söyler.
func (w *Wizard) CanAdvance() bool {
	switch w.Step {
	case StepDetails:
		return strings.TrimSpace(w.Form.Name) != "" && models.ValidEmail(w.Form.Email)
	case StepAttendance:
		return w.Form.Attending.IsValid()
	case StepDietary, StepMessage:
		return true
	default:
		return false
	}
}

// Next adım geçerliyse ilerler. Katılmayanlar için diyet adımı atlanır.
// Son adımda kalır.
func (w *Wizard) Next() bool {
	if !w.CanAdvance() || w.Step >= StepMessage {
		return false
	}
	if w.Step == StepAttendance && !w.attending() {
		w.Step = StepMessage
		return true
	}
	w.Step++
	return true
}

// Back koşulsuz geri gider, 1'in altına inmez.
func (w *Wizard) Back() {
	if w.Step <= StepDetails {
		w.Step = StepDetails
		return
	}
	if w.Step == StepMessage && !w.attending() {
		w.Step = StepAttendance
		return
	}
	w.Step--
}

// IsLast gönderim adımında olup olmadığını söyler.
func (w *Wizard) IsLast() bool {
	return w.Step == StepMessage
}

// Title adım başlığını döndürür.
func (w *Wizard) Title() string {
	switch w.Step {
	case StepDetails:
		return "Your Details"
	case StepAttendance:
		return "Will You Join Us?"
	case StepDietary:
		return "Additional Info"
	case StepMessage:
		return "Leave a Message"
	default:
		return "RSVP"
	}
}

// Progress ilerleme çubuğu yüzdesi.
func (w *Wizard) Progress() int {
	return int(w.Step) * 100 / StepCount
}

// Record formu kaydedilecek LCV'ye çevirir. Diyet bilgisi sadece katılımda taşınır.
func (w *Wizard) Record() models.RSVPResponse {
	rsvp := models.RSVPResponse{
		Name:      strings.TrimSpace(w.Form.Name),
		Email:     strings.TrimSpace(w.Form.Email),
		Attending: w.Form.Attending,
		Guests:    w.Form.Guests,
		Message:   strings.TrimSpace(w.Form.Message),
	}
	if w.attending() {
		rsvp.DietaryRestrictions = strings.TrimSpace(w.Form.DietaryRestrictions)
	} else {
		rsvp.Guests = 1
	}
	return rsvp
}

// Encode oturumda saklanacak JSON metnini üretir.
func (w *Wizard) Encode() (string, error) {
	b, err := json.Marshal(w)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode oturumdaki metni çözer. Boş ya da bozuk veri yeni bir sihirbaz verir;
// geçersiz adım 1'e çekilir.
func Decode(raw string) *Wizard {
	if strings.TrimSpace(raw) == "" {
		return New()
	}
	w := New()
	if err := json.Unmarshal([]byte(raw), w); err != nil {
		return New()
	}
	if w.Step < StepDetails || w.Step > StepMessage {
		w.Step = StepDetails
	}
	if w.Form.Guests < 1 {
		w.Form.Guests = 1
	}
	return w
}
