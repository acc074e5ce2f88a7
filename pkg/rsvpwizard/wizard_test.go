package rsvpwizard

import (
	"testing"

	"wildhearts.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizard_DetailsGating(t *testing.T) {
	w := New()
	assert.False(t, w.Next())
	assert.Equal(t, StepDetails, w.Step)

	w.Apply(Input{Name: "Jamie"})
	assert.False(t, w.Next())

	w.Apply(Input{Name: "Jamie", Email: "   "})
	assert.False(t, w.Next())

	w.Apply(Input{Name: "Jamie", Email: "jamie-at-example"})
	assert.False(t, w.CanAdvance())
	assert.False(t, w.Next())
	assert.Equal(t, StepDetails, w.Step)

	w.Apply(Input{Name: "Jamie", Email: "jamie@example.com"})
	assert.True(t, w.Next())
	assert.Equal(t, StepAttendance, w.Step)
}

func TestWizard_AttendanceGating(t *testing.T) {
	w := &Wizard{Step: StepAttendance, Form: Form{Name: "Jamie", Email: "jamie@example.com", Guests: 1}}
	assert.False(t, w.Next())

	w.Apply(Input{Attending: "maybe"})
	assert.False(t, w.Next())
	assert.Equal(t, StepAttendance, w.Step)
}

func TestWizard_AttendingVisitsDietaryStep(t *testing.T) {
	w := &Wizard{Step: StepAttendance, Form: Form{Name: "Jamie", Email: "jamie@example.com", Guests: 1}}
	w.Apply(Input{Attending: "yes", Guests: 2})
	require.True(t, w.Next())
	assert.Equal(t, StepDietary, w.Step)
	assert.Equal(t, 2, w.Form.Guests)

	require.True(t, w.Next())
	assert.Equal(t, StepMessage, w.Step)
	assert.False(t, w.Next())
	assert.True(t, w.IsLast())

	w.Back()
	assert.Equal(t, StepDietary, w.Step)
}

func TestWizard_DecliningSkipsDietaryBothWays(t *testing.T) {
	w := &Wizard{Step: StepAttendance, Form: Form{Name: "Jamie", Email: "jamie@example.com", Guests: 1}}
	w.Apply(Input{Attending: "no", Guests: 3})
	require.True(t, w.Next())
	assert.Equal(t, StepMessage, w.Step)
	assert.Equal(t, 1, w.Form.Guests)

	w.Back()
	assert.Equal(t, StepAttendance, w.Step)
}

func TestWizard_BackIsUnconditional(t *testing.T) {
	w := New()
	w.Back()
	assert.Equal(t, StepDetails, w.Step)

	w = &Wizard{Step: StepAttendance}
	w.Back()
	assert.Equal(t, StepDetails, w.Step)
}

func TestWizard_ApplyOnlyTouchesCurrentStep(t *testing.T) {
	w := New()
	w.Apply(Input{Name: "Jamie", Email: "jamie@example.com", Message: "ignored"})
	assert.Empty(t, w.Form.Message)
}

func TestWizard_TitleAndProgress(t *testing.T) {
	titles := map[Step]string{
		StepDetails:    "Your Details",
		StepAttendance: "Will You Join Us?",
		StepDietary:    "Additional Info",
		StepMessage:    "Leave a Message",
	}
	for step, title := range titles {
		w := &Wizard{Step: step}
		assert.Equal(t, title, w.Title())
		assert.Equal(t, int(step)*25, w.Progress())
	}
}

func TestWizard_Record(t *testing.T) {
	w := &Wizard{Step: StepMessage, Form: Form{
		Name:                " Jamie ",
		Email:               "jamie@example.com",
		Attending:           models.RSVPStatusAttending,
		Guests:              2,
		DietaryRestrictions: "Vegetarian",
		Message:             "Can't wait!",
	}}
	assert.Equal(t, models.RSVPResponse{
		Name:                "Jamie",
		Email:               "jamie@example.com",
		Attending:           models.RSVPStatusAttending,
		Guests:              2,
		DietaryRestrictions: "Vegetarian",
		Message:             "Can't wait!",
	}, w.Record())

	w.Form.Attending = models.RSVPStatusNotAttending
	rec := w.Record()
	assert.Equal(t, 1, rec.Guests)
	assert.Empty(t, rec.DietaryRestrictions)
}

func TestWizard_EncodeDecode(t *testing.T) {
	w := &Wizard{Step: StepDietary, Form: Form{Name: "Jamie", Attending: models.RSVPStatusAttending, Guests: 3}}
	raw, err := w.Encode()
	require.NoError(t, err)
	assert.Equal(t, w, Decode(raw))

	assert.Equal(t, New(), Decode(""))
	assert.Equal(t, New(), Decode("{broken"))
	assert.Equal(t, StepDetails, Decode(`{"step":9,"form":{"guests":0}}`).Step)
	assert.Equal(t, 1, Decode(`{"step":2,"form":{"guests":0}}`).Form.Guests)
}
