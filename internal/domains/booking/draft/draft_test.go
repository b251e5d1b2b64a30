package draft_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"workbrew/internal/domains/booking/draft"
	"workbrew/shared/failure"
)

var testToday = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func testSlots() []draft.Slot {
	return []draft.Slot{
		{Time: "08:00", Available: true, Type: "regular", Price: 5},
		{Time: "10:00", Available: true, Type: "meeting", Price: 10},
		{Time: "12:30", Available: true, Type: "premium", Price: 15},
		{Time: "13:00", Available: false, Type: "premium", Price: 15},
	}
}

func TestNewDraft_Defaults(t *testing.T) {
	d := draft.New("brew-and-code-lekki", "Brew & Code")

	assert.Equal(t, draft.StepDateTime, d.Step)
	assert.Equal(t, "individual", d.TableType)
	assert.Equal(t, draft.DefaultGuests, d.Guests)
	assert.Equal(t, draft.DefaultDuration, d.Duration)
	assert.Empty(t, d.Date)
	assert.Empty(t, d.SlotTime)
}

func TestTableTypeByID(t *testing.T) {
	table, ok := draft.TableTypeByID("individual")
	assert.True(t, ok)
	assert.Equal(t, "Individual Workspace", table.Name)
	assert.Equal(t, 1, table.Capacity)
	assert.Zero(t, table.Surcharge)

	_, ok = draft.TableTypeByID("rooftop")
	assert.False(t, ok)
}

func TestDraft_FullWizardWalk(t *testing.T) {
	d := draft.New("brew-and-code-lekki", "Brew & Code")

	d, err := draft.Apply(d, draft.SelectDate{Date: "2025-03-15", Today: testToday, Generate: testSlots})
	assert.NoError(t, err)
	assert.Equal(t, "2025-03-15", d.Date)
	assert.Len(t, d.Slots, 4)

	d, err = draft.Apply(d, draft.SelectSlot{Time: "12:30"})
	assert.NoError(t, err)
	assert.Equal(t, "12:30", d.SlotTime)
	assert.Equal(t, 15, d.SlotPrice)

	d, err = draft.Apply(d, draft.Next{})
	assert.NoError(t, err)
	assert.Equal(t, draft.StepDetails, d.Step)

	d, err = draft.Apply(d, draft.SetDetails{
		Duration:  3,
		Guests:    4,
		TableType: "meeting",
		Contact:   draft.Contact{Name: "Ada Obi", Email: "ada@example.com"},
	})
	assert.NoError(t, err)

	d, err = draft.Apply(d, draft.Next{})
	assert.NoError(t, err)
	assert.Equal(t, draft.StepPayment, d.Step)

	// premium slot 15 + meeting surcharge 25, for 3 hours
	assert.Equal(t, (15+25)*3, d.TotalPrice())

	d, err = draft.Apply(d, draft.Confirm{})
	assert.NoError(t, err)
	assert.Equal(t, draft.StepConfirmation, d.Step)
}

func TestDraft_SelectDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "today is allowed", date: "2025-03-10", wantErr: false},
		{name: "last day of the window", date: "2025-04-09", wantErr: false},
		{name: "past date rejected", date: "2025-03-09", wantErr: true},
		{name: "beyond thirty days rejected", date: "2025-04-10", wantErr: true},
		{name: "garbage date rejected", date: "not-a-date", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := draft.New("brew-and-code-lekki", "Brew & Code")

			generated := false
			next, err := draft.Apply(d, draft.SelectDate{
				Date:  tt.date,
				Today: testToday,
				Generate: func() []draft.Slot {
					generated = true

					return testSlots()
				},
			})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, d, next)
				// rejected dates must not burn the seeded slot randomness
				assert.False(t, generated)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.date, next.Date)
				assert.True(t, generated)
			}
		})
	}
}

func TestDraft_SelectDate_ResetsChosenSlot(t *testing.T) {
	d := draft.New("brew-and-code-lekki", "Brew & Code")

	d, err := draft.Apply(d, draft.SelectDate{Date: "2025-03-15", Today: testToday, Generate: testSlots})
	assert.NoError(t, err)

	d, err = draft.Apply(d, draft.SelectSlot{Time: "08:00"})
	assert.NoError(t, err)
	assert.Equal(t, "08:00", d.SlotTime)

	d, err = draft.Apply(d, draft.SelectDate{Date: "2025-03-16", Today: testToday, Generate: testSlots})
	assert.NoError(t, err)
	assert.Empty(t, d.SlotTime)
	assert.Zero(t, d.SlotPrice)
}

func TestDraft_SelectSlot(t *testing.T) {
	base := draft.New("brew-and-code-lekki", "Brew & Code")
	withDate, err := draft.Apply(base, draft.SelectDate{Date: "2025-03-15", Today: testToday, Generate: testSlots})
	assert.NoError(t, err)

	tests := []struct {
		name    string
		start   draft.Draft
		slot    string
		wantErr bool
	}{
		{name: "available slot", start: withDate, slot: "10:00", wantErr: false},
		{name: "unavailable slot rejected", start: withDate, slot: "13:00", wantErr: true},
		{name: "unknown slot rejected", start: withDate, slot: "21:00", wantErr: true},
		{name: "no date selected yet", start: base, slot: "10:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := draft.Apply(tt.start, draft.SelectSlot{Time: tt.slot})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.start, next)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.slot, next.SlotTime)
			}
		})
	}
}

func TestDraft_SetDetails(t *testing.T) {
	contact := draft.Contact{Name: "Ada Obi", Email: "ada@example.com"}

	onDetails := detailsStepDraft(t)

	tests := []struct {
		name    string
		ev      draft.SetDetails
		wantErr bool
	}{
		{
			name:    "valid details",
			ev:      draft.SetDetails{Duration: 2, Guests: 2, TableType: "shared", Contact: contact},
			wantErr: false,
		},
		{
			name:    "duration not offered",
			ev:      draft.SetDetails{Duration: 7, Guests: 2, TableType: "shared", Contact: contact},
			wantErr: true,
		},
		{
			name:    "zero guests",
			ev:      draft.SetDetails{Duration: 2, Guests: 0, TableType: "shared", Contact: contact},
			wantErr: true,
		},
		{
			name:    "too many guests",
			ev:      draft.SetDetails{Duration: 2, Guests: 9, TableType: "event", Contact: contact},
			wantErr: true,
		},
		{
			name:    "guests exceed table capacity",
			ev:      draft.SetDetails{Duration: 2, Guests: 3, TableType: "private", Contact: contact},
			wantErr: true,
		},
		{
			name:    "unknown table type",
			ev:      draft.SetDetails{Duration: 2, Guests: 2, TableType: "rooftop", Contact: contact},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := draft.Apply(onDetails, tt.ev)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, onDetails, next)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.ev.TableType, next.TableType)
				assert.Equal(t, tt.ev.Guests, next.Guests)
			}
		})
	}
}

func TestDraft_SetDetails_WrongStep(t *testing.T) {
	d := draft.New("brew-and-code-lekki", "Brew & Code")

	_, err := draft.Apply(d, draft.SetDetails{
		Duration:  2,
		Guests:    1,
		TableType: "individual",
		Contact:   draft.Contact{Name: "Ada Obi", Email: "ada@example.com"},
	})
	assert.Error(t, err)
}

func TestDraft_Next_Guards(t *testing.T) {
	d := draft.New("brew-and-code-lekki", "Brew & Code")

	// no slot chosen
	_, err := draft.Apply(d, draft.Next{})
	assert.Error(t, err)

	onDetails := detailsStepDraft(t)

	// contact still empty
	_, err = draft.Apply(onDetails, draft.Next{})
	assert.Error(t, err)

	onPayment := paymentStepDraft(t)

	// payment requires an explicit submit
	_, err = draft.Apply(onPayment, draft.Next{})
	assert.Error(t, err)
}

func TestDraft_Back(t *testing.T) {
	d := draft.New("brew-and-code-lekki", "Brew & Code")

	_, err := draft.Apply(d, draft.Back{})
	assert.Error(t, err)

	onPayment := paymentStepDraft(t)

	back, err := draft.Apply(onPayment, draft.Back{})
	assert.NoError(t, err)
	assert.Equal(t, draft.StepDetails, back.Step)

	back, err = draft.Apply(back, draft.Back{})
	assert.NoError(t, err)
	assert.Equal(t, draft.StepDateTime, back.Step)
}

func TestDraft_ConfirmationIsTerminal(t *testing.T) {
	onPayment := paymentStepDraft(t)

	confirmed, err := draft.Apply(onPayment, draft.Confirm{})
	assert.NoError(t, err)
	assert.Equal(t, draft.StepConfirmation, confirmed.Step)

	for _, ev := range []draft.Event{draft.Next{}, draft.Back{}, draft.Confirm{}, draft.SelectSlot{Time: "08:00"}} {
		_, err = draft.Apply(confirmed, ev)
		assert.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
	}
}

func TestDraft_Confirm_OnlyFromPayment(t *testing.T) {
	d := draft.New("brew-and-code-lekki", "Brew & Code")

	_, err := draft.Apply(d, draft.Confirm{})
	assert.Error(t, err)

	onDetails := detailsStepDraft(t)

	_, err = draft.Apply(onDetails, draft.Confirm{})
	assert.Error(t, err)
}

func TestDraft_TotalPrice(t *testing.T) {
	tests := []struct {
		name      string
		slotPrice int
		tableType string
		duration  int
		want      int
	}{
		{name: "regular slot individual workspace", slotPrice: 5, tableType: "individual", duration: 2, want: 10},
		{name: "premium slot event space", slotPrice: 15, tableType: "event", duration: 4, want: 260},
		{name: "meeting slot private booth", slotPrice: 10, tableType: "private", duration: 1, want: 20},
		{name: "unknown table type", slotPrice: 10, tableType: "rooftop", duration: 2, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := draft.Draft{SlotPrice: tt.slotPrice, TableType: tt.tableType, Duration: tt.duration}

			assert.Equal(t, tt.want, d.TotalPrice())
		})
	}
}

// detailsStepDraft walks a fresh draft up to the details step.
func detailsStepDraft(t *testing.T) draft.Draft {
	t.Helper()

	d := draft.New("brew-and-code-lekki", "Brew & Code")

	d, err := draft.Apply(d, draft.SelectDate{Date: "2025-03-15", Today: testToday, Generate: testSlots})
	assert.NoError(t, err)

	d, err = draft.Apply(d, draft.SelectSlot{Time: "08:00"})
	assert.NoError(t, err)

	d, err = draft.Apply(d, draft.Next{})
	assert.NoError(t, err)

	return d
}

// paymentStepDraft walks a fresh draft up to the payment step.
func paymentStepDraft(t *testing.T) draft.Draft {
	t.Helper()

	d, err := draft.Apply(detailsStepDraft(t), draft.SetDetails{
		Duration:  2,
		Guests:    1,
		TableType: "individual",
		Contact:   draft.Contact{Name: "Ada Obi", Email: "ada@example.com"},
	})
	assert.NoError(t, err)

	d, err = draft.Apply(d, draft.Next{})
	assert.NoError(t, err)

	return d
}
