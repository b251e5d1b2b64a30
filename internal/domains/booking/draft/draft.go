package draft

import (
	"time"

	"workbrew/shared/constant"
	"workbrew/shared/failure"
)

// Step is a wizard stage. Steps only move one at a time and confirmation is
// terminal.
type Step string

const (
	StepDateTime     Step = "datetime"
	StepDetails      Step = "details"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

const (
	// MaxAdvanceDays bounds how far ahead a booking date may be.
	MaxAdvanceDays = 30

	DefaultDuration = 2
	DefaultGuests   = 1

	MinGuests = 1
	MaxGuests = 8
)

// TableType describes a bookable table category and its hourly surcharge.
type TableType struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	Surcharge int    `json:"surcharge"`
}

var TableTypes = []TableType{
	{ID: "individual", Name: "Individual Workspace", Capacity: 1, Surcharge: 0},
	{ID: "shared", Name: "Shared Table", Capacity: 4, Surcharge: 5},
	{ID: "private", Name: "Private Booth", Capacity: 2, Surcharge: 10},
	{ID: "meeting", Name: "Meeting Room", Capacity: 8, Surcharge: 25},
	{ID: "event", Name: "Event Space", Capacity: 20, Surcharge: 50},
}

func TableTypeByID(id string) (TableType, bool) {
	for _, t := range TableTypes {
		if t.ID == id {
			return t, true
		}
	}

	return TableType{}, false
}

// DurationOptions are the bookable lengths in hours.
var DurationOptions = []int{1, 2, 3, 4, 5, 6, 8}

func validDuration(hours int) bool {
	for _, d := range DurationOptions {
		if d == hours {
			return true
		}
	}

	return false
}

// Slot is one half-hour start time on the chosen date.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Type      string `json:"type"`
	Price     int    `json:"price"`
}

type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Draft is the full wizard state. It is a value; Apply returns the changed
// copy and never mutates its input.
type Draft struct {
	CafeID          string  `json:"cafe_id"`
	CafeName        string  `json:"cafe_name"`
	Step            Step    `json:"step"`
	Date            string  `json:"date"`
	Slots           []Slot  `json:"slots"`
	SlotTime        string  `json:"slot_time"`
	SlotPrice       int     `json:"slot_price"`
	TableType       string  `json:"table_type"`
	Guests          int     `json:"guests"`
	Duration        int     `json:"duration"`
	SpecialRequests string  `json:"special_requests"`
	Contact         Contact `json:"contact"`
}

// New starts a wizard at the datetime step with the defaults applied.
func New(cafeID, cafeName string) Draft {
	return Draft{
		CafeID:    cafeID,
		CafeName:  cafeName,
		Step:      StepDateTime,
		TableType: "individual",
		Guests:    DefaultGuests,
		Duration:  DefaultDuration,
	}
}

// TotalPrice is (slot price + table surcharge) per hour times the duration.
func (d Draft) TotalPrice() int {
	table, ok := TableTypeByID(d.TableType)
	if !ok {
		return 0
	}

	return (d.SlotPrice + table.Surcharge) * d.Duration
}

// Event mutates a draft through Apply.
type Event interface {
	isEvent()
}

// SelectDate picks the booking date and installs the slot grid generated for
// it. Today anchors the date window check. Generate runs only once the date
// passes the window check, so rejected dates never consume the seeded
// randomness behind slot availability.
type SelectDate struct {
	Date     string
	Today    time.Time
	Generate func() []Slot
}

type SelectSlot struct {
	Time string
}

type SetDetails struct {
	Duration        int
	Guests          int
	TableType       string
	SpecialRequests string
	Contact         Contact
}

type Next struct{}

type Back struct{}

// Confirm moves payment to confirmation. The service fires it only after the
// reservation is persisted.
type Confirm struct{}

func (SelectDate) isEvent() {}
func (SelectSlot) isEvent() {}
func (SetDetails) isEvent() {}
func (Next) isEvent()       {}
func (Back) isEvent()       {}
func (Confirm) isEvent()    {}

// Apply runs one event against the draft. Guard violations return the input
// draft unchanged alongside an unprocessable-entity failure.
func Apply(d Draft, ev Event) (Draft, error) {
	if d.Step == StepConfirmation {
		return d, failure.UnprocessableEntity("booking is already confirmed") //nolint:wrapcheck
	}

	switch event := ev.(type) {
	case SelectDate:
		return applySelectDate(d, event)
	case SelectSlot:
		return applySelectSlot(d, event)
	case SetDetails:
		return applySetDetails(d, event)
	case Next:
		return applyNext(d)
	case Back:
		return applyBack(d)
	case Confirm:
		return applyConfirm(d)
	default:
		return d, failure.UnprocessableEntity("unknown booking event") //nolint:wrapcheck
	}
}

func applySelectDate(d Draft, ev SelectDate) (Draft, error) {
	if d.Step != StepDateTime {
		return d, failure.UnprocessableEntity("date can only change on the datetime step") //nolint:wrapcheck
	}

	date, err := time.Parse(constant.CalendarDayFormat, ev.Date)
	if err != nil {
		return d, failure.UnprocessableEntity("invalid booking date") //nolint:wrapcheck
	}

	today := time.Date(ev.Today.Year(), ev.Today.Month(), ev.Today.Day(), 0, 0, 0, 0, ev.Today.Location())
	last := today.AddDate(0, 0, MaxAdvanceDays)
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, ev.Today.Location())

	if date.Before(today) || date.After(last) {
		return d, failure.UnprocessableEntity("booking date must be within the next 30 days") //nolint:wrapcheck
	}

	d.Date = ev.Date
	d.SlotTime = constant.Empty
	d.SlotPrice = 0

	d.Slots = nil
	if ev.Generate != nil {
		d.Slots = ev.Generate()
	}

	return d, nil
}

func applySelectSlot(d Draft, ev SelectSlot) (Draft, error) {
	if d.Step != StepDateTime {
		return d, failure.UnprocessableEntity("slot can only change on the datetime step") //nolint:wrapcheck
	}

	if d.Date == constant.Empty {
		return d, failure.UnprocessableEntity("select a date first") //nolint:wrapcheck
	}

	for _, slot := range d.Slots {
		if slot.Time != ev.Time {
			continue
		}

		if !slot.Available {
			return d, failure.UnprocessableEntity("slot is not available") //nolint:wrapcheck
		}

		d.SlotTime = slot.Time
		d.SlotPrice = slot.Price

		return d, nil
	}

	return d, failure.UnprocessableEntity("slot does not exist for the chosen date") //nolint:wrapcheck
}

func applySetDetails(d Draft, ev SetDetails) (Draft, error) {
	if d.Step != StepDetails {
		return d, failure.UnprocessableEntity("details can only change on the details step") //nolint:wrapcheck
	}

	if !validDuration(ev.Duration) {
		return d, failure.UnprocessableEntity("invalid booking duration") //nolint:wrapcheck
	}

	if ev.Guests < MinGuests || ev.Guests > MaxGuests {
		return d, failure.UnprocessableEntity("guest count must be between 1 and 8") //nolint:wrapcheck
	}

	table, ok := TableTypeByID(ev.TableType)
	if !ok {
		return d, failure.UnprocessableEntity("unknown table type") //nolint:wrapcheck
	}

	if ev.Guests > table.Capacity {
		return d, failure.UnprocessableEntity("guest count exceeds table capacity") //nolint:wrapcheck
	}

	d.Duration = ev.Duration
	d.Guests = ev.Guests
	d.TableType = ev.TableType
	d.SpecialRequests = ev.SpecialRequests
	d.Contact = ev.Contact

	return d, nil
}

func applyNext(d Draft) (Draft, error) {
	switch d.Step {
	case StepDateTime:
		if d.SlotTime == constant.Empty {
			return d, failure.UnprocessableEntity("select a time slot before continuing") //nolint:wrapcheck
		}

		d.Step = StepDetails
	case StepDetails:
		if d.Contact.Name == constant.Empty || d.Contact.Email == constant.Empty {
			return d, failure.UnprocessableEntity("contact name and email are required") //nolint:wrapcheck
		}

		d.Step = StepPayment
	case StepPayment:
		return d, failure.UnprocessableEntity("submit the booking to confirm") //nolint:wrapcheck
	case StepConfirmation:
	}

	return d, nil
}

func applyBack(d Draft) (Draft, error) {
	switch d.Step {
	case StepDateTime:
		return d, failure.UnprocessableEntity("already at the first step") //nolint:wrapcheck
	case StepDetails:
		d.Step = StepDateTime
	case StepPayment:
		d.Step = StepDetails
	case StepConfirmation:
	}

	return d, nil
}

func applyConfirm(d Draft) (Draft, error) {
	if d.Step != StepPayment {
		return d, failure.UnprocessableEntity("booking can only be confirmed from the payment step") //nolint:wrapcheck
	}

	d.Step = StepConfirmation

	return d, nil
}
