package dto

import (
	"workbrew/internal/domains/booking/draft"
	"workbrew/internal/domains/booking/model"
	"workbrew/shared"
	gDto "workbrew/shared/dto"
	gModel "workbrew/shared/model"
	"workbrew/shared/timezone"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	CafeID string `json:"cafe_id" validate:"required,max=100"`
}

type SelectDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type SelectSlotRequest struct {
	Time string `json:"time" validate:"required,datetime=15:04"`
}

type ContactRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=30"`
}

type DetailsRequest struct {
	DurationHours   int            `json:"duration_hours"   validate:"required,min=1,max=8"`
	GuestCount      int            `json:"guest_count"      validate:"required,min=1,max=8"`
	TableType       string         `json:"table_type"       validate:"required,max=30"`
	SpecialRequests string         `json:"special_requests" validate:"omitempty,max=500"`
	Contact         ContactRequest `json:"contact"          validate:"required"`
}

type SessionResponse struct {
	SessionID  string            `json:"session_id"`
	Draft      draft.Draft       `json:"draft"`
	TableTypes []draft.TableType `json:"table_types"`
	Durations  []int             `json:"durations"`
	TotalPrice int               `json:"total_price"`
}

func (r *SessionResponse) FromDraft(sessionID string, d draft.Draft) {
	r.SessionID = sessionID
	r.Draft = d
	r.TableTypes = draft.TableTypes
	r.Durations = draft.DurationOptions
	r.TotalPrice = d.TotalPrice()
}

type ListReservationsFilter struct {
	CafeID string `json:"cafe_id" validate:"omitempty,max=100"`
	Date   string `json:"date"    validate:"omitempty,datetime=2006-01-02"`
}

type ReservationResponse struct {
	ID              string `json:"id"`
	CafeID          string `json:"cafe_id"`
	CafeName        string `json:"cafe_name"`
	BookingDate     string `json:"booking_date"`
	SlotTime        string `json:"slot_time"`
	TableType       string `json:"table_type"`
	Guests          int    `json:"guests"`
	Duration        int    `json:"duration"`
	TotalPrice      int    `json:"total_price"`
	ContactName     string `json:"contact_name"`
	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone"`
	SpecialRequests string `json:"special_requests,omitempty"`
	Status          string `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(mod model.Reservation) {
	r.ID = mod.ID
	r.CafeID = mod.CafeID
	r.CafeName = mod.CafeName
	r.BookingDate = mod.BookingDate
	r.SlotTime = mod.SlotTime
	r.TableType = mod.TableType
	r.Guests = mod.Guests
	r.Duration = mod.Duration
	r.TotalPrice = mod.TotalPrice
	r.ContactName = mod.ContactName
	r.ContactEmail = mod.ContactEmail
	r.ContactPhone = mod.ContactPhone
	r.SpecialRequests = mod.SpecialRequests
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// ReservationFromDraft freezes a confirmed wizard draft into the row that is
// persisted and published.
func ReservationFromDraft(d draft.Draft) model.Reservation {
	now := timezone.Now()

	return model.Reservation{
		ID:              uuid.NewString(),
		CafeID:          d.CafeID,
		CafeName:        d.CafeName,
		BookingDate:     d.Date,
		SlotTime:        d.SlotTime,
		TableType:       d.TableType,
		Guests:          d.Guests,
		Duration:        d.Duration,
		TotalPrice:      d.TotalPrice(),
		ContactName:     d.Contact.Name,
		ContactEmail:    d.Contact.Email,
		ContactPhone:    d.Contact.Phone,
		SpecialRequests: d.SpecialRequests,
		Status:          model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  d.Contact.Email,
			ModifiedBy: d.Contact.Email,
		},
	}
}

// ReservationConfirmedEvent is the payload published to Kafka when a booking
// is confirmed.
type ReservationConfirmedEvent struct {
	ReservationID string `json:"reservation_id"`
	CafeID        string `json:"cafe_id"`
	BookingDate   string `json:"booking_date"`
	SlotTime      string `json:"slot_time"`
	TableType     string `json:"table_type"`
	Guests        int    `json:"guests"`
	Duration      int    `json:"duration"`
	TotalPrice    int    `json:"total_price"`
	ConfirmedAt   string `json:"confirmed_at"`
}

func (e *ReservationConfirmedEvent) FromModel(mod model.Reservation) {
	e.ReservationID = mod.ID
	e.CafeID = mod.CafeID
	e.BookingDate = mod.BookingDate
	e.SlotTime = mod.SlotTime
	e.TableType = mod.TableType
	e.Guests = mod.Guests
	e.Duration = mod.Duration
	e.TotalPrice = mod.TotalPrice
	e.ConfirmedAt = timezone.Format(mod.CreatedAt, "2006-01-02T15:04:05Z07:00")
}
