package model

import "workbrew/shared/model"

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID          = "id"
	FieldCafeID      = "cafe_id"
	FieldBookingDate = "booking_date"
	FieldStatus      = "status"

	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

type Reservation struct {
	ID              string `db:"id"`
	CafeID          string `db:"cafe_id"`
	CafeName        string `db:"cafe_name"`
	BookingDate     string `db:"booking_date"`
	SlotTime        string `db:"slot_time"`
	TableType       string `db:"table_type"`
	Guests          int    `db:"guests"`
	Duration        int    `db:"duration"`
	TotalPrice      int    `db:"total_price"`
	ContactName     string `db:"contact_name"`
	ContactEmail    string `db:"contact_email"`
	ContactPhone    string `db:"contact_phone"`
	SpecialRequests string `db:"special_requests"`
	Status          string `db:"status"`
	model.Metadata
}
