package validator_test

import (
	"strings"
	"testing"
	"workbrew/shared/validator"
)

// Test structs for validation
type ValidTestStruct struct {
	Name      string  `validate:"required"                json:"name"`
	Email     string  `validate:"required,email"          json:"email"`
	Guests    int     `validate:"gte=1,lte=8"             json:"guests"`
	TableType string  `validate:"oneof=individual shared private meeting event" json:"table_type"`
	Latitude  float64 `validate:"omitempty,latitude"      json:"latitude"`
	Date      string  `validate:"omitempty,datetime=2006-01-02" json:"date"`
}

func validStruct() ValidTestStruct {
	return ValidTestStruct{
		Name:      "Ada Obi",
		Email:     "ada@example.com",
		Guests:    2,
		TableType: "shared",
		Latitude:  6.5,
		Date:      "2025-03-15",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ValidTestStruct)
		expectError bool
	}{
		{
			name:        "valid struct",
			mutate:      func(*ValidTestStruct) {},
			expectError: false,
		},
		{
			name:        "missing required field",
			mutate:      func(s *ValidTestStruct) { s.Name = "" },
			expectError: true,
		},
		{
			name:        "invalid email",
			mutate:      func(s *ValidTestStruct) { s.Email = "invalid-email" },
			expectError: true,
		},
		{
			name:        "guests out of range",
			mutate:      func(s *ValidTestStruct) { s.Guests = 9 },
			expectError: true,
		},
		{
			name:        "invalid table type",
			mutate:      func(s *ValidTestStruct) { s.TableType = "rooftop" },
			expectError: true,
		},
		{
			name:        "latitude out of range",
			mutate:      func(s *ValidTestStruct) { s.Latitude = 120 },
			expectError: true,
		},
		{
			name:        "malformed date",
			mutate:      func(s *ValidTestStruct) { s.Date = "15-03-2025" },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validStruct()
			tt.mutate(&data)

			err := validator.ValidateStruct(&data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid body",
			body:        `{"name":"Ada Obi","email":"ada@example.com","guests":2,"table_type":"shared"}`,
			expectError: false,
		},
		{
			name:        "malformed json",
			body:        `{"name":`,
			expectError: true,
		},
		{
			name:        "valid json failing validation",
			body:        `{"name":"Ada Obi","email":"not-an-email","guests":2,"table_type":"shared"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data ValidTestStruct
			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("10:30", "datetime=15:04"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := validator.ValidateVar("25:99", "datetime=15:04"); err == nil {
		t.Error("expected error for invalid time, got nil")
	}
}
