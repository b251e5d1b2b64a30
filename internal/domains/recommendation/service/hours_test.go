package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"workbrew/internal/domains/catalog/model"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in       string
		wantHour int
		wantOK   bool
	}{
		{in: "6:00 AM", wantHour: 6, wantOK: true},
		{in: "9 AM", wantHour: 9, wantOK: true},
		{in: "12:00 AM", wantHour: 0, wantOK: true},
		{in: "12:00 PM", wantHour: 12, wantOK: true},
		{in: "11:30 PM", wantHour: 23, wantOK: true},
		{in: " 8:00 pm ", wantHour: 20, wantOK: true},
		{in: "13:00 PM", wantOK: false},
		{in: "0:00 AM", wantOK: false},
		{in: "7:00", wantOK: false},
		{in: "7:00 XM", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			hour, ok := parseClock(tt.in)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantHour, hour)
			}
		})
	}
}

func TestIsOpenAt(t *testing.T) {
	// 2025-03-10 is a Monday
	monday := func(hour int) time.Time {
		return time.Date(2025, 3, 10, hour, 0, 0, 0, time.UTC)
	}

	cafe := func(entry string) model.Cafe {
		return model.Cafe{Hours: map[string]string{"monday": entry}}
	}

	tests := []struct {
		name string
		cafe model.Cafe
		at   time.Time
		want bool
	}{
		{name: "inside opening hours", cafe: cafe("6:00 AM - 10:00 PM"), at: monday(9), want: true},
		{name: "opening hour itself", cafe: cafe("6:00 AM - 10:00 PM"), at: monday(6), want: true},
		{name: "closing hour itself", cafe: cafe("6:00 AM - 10:00 PM"), at: monday(22), want: true},
		{name: "before opening", cafe: cafe("6:00 AM - 10:00 PM"), at: monday(5), want: false},
		{name: "after closing", cafe: cafe("6:00 AM - 10:00 PM"), at: monday(23), want: false},
		{name: "closed entry", cafe: cafe("Closed"), at: monday(9), want: false},
		{name: "closed entry is case-insensitive", cafe: cafe("closed"), at: monday(9), want: false},
		{name: "day missing from the table", cafe: model.Cafe{Hours: map[string]string{"tuesday": "6:00 AM - 10:00 PM"}}, at: monday(9), want: false},
		{name: "unparseable entry fails open", cafe: cafe("all day"), at: monday(9), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isOpenAt(tt.cafe, tt.at))
		})
	}
}
