package service

import (
	"strconv"
	"strings"
	"time"

	"workbrew/internal/domains/catalog/model"
	"workbrew/shared/timezone"
)

const closedMarker = "closed"

// parseClock reads a single "H[:MM] AM|PM" fragment and returns the hour in
// 24h form. 12 AM maps to 0 and 12 PM stays 12.
func parseClock(s string) (int, bool) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return 0, false
	}

	hourPart := fields[0]
	if idx := strings.Index(hourPart, ":"); idx >= 0 {
		hourPart = hourPart[:idx]
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 1 || hour > 12 {
		return 0, false
	}

	switch strings.ToUpper(fields[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, false
	}

	return hour, true
}

func parseHoursRange(s string) (open, closeHour int, ok bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0, 0, false
	}

	open, ok = parseClock(parts[0])
	if !ok {
		return 0, 0, false
	}

	closeHour, ok = parseClock(parts[1])
	if !ok {
		return 0, 0, false
	}

	return open, closeHour, true
}

// isOpenAt resolves opening hours at hour granularity. A missing day or a
// "Closed" entry means closed; an unparseable entry is treated as open so a
// malformed catalog row never hides a cafe from the ranking.
func isOpenAt(cafe model.Cafe, t time.Time) bool {
	entry, ok := cafe.Hours[timezone.Weekday(t)]
	if !ok || strings.EqualFold(strings.TrimSpace(entry), closedMarker) {
		return false
	}

	open, closeHour, ok := parseHoursRange(entry)
	if !ok {
		return true
	}

	hour := t.Hour()

	return hour >= open && hour <= closeHour
}
