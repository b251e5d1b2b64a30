package service

import (
	"fmt"
	"math/rand"

	"workbrew/internal/domains/booking/draft"
)

const (
	slotFirstHour = 8
	slotLastHour  = 19

	slotTypeRegular = "regular"
	slotTypeMeeting = "meeting"
	slotTypePremium = "premium"

	slotPriceRegular = 5
	slotPriceMeeting = 10
	slotPricePremium = 15
)

// generateSlots builds the half-hour grid for one booking day. Availability
// is drawn once per slot; the grid is frozen into the session afterwards.
func generateSlots(rnd *rand.Rand, availabilityRate float64) []draft.Slot {
	slots := make([]draft.Slot, 0, (slotLastHour-slotFirstHour+1)*2)

	for hour := slotFirstHour; hour <= slotLastHour; hour++ {
		for _, minute := range []int{0, 30} {
			slotType, price := classifySlot(hour)

			slots = append(slots, draft.Slot{
				Time:      fmt.Sprintf("%02d:%02d", hour, minute),
				Available: rnd.Float64() < availabilityRate,
				Type:      slotType,
				Price:     price,
			})
		}
	}

	return slots
}

func classifySlot(hour int) (string, int) {
	switch {
	case hour >= 12 && hour <= 14:
		return slotTypePremium, slotPricePremium
	case hour >= 9 && hour <= 17:
		return slotTypeMeeting, slotPriceMeeting
	default:
		return slotTypeRegular, slotPriceRegular
	}
}
