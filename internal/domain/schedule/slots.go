package schedule

import "time"

// Slot is a bookable time window on one date. Slots are generated on every
// availability query, never stored.
type Slot struct {
	Date            time.Time
	CheckinTime     TimeOfDay
	Duration        int
	SpacesTotal     int
	SpacesAvailable int
	DepositPrice    int64
	InvoicePrice    int64
	LocationID      int64
}

// GenerateSlots expands a resolved rule into the day's candidate slots,
// ordered by checkin time ascending.
//
// Candidate starts step by SlotDuration from FirstCheckin up to and including
// LastCheckin, so an open window yields
// floor((last-first)/duration) + 1 candidates. When a lunch break is
// configured, every candidate whose [start, start+duration) interval overlaps
// [lunch_from, lunch_from+lunch_duration) is dropped; overlap is interval
// intersection, not exact-start matching.
func GenerateSlots(date time.Time, r Rule) []Slot {
	if r.Closed {
		return []Slot{}
	}

	day := DateOnly(date)
	first := r.FirstCheckin.MinutesFromMidnight()
	last := r.LastCheckin.MinutesFromMidnight()

	slots := make([]Slot, 0, (last-first)/r.SlotDuration+1)
	for start := first; start <= last; start += r.SlotDuration {
		if r.LunchBreak && overlapsLunch(start, start+r.SlotDuration, r) {
			continue
		}
		slots = append(slots, Slot{
			Date:            day,
			CheckinTime:     TimeOfDayFromMinutes(start),
			Duration:        r.SlotDuration,
			SpacesTotal:     r.SlotSpaces,
			SpacesAvailable: r.SlotSpaces,
			DepositPrice:    r.SlotDepositPrice,
			InvoicePrice:    r.SlotInvoicePrice,
			LocationID:      r.LocationID,
		})
	}
	return slots
}

func overlapsLunch(start, end int, r Rule) bool {
	lunchStart := r.LunchBreakFrom.MinutesFromMidnight()
	lunchEnd := lunchStart + r.LunchBreakDuration
	return start < lunchEnd && lunchStart < end
}

// FindSlot returns the slot starting exactly at checkin, or nil. Capacity
// tracking is slot-keyed: times between slot boundaries match nothing.
func FindSlot(slots []Slot, checkin TimeOfDay) *Slot {
	for i := range slots {
		if slots[i].CheckinTime.Equal(checkin) {
			return &slots[i]
		}
	}
	return nil
}
