package promo

import "time"

// FirstMatch returns the first promo in list order that covers room
// bookings and is active for the given day and start hour, or nil.
//
// There is no priority or best-discount tie-break: when several promos
// qualify, the earliest-registered one wins. Callers must pass the list
// ordered by registration time to keep the selection deterministic.
// The minimum-duration requirement is deliberately not checked here; it
// gates the discount at price-calculation time, not the match itself.
func FirstMatch(promos []*Promo, date time.Time, startHour int) *Promo {
	for _, p := range promos {
		if !p.Scope().CoversRooms() {
			continue
		}
		if p.ActiveOn(date, startHour) {
			return p
		}
	}
	return nil
}
