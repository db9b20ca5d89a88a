package reservation

import (
	"fmt"

	"github.com/samber/lo"

	"staybook/internal/domain/rooms"
	"staybook/internal/domain/shared/daterange"
)

// IsAccommodable reports whether a candidate stay conflicts with any
// scheduled reservation of the room. The existing slice must be materialized
// by the loader: nil means the relation was never loaded, which is a caller
// bug and not the same as a room with zero reservations.
func IsAccommodable(existing []*Reservation, stay daterange.DateRange) (bool, error) {
	if existing == nil {
		return false, fmt.Errorf("reservation: existing reservations: %w", rooms.ErrIncompleteSnapshot)
	}
	scheduled := lo.Filter(existing, func(r *Reservation, _ int) bool {
		return r.IsScheduled()
	})
	conflict := lo.SomeBy(scheduled, func(r *Reservation) bool {
		return r.Stay.Overlaps(stay)
	})
	return !conflict, nil
}
