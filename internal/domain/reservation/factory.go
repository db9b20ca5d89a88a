package reservation

import (
	"time"

	"github.com/google/uuid"

	"staybook/internal/domain/discounts"
	"staybook/internal/domain/pricing"
	"staybook/internal/domain/rooms"
	"staybook/internal/domain/shared/daterange"
	"staybook/internal/domain/shared/money"
	"staybook/internal/domain/taxes"
)

// Snapshot is a fully hydrated, read-only view of a room and its relations
// as loaded at a point in time. The engine only reads it; committing the
// resulting reservation and serializing concurrent admissions per room stays
// with the caller.
type Snapshot struct {
	Room      rooms.Room
	Discounts []discounts.Discount
	Existing  []*Reservation
	Taxes     taxes.Resolver
}

// Request is a guest's attempt to reserve a stay. ExpectedPrice carries the
// total quoted to the client earlier; any drift against the authoritative
// total rejects the request.
type Request struct {
	GuestID       string
	Stay          daterange.DateRange
	GuestCnt      int
	ExpectedPrice money.Money
}

// Reserve either admits the requested stay and returns a scheduled
// reservation carrying the authoritative total, or rejects it with a typed
// error. It is a pure decision function: no storage, no logging, nothing
// swallowed.
func Reserve(snap Snapshot, req Request, now time.Time) (*Reservation, error) {
	if req.GuestCnt <= 0 {
		return nil, ErrInvalidGuests
	}
	if req.GuestCnt > snap.Room.MaxGuestCnt && snap.Room.MaxGuestCnt > 0 {
		return nil, ErrGuestLimit
	}
	if err := req.Stay.Validate(); err != nil {
		return nil, err
	}

	ok, err := IsAccommodable(snap.Existing, req.Stay)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDateConflict
	}

	breakdown, err := pricing.NewCalculator(snap.Taxes).Quote(snap.Room, snap.Discounts, req.Stay.Nights(), req.GuestCnt)
	if err != nil {
		return nil, err
	}
	// Exact comparison: both sides run the same deterministic pipeline, so
	// any difference means the room's pricing changed since the quote.
	if !breakdown.Total.Equal(req.ExpectedPrice) {
		return nil, ErrPriceMismatch
	}

	created := now.UTC()
	r := &Reservation{
		ID:        ReservationID(uuid.NewString()),
		RoomID:    snap.Room.ID,
		GuestID:   req.GuestID,
		Stay:      req.Stay,
		GuestCnt:  req.GuestCnt,
		Price:     breakdown.Total,
		Status:    StatusScheduled,
		CreatedAt: created,
		UpdatedAt: created,
	}
	r.Record(ReservationScheduled{
		ReservationID: r.ID,
		RoomID:        r.RoomID,
		GuestID:       r.GuestID,
		Stay:          r.Stay,
		GuestCnt:      r.GuestCnt,
		Total:         r.Price,
		At:            created,
	})
	return r, nil
}
