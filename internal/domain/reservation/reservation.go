package reservation

import (
	"context"
	"errors"
	"time"

	"staybook/internal/domain/rooms"
	"staybook/internal/domain/shared/daterange"
	"staybook/internal/domain/shared/events"
	"staybook/internal/domain/shared/money"
)

var (
	ErrInvalidGuests = errors.New("reservation: guest count must be positive")
	ErrGuestLimit    = errors.New("reservation: guest count exceeds the room limit")
	ErrInvalidState  = errors.New("reservation: invalid status transition")
	ErrNotFound      = errors.New("reservation: not found")

	// ErrDateConflict and ErrPriceMismatch are business rejections the guest
	// can recover from: pick other dates, or re-quote and retry.
	ErrDateConflict  = errors.New("reservation: stay overlaps an existing scheduled reservation")
	ErrPriceMismatch = errors.New("reservation: quoted price no longer matches the computed total")

	// ErrOverbooked is returned by a repository whose commit-time overlap
	// check lost an admission race to a concurrent request.
	ErrOverbooked = errors.New("reservation: overlapping reservation committed concurrently")
)

type ReservationID string

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Reservation is an admitted stay. Only scheduled reservations block the
// room's dates; cancelled ones free them and completed ones are history.
type Reservation struct {
	ID        ReservationID
	RoomID    rooms.RoomID
	GuestID   string
	Stay      daterange.DateRange
	GuestCnt  int
	Price     money.Money
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
	events.EventRecorder
}

// Repository loads hydrated snapshots and commits admitted reservations. The
// implementation owns the per-room serialization the engine cannot provide:
// commit must re-check overlap so that of two concurrently admitted
// overlapping stays at most one is ever committed.
type Repository interface {
	Snapshot(ctx context.Context, roomID rooms.RoomID) (Snapshot, error)
	Commit(ctx context.Context, r *Reservation) error
}

func (r *Reservation) IsScheduled() bool {
	return r.Status == StatusScheduled
}

func (r *Reservation) Complete(now time.Time) error {
	if r.Status != StatusScheduled {
		return ErrInvalidState
	}
	r.Status = StatusCompleted
	r.UpdatedAt = now.UTC()
	r.Record(ReservationCompleted{ReservationID: r.ID, At: r.UpdatedAt})
	return nil
}

func (r *Reservation) Cancel(now time.Time) error {
	if r.Status != StatusScheduled {
		return ErrInvalidState
	}
	r.Status = StatusCancelled
	r.UpdatedAt = now.UTC()
	r.Record(ReservationCancelled{ReservationID: r.ID, RoomID: r.RoomID, Stay: r.Stay, At: r.UpdatedAt})
	return nil
}
