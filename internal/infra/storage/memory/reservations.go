package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"staybook/internal/domain/discounts"
	"staybook/internal/domain/reservation"
	"staybook/internal/domain/rooms"
	"staybook/internal/domain/shared/events"
	"staybook/internal/domain/taxes"
)

var (
	// ErrRoomNotFound is returned when a room cannot be located in memory.
	ErrRoomNotFound = errors.New("memory: room not found")
	// ErrReservationNotFound is returned when a reservation does not exist.
	ErrReservationNotFound = errors.New("memory: reservation not found")
)

type roomState struct {
	mu           sync.Mutex
	room         rooms.Room
	discounts    []discounts.Discount
	reservations []*reservation.Reservation
}

// Store is an in-memory reservation.Repository. Each room carries its own
// lock, so snapshots and commits for one room are serialized while distinct
// rooms proceed independently. Commit re-checks overlap under that lock,
// which is what keeps two concurrently admitted overlapping stays from both
// landing.
type Store struct {
	mu    sync.RWMutex
	rooms map[rooms.RoomID]*roomState
	taxes taxes.Resolver
}

func NewStore(resolver taxes.Resolver) *Store {
	return &Store{
		rooms: make(map[rooms.RoomID]*roomState),
		taxes: resolver,
	}
}

// AddRoom registers a room with its discount rules. Reservations start as an
// empty, materialized slice so snapshots never hand out nil relations.
func (s *Store) AddRoom(room rooms.Room, rules []discounts.Discount) error {
	if err := room.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.ID] = &roomState{
		room:         room,
		discounts:    cloneDiscounts(rules),
		reservations: make([]*reservation.Reservation, 0),
	}
	return nil
}

// Snapshot returns a fully hydrated, deep-copied view of the room. Mutating
// the returned value never touches the store.
func (s *Store) Snapshot(ctx context.Context, roomID rooms.RoomID) (reservation.Snapshot, error) {
	state, err := s.state(roomID)
	if err != nil {
		return reservation.Snapshot{}, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()

	existing := make([]*reservation.Reservation, 0, len(state.reservations))
	for _, r := range state.reservations {
		existing = append(existing, cloneReservation(r))
	}
	return reservation.Snapshot{
		Room:      state.room,
		Discounts: cloneDiscounts(state.discounts),
		Existing:  existing,
		Taxes:     s.taxes,
	}, nil
}

// Commit persists an admitted reservation after re-checking its dates
// against everything scheduled meanwhile. Losing that race yields
// reservation.ErrOverbooked; the caller reloads a snapshot and retries.
func (s *Store) Commit(ctx context.Context, r *reservation.Reservation) error {
	state, err := s.state(r.RoomID)
	if err != nil {
		return err
	}
	state.mu.Lock()
	defer state.mu.Unlock()

	for _, other := range state.reservations {
		if other.IsScheduled() && other.Stay.Overlaps(r.Stay) {
			return fmt.Errorf("memory: commit %s: %w", r.ID, reservation.ErrOverbooked)
		}
	}
	state.reservations = append(state.reservations, cloneReservation(r))
	return nil
}

// Cancel transitions a stored reservation to cancelled, freeing its dates.
func (s *Store) Cancel(ctx context.Context, roomID rooms.RoomID, id reservation.ReservationID, now time.Time) error {
	return s.transition(roomID, id, func(r *reservation.Reservation) error {
		return r.Cancel(now)
	})
}

// Complete transitions a stored reservation to completed.
func (s *Store) Complete(ctx context.Context, roomID rooms.RoomID, id reservation.ReservationID, now time.Time) error {
	return s.transition(roomID, id, func(r *reservation.Reservation) error {
		return r.Complete(now)
	})
}

func (s *Store) transition(roomID rooms.RoomID, id reservation.ReservationID, apply func(*reservation.Reservation) error) error {
	state, err := s.state(roomID)
	if err != nil {
		return err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	for _, r := range state.reservations {
		if r.ID == id {
			return apply(r)
		}
	}
	return ErrReservationNotFound
}

func (s *Store) state(roomID rooms.RoomID) (*roomState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return state, nil
}

// cloneDiscounts always yields a materialized slice; a room with no discount
// rules must still snapshot as empty, never nil.
func cloneDiscounts(rules []discounts.Discount) []discounts.Discount {
	out := make([]discounts.Discount, 0, len(rules))
	return append(out, rules...)
}

func cloneReservation(r *reservation.Reservation) *reservation.Reservation {
	clone := *r
	clone.EventRecorder = events.EventRecorder{}
	return &clone
}
