package reservation

import (
	"time"

	"staybook/internal/domain/rooms"
	"staybook/internal/domain/shared/daterange"
	"staybook/internal/domain/shared/money"
)

type ReservationScheduled struct {
	ReservationID ReservationID
	RoomID        rooms.RoomID
	GuestID       string
	Stay          daterange.DateRange
	GuestCnt      int
	Total         money.Money
	At            time.Time
}

func (e ReservationScheduled) EventName() string     { return "reservation.scheduled" }
func (e ReservationScheduled) AggregateID() string   { return string(e.ReservationID) }
func (e ReservationScheduled) OccurredAt() time.Time { return e.At }

type ReservationCancelled struct {
	ReservationID ReservationID
	RoomID        rooms.RoomID
	Stay          daterange.DateRange
	At            time.Time
}

func (e ReservationCancelled) EventName() string     { return "reservation.cancelled" }
func (e ReservationCancelled) AggregateID() string   { return string(e.ReservationID) }
func (e ReservationCancelled) OccurredAt() time.Time { return e.At }

type ReservationCompleted struct {
	ReservationID ReservationID
	At            time.Time
}

func (e ReservationCompleted) EventName() string     { return "reservation.completed" }
func (e ReservationCompleted) AggregateID() string   { return string(e.ReservationID) }
func (e ReservationCompleted) OccurredAt() time.Time { return e.At }
