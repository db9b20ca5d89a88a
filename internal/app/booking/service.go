package booking

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"staybook/internal/domain/reservation"
	"staybook/internal/domain/rooms"
	"staybook/internal/domain/shared/daterange"
	"staybook/internal/domain/shared/money"
)

// How often a lost admission race is retried before giving up. In practice
// the retry resolves on the first reload: the winner is in the fresh
// snapshot, so the factory returns the conflict as a business rejection.
const defaultMaxAttempts = 3

var ErrTooMuchContention = errors.New("booking: room contended, admission retries exhausted")

// ReserveCommand carries everything a guest submits when booking a room.
type ReserveCommand struct {
	RoomID        rooms.RoomID
	GuestID       string
	CheckIn       time.Time
	CheckOut      time.Time
	GuestCnt      int
	ExpectedPrice money.Money
}

// Service drives the reserve flow: load a snapshot, run the engine, commit.
// It owns what the pure engine cannot: the optimistic-retry loop around
// commit-time overlap failures, and logging.
type Service struct {
	repo        reservation.Repository
	log         *slog.Logger
	maxAttempts int
}

func NewService(repo reservation.Repository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, log: log, maxAttempts: defaultMaxAttempts}
}

func (s *Service) Reserve(ctx context.Context, cmd ReserveCommand) (*reservation.Reservation, error) {
	stay, err := daterange.New(cmd.CheckIn, cmd.CheckOut)
	if err != nil {
		return nil, err
	}
	req := reservation.Request{
		GuestID:       cmd.GuestID,
		Stay:          stay,
		GuestCnt:      cmd.GuestCnt,
		ExpectedPrice: cmd.ExpectedPrice,
	}

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		snap, err := s.repo.Snapshot(ctx, cmd.RoomID)
		if err != nil {
			return nil, err
		}
		res, err := reservation.Reserve(snap, req, time.Now())
		if err != nil {
			return nil, err
		}
		if err := s.repo.Commit(ctx, res); err != nil {
			if errors.Is(err, reservation.ErrOverbooked) {
				lastErr = err
				s.log.Warn("admission race lost, reloading snapshot",
					slog.String("room_id", string(cmd.RoomID)),
					slog.Int("attempt", attempt))
				continue
			}
			return nil, err
		}
		s.log.Info("reservation committed",
			slog.String("reservation_id", string(res.ID)),
			slog.String("room_id", string(cmd.RoomID)),
			slog.String("total", res.Price.String()))
		return res, nil
	}
	return nil, errors.Join(ErrTooMuchContention, lastErr)
}
