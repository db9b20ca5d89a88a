package rooms

import (
	"errors"

	"staybook/internal/domain/shared/money"
)

var (
	ErrInvalidRate = errors.New("rooms: nightly rate must be a positive amount")
	ErrInvalidCaps = errors.New("rooms: room, bed and guest counts must be positive")

	// ErrIncompleteSnapshot marks a snapshot whose related collections were
	// never materialized by the loader. A room with zero reservations or
	// zero discounts carries empty slices, not nil.
	ErrIncompleteSnapshot = errors.New("rooms: snapshot relation not loaded")
)

type RoomID string

type RoomType string

const (
	Apartment       RoomType = "APARTMENT"
	House           RoomType = "HOUSE"
	SecondaryUnit   RoomType = "SECONDARY_UNIT"
	UniqueSpace     RoomType = "UNIQUE_SPACE"
	BedAndBreakfast RoomType = "BED_AND_BREAKFAST"
	BoutiqueHotel   RoomType = "BOUTIQUE_HOTEL"
)

type Address struct {
	State   string
	City    string
	Street  string
	Etc     string
	ZipCode string
}

// Room is a read-only projection of a listed room as the engine sees it.
// The engine never mutates it.
type Room struct {
	ID          RoomID
	HostID      string
	Type        RoomType
	Title       string
	Description string
	NightlyRate money.Money
	CleaningFee *money.Money // nil means the host charges none
	RoomCnt     int
	BedCnt      int
	BathCnt     float64
	MaxGuestCnt int
	Address     Address
	CountryCode string // tax jurisdiction handle resolved by the tax resolver
}

func (r Room) Validate() error {
	if r.NightlyRate.Currency == "" || r.NightlyRate.IsNegative() || r.NightlyRate.IsZero() {
		return ErrInvalidRate
	}
	if r.RoomCnt <= 0 || r.BedCnt <= 0 || r.MaxGuestCnt <= 0 {
		return ErrInvalidCaps
	}
	return nil
}

// Cleaning returns the cleaning fee, defaulting to zero in the room's
// currency when the host charges none.
func (r Room) Cleaning() money.Money {
	if r.CleaningFee == nil {
		return money.Zero(r.NightlyRate.Currency)
	}
	return *r.CleaningFee
}
