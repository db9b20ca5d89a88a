package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/domain/discounts"
	"staybook/internal/domain/rooms"
	"staybook/internal/domain/shared/money"
	"staybook/internal/domain/taxes"
)

func testRoom() rooms.Room {
	cleaning := money.Must(20, "USD")
	return rooms.Room{
		ID:          "room-1",
		HostID:      "host-1",
		Type:        rooms.Apartment,
		Title:       "Sunny studio",
		NightlyRate: money.Must(100, "USD"),
		CleaningFee: &cleaning,
		RoomCnt:     1,
		BedCnt:      1,
		BathCnt:     1,
		MaxGuestCnt: 4,
		CountryCode: "US",
	}
}

// Room at 100/night, cleaning 20, no discounts, 15% commission, zero tax:
// 3 nights for 2 guests must come out at exactly 368.
func TestQuoteConcreteBreakdown(t *testing.T) {
	calc := NewCalculator(taxes.RateTable{})

	got, err := calc.Quote(testRoom(), []discounts.Discount{}, 3, 2)
	require.NoError(t, err)

	assert.True(t, got.AccommodationFee.Equal(money.Must(300, "USD")), "accommodation %s", got.AccommodationFee)
	assert.True(t, got.DiscountFee.IsZero())
	assert.True(t, got.CleaningFee.Equal(money.Must(20, "USD")))
	assert.True(t, got.ServiceFee.Equal(money.Must(48, "USD")), "service %s", got.ServiceFee)
	assert.True(t, got.TaxFee.IsZero())
	assert.True(t, got.Total.Equal(money.Must(368, "USD")), "total %s", got.Total)
}

func TestQuoteIsPure(t *testing.T) {
	calc := NewCalculator(taxes.RateTable{Rates: map[string]decimal.Decimal{
		"US": decimal.RequireFromString("0.08"),
	}})
	room := testRoom()
	rules := []discounts.Discount{
		discounts.StayLengthDiscount{Label: "weekly", MinNights: 7, Rate: decimal.RequireFromString("0.05")},
	}

	first, err := calc.Quote(room, rules, 7, 2)
	require.NoError(t, err)
	second, err := calc.Quote(room, rules, 7, 2)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// totalPrice = accommodationFee - discountFee + cleaningFee + serviceFee + taxFee
// must hold exactly for every breakdown.
func TestQuoteComponentIdentity(t *testing.T) {
	calc := NewCalculator(taxes.RateTable{Rates: map[string]decimal.Decimal{
		"US": decimal.RequireFromString("0.0825"),
	}})
	rules := []discounts.Discount{
		discounts.StayLengthDiscount{Label: "weekly", MinNights: 7, Rate: decimal.RequireFromString("0.07")},
		discounts.FlatDiscount{Label: "promo", Amount: money.Must(30, "USD")},
	}

	for _, days := range []int{1, 3, 7, 30} {
		got, err := calc.Quote(testRoom(), rules, days, 2)
		require.NoError(t, err)

		sum := got.AccommodationFee.Amount.
			Sub(got.DiscountFee.Amount).
			Add(got.CleaningFee.Amount).
			Add(got.ServiceFee.Amount).
			Add(got.TaxFee.Amount)
		assert.True(t, got.Total.Amount.Equal(sum), "days=%d total=%s sum=%s", days, got.Total.Amount, sum)
	}
}

func TestQuoteNilCleaningFeeDefaultsToZero(t *testing.T) {
	room := testRoom()
	room.CleaningFee = nil
	calc := NewCalculator(taxes.RateTable{})

	got, err := calc.Quote(room, []discounts.Discount{}, 2, 1)
	require.NoError(t, err)
	assert.True(t, got.CleaningFee.IsZero())
	// 200 + 15% of 200
	assert.True(t, got.Total.Equal(money.Must(230, "USD")), "total %s", got.Total)
}

func TestQuoteDiscountLowersServiceFeeBase(t *testing.T) {
	room := testRoom()
	calc := NewCalculator(taxes.RateTable{})
	rules := []discounts.Discount{
		discounts.FlatDiscount{Label: "promo", Amount: money.Must(100, "USD")},
	}

	// 300 - 100 + 20 = 220; service is 15% of that, not of 320.
	got, err := calc.Quote(room, rules, 3, 2)
	require.NoError(t, err)
	assert.True(t, got.ServiceFee.Equal(money.Must(33, "USD")), "service %s", got.ServiceFee)
	assert.True(t, got.Total.Equal(money.Must(253, "USD")), "total %s", got.Total)
}

func TestQuoteFailsFastOnIncompleteSnapshot(t *testing.T) {
	calc := NewCalculator(taxes.RateTable{})

	_, err := calc.Quote(testRoom(), nil, 3, 2)
	require.ErrorIs(t, err, rooms.ErrIncompleteSnapshot)

	noCountry := testRoom()
	noCountry.CountryCode = ""
	_, err = calc.Quote(noCountry, []discounts.Discount{}, 3, 2)
	require.ErrorIs(t, err, rooms.ErrIncompleteSnapshot)

	_, err = NewCalculator(nil).Quote(testRoom(), []discounts.Discount{}, 3, 2)
	require.ErrorIs(t, err, rooms.ErrIncompleteSnapshot)
}

func TestQuoteRejectsNonPositiveStay(t *testing.T) {
	calc := NewCalculator(taxes.RateTable{})
	_, err := calc.Quote(testRoom(), []discounts.Discount{}, 0, 2)
	require.ErrorIs(t, err, ErrNonPositiveStay)
}
