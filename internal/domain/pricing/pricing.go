package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"staybook/internal/domain/discounts"
	"staybook/internal/domain/rooms"
	"staybook/internal/domain/shared/money"
	"staybook/internal/domain/taxes"
)

// CommissionRate is the platform service-fee rate applied to the stay price
// before tax. A fixed constant until a real billing system replaces it.
var CommissionRate = decimal.RequireFromString("0.15")

var ErrNonPositiveStay = errors.New("pricing: stay days must be positive")

// PriceBreakdown is the full, immutable decomposition of a stay price. It is
// recomputed fresh on every quote and never persisted on its own.
type PriceBreakdown struct {
	AccommodationFee money.Money
	DiscountFee      money.Money
	CleaningFee      money.Money
	ServiceFee       money.Money
	TaxFee           money.Money
	Total            money.Money
}

// Calculator runs the fee pipeline against a room snapshot. It holds the tax
// resolver the snapshot was loaded with and nothing else.
type Calculator struct {
	taxes taxes.Resolver
}

func NewCalculator(resolver taxes.Resolver) Calculator {
	return Calculator{taxes: resolver}
}

// Quote computes the authoritative price for a stay. The stages run in a
// fixed order, each feeding the next:
//
//	accommodation -> discount -> cleaning -> service -> tax -> total
//
// A nil discount slice, an empty country code or a missing tax resolver is a
// loader bug, not a business rejection, and fails with
// rooms.ErrIncompleteSnapshot.
func (c Calculator) Quote(room rooms.Room, rules []discounts.Discount, stayDays, guestCnt int) (PriceBreakdown, error) {
	if rules == nil {
		return PriceBreakdown{}, fmt.Errorf("pricing: discounts: %w", rooms.ErrIncompleteSnapshot)
	}
	if c.taxes == nil || room.CountryCode == "" {
		return PriceBreakdown{}, fmt.Errorf("pricing: tax context: %w", rooms.ErrIncompleteSnapshot)
	}
	if stayDays <= 0 {
		return PriceBreakdown{}, ErrNonPositiveStay
	}

	accommodation := room.NightlyRate.MulInt(int64(stayDays))
	discount := discounts.Largest(rules, accommodation, stayDays)
	cleaning := room.Cleaning()

	preService, err := accommodation.Sub(discount)
	if err != nil {
		return PriceBreakdown{}, fmt.Errorf("pricing: discount fee: %w", err)
	}
	preService, err = preService.Add(cleaning)
	if err != nil {
		return PriceBreakdown{}, fmt.Errorf("pricing: cleaning fee: %w", err)
	}

	service := preService.MulRate(CommissionRate)
	preTax, err := preService.Add(service)
	if err != nil {
		return PriceBreakdown{}, fmt.Errorf("pricing: service fee: %w", err)
	}

	tax, err := c.taxes.Calculate(room.CountryCode, preTax, stayDays, guestCnt)
	if err != nil {
		return PriceBreakdown{}, fmt.Errorf("pricing: tax fee: %w", err)
	}
	total, err := preTax.Add(tax)
	if err != nil {
		return PriceBreakdown{}, fmt.Errorf("pricing: total: %w", err)
	}

	return PriceBreakdown{
		AccommodationFee: accommodation,
		DiscountFee:      discount,
		CleaningFee:      cleaning,
		ServiceFee:       service,
		TaxFee:           tax,
		Total:            total,
	}, nil
}
