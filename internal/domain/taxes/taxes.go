package taxes

import (
	"github.com/shopspring/decimal"

	"staybook/internal/domain/shared/money"
)

// Resolver computes the tax owed for a stay. The pricing pipeline treats it
// as an opaque pure function of its four inputs; per-jurisdiction rules live
// behind this contract.
type Resolver interface {
	Calculate(countryCode string, price money.Money, stayDays, guestCnt int) (money.Money, error)
}

// RateTable is a flat-rate resolver keyed by country code. Countries absent
// from the table owe no tax.
type RateTable struct {
	Rates map[string]decimal.Decimal
}

func (t RateTable) Calculate(countryCode string, price money.Money, _ int, _ int) (money.Money, error) {
	rate, ok := t.Rates[countryCode]
	if !ok {
		return money.Zero(price.Currency), nil
	}
	return price.MulRate(rate), nil
}
