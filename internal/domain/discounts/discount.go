package discounts

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"staybook/internal/domain/shared/money"
)

// Discount computes a reduction of the accommodation fee for a stay. Kinds
// are responsible for clamping their own result; the resolver only selects.
type Discount interface {
	Name() string
	ComputeDiscount(fee money.Money, stayDays int) money.Money
}

// Largest returns the single largest discount across all rules, floored at
// zero. Discounts never stack: two applicable rules yield the bigger of the
// two, not their sum. An empty rule set yields zero.
func Largest(rules []Discount, fee money.Money, stayDays int) money.Money {
	return lo.Reduce(rules, func(best money.Money, rule Discount, _ int) money.Money {
		if amount := rule.ComputeDiscount(fee, stayDays); amount.GreaterThan(best) {
			return amount
		}
		return best
	}, money.Zero(fee.Currency))
}

// StayLengthDiscount takes a rate off the accommodation fee once the stay
// reaches a minimum number of nights (the classic weekly/monthly discount).
type StayLengthDiscount struct {
	Label     string
	MinNights int
	Rate      decimal.Decimal // 0.05 means five percent off
}

func (d StayLengthDiscount) Name() string { return d.Label }

func (d StayLengthDiscount) ComputeDiscount(fee money.Money, stayDays int) money.Money {
	if stayDays < d.MinNights {
		return money.Zero(fee.Currency)
	}
	return fee.MulRate(d.Rate)
}

// FlatDiscount takes a fixed amount off regardless of stay length, clamped
// to the accommodation fee so it can never flip the price negative.
type FlatDiscount struct {
	Label  string
	Amount money.Money
}

func (d FlatDiscount) Name() string { return d.Label }

func (d FlatDiscount) ComputeDiscount(fee money.Money, _ int) money.Money {
	if d.Amount.GreaterThan(fee) {
		return fee
	}
	return d.Amount
}
