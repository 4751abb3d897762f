package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/felipecasali/iphoneshopping-sub000/internal/domain/entities"
)

var one = decimal.NewFromInt(1)

// Quote is the outcome of one market valuation. Blocked quotes carry a zero
// amount plus the violated precondition; that keeps "blocked by policy"
// distinguishable from a device legitimately worth its floor.

type Quote struct {
	Amount      int64               `json:"amount"`
	Range       entities.PriceRange `json:"range"`
	Blocked     bool                `json:"blocked"`
	BlockReason BlockReason         `json:"block_reason,omitempty"`
}

// Calculator turns a validated questionnaire and a catalog entry into a
// market estimate. It is stateless apart from the shared read-only policy
// and safe for concurrent use.

type Calculator struct {
	policy *ValuationPolicy
}

func NewCalculator(policy *ValuationPolicy) *Calculator {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &Calculator{policy: policy}
}

// Estimate runs the adjustment pipeline. asOf anchors depreciation and the
// age-bracket floor; callers inject it so the same input always prices the
// same way.
//
// Stage order matters: condition discounts compound multiplicatively on the
// running total, accessory bonuses and damage penalties are then additive,
// the compliance gate short-circuits everything, and the minimum floor only
// applies to compliant devices.
func (c *Calculator) Estimate(input entities.ValuationInput, entry entities.DeviceCatalogEntry, asOf time.Time) (Quote, error) {
	p := c.policy

	price := decimal.NewFromInt(entry.BasePrice)

	tier, err := entry.StorageTierIndex(input.StorageGB)
	if err != nil {
		return Quote{}, err
	}
	price = price.Add(decimal.NewFromInt(int64(tier) * p.StorageTierStep))

	if input.PurchaseDate != nil {
		months := input.PurchaseDate.MonthsUntil(asOf)
		rate := p.MonthlyRate(input.DeviceType, input.Model)
		factor := one.Sub(rate.Mul(decimal.NewFromInt(int64(months))))
		factor = decimal.Max(factor, p.DepreciationFloor)
		price = price.Mul(factor)
	}

	mult, ok := p.ConditionMultipliers[input.Condition]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %q", entities.ErrInvalidCondition, input.Condition)
	}
	price = price.Mul(mult)

	price = price.Add(decimal.NewFromInt(c.accessoryBonuses(input)))

	if input.DeviceType == entities.DeviceTypePhone && input.BatteryHealthPercent != nil {
		price = price.Sub(decimal.NewFromInt(c.batteryPenalty(*input.BatteryHealthPercent)))
	}

	screenPenalty, ok := p.ScreenPenalties[input.ScreenCondition]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %q", entities.ErrInvalidScreenCondition, input.ScreenCondition)
	}
	price = price.Sub(decimal.NewFromInt(screenPenalty))

	bodyPenalty, ok := p.BodyPenalties[input.BodyCondition]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %q", entities.ErrInvalidBodyCondition, input.BodyCondition)
	}
	price = price.Sub(decimal.NewFromInt(bodyPenalty))

	if input.HasWaterDamage {
		price = price.Sub(decimal.NewFromInt(p.PenaltyWaterDamage))
	}
	if input.HasFunctionalIssues {
		price = price.Sub(decimal.NewFromInt(p.PenaltyFunctionalIssues))
	}

	if reason := ComplianceReason(input); reason != BlockReasonNone {
		return Quote{Amount: 0, Range: entities.PriceRange{}, Blocked: true, BlockReason: reason}, nil
	}

	floor := p.Floors(input.DeviceType).For(entry.AgeYears(asOf.Year()))
	price = decimal.Max(price, decimal.NewFromInt(floor))

	amount := price.Round(0).IntPart()
	if amount < 0 {
		amount = 0
	}

	return Quote{Amount: amount, Range: RangeFor(amount)}, nil
}

func (c *Calculator) accessoryBonuses(input entities.ValuationInput) int64 {
	p := c.policy
	var bonus int64
	if input.HasBox {
		bonus += p.BonusBox
	}
	if input.HasCharger {
		bonus += p.BonusCharger
	}
	if input.HasCable {
		bonus += p.BonusCable
	}
	if input.HasStylus {
		bonus += p.BonusStylus
	}
	if input.HasKeyboardCase {
		bonus += p.BonusKeyboardCase
	}
	if input.HasInvoice {
		bonus += p.BonusInvoice
	}
	if input.HasWarranty {
		bonus += p.BonusWarranty
	}
	return bonus
}

// batteryPenalty applies exactly one tier; tiers never stack.
func (c *Calculator) batteryPenalty(healthPercent int) int64 {
	p := c.policy
	switch {
	case healthPercent < p.PenaltyBatteryLowCutoff:
		return p.PenaltyBatteryLow
	case healthPercent < p.PenaltyBatteryMidCutoff:
		return p.PenaltyBatteryMid
	default:
		return 0
	}
}

// RangeFor derives the advertised negotiation band around an amount.
func RangeFor(amount int64) entities.PriceRange {
	d := decimal.NewFromInt(amount)
	return entities.PriceRange{
		Min: d.Mul(decimal.NewFromFloat(0.9)).Round(0).IntPart(),
		Max: d.Mul(decimal.NewFromFloat(1.1)).Round(0).IntPart(),
	}
}
