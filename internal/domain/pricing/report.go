package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/felipecasali/iphoneshopping-sub000/internal/domain/entities"
)

// ReportEstimator is the pricing formula used when generating a technical
// report. It is intentionally NOT the market calculator: it carries its own
// base-price table (matched by model substring, longest match first, rather
// than exact catalog lookup), its own condition multipliers, bonus amounts
// and battery tier boundaries, and applies battery before screen/body.
//
// The two formulas are not guaranteed to agree for the same device. Whether
// that disagreement is accepted or a bug is an open product question; until
// it is answered the report path stays separate and named, instead of being
// silently folded into the market estimate.

type ReportEstimator struct {
	bases       []reportBase
	multipliers map[entities.Condition]decimal.Decimal
}

type reportBase struct {
	fragment string
	price    int64
}

// ReportQuote is the technical-report estimate plus the base-table row that
// matched.

type ReportQuote struct {
	Amount       int64               `json:"amount"`
	Range        entities.PriceRange `json:"range"`
	MatchedModel string              `json:"matched_model"`
}

// Report-path coefficients. Kept apart from ValuationPolicy on purpose.
const (
	reportBonusBox      = 100
	reportBonusCharger  = 80
	reportBonusInvoice  = 150
	reportBonusWarranty = 250

	reportBatteryLowCutoff = 75
	reportBatteryMidCutoff = 85
	reportBatteryLow       = 350
	reportBatteryMid       = 150

	reportPenaltyScreenCracked = 450
	reportPenaltyScreenMarks   = 150
	reportPenaltyBodyDented    = 250
	reportPenaltyBodyMarks     = 100
	reportPenaltyWaterDamage   = 350
	reportPenaltyFunctional    = 250
)

func NewReportEstimator() *ReportEstimator {
	return &ReportEstimator{
		// Longest fragment first: "iPhone 14 Pro" must win over "iPhone 14".
		bases: []reportBase{
			{"iphone 15 pro", 6299},
			{"iphone 14 pro", 5199},
			{"iphone 13 pro", 4499},
			{"ipad pro", 5499},
			{"iphone 15", 5099},
			{"iphone 14", 4299},
			{"iphone 13", 3899},
			{"iphone 12", 2899},
			{"iphone 11", 2099},
			{"iphone se", 1799},
			{"ipad air", 3499},
			{"ipad mini", 2999},
			{"ipad", 2199},
		},
		multipliers: map[entities.Condition]decimal.Decimal{
			entities.ConditionNew:       decimal.NewFromFloat(1.00),
			entities.ConditionExcellent: decimal.NewFromFloat(0.90),
			entities.ConditionVeryGood:  decimal.NewFromFloat(0.78),
			entities.ConditionGood:      decimal.NewFromFloat(0.62),
			entities.ConditionFair:      decimal.NewFromFloat(0.45),
			entities.ConditionDefective: decimal.NewFromFloat(0.30),
		},
	}
}

// Estimate prices a device for a technical report. Compliance gating applies
// here as well: a locked or blocked device reports zero value.
func (r *ReportEstimator) Estimate(input entities.ValuationInput) (ReportQuote, error) {
	base, matched, err := r.matchBase(input.Model)
	if err != nil {
		return ReportQuote{}, err
	}

	mult, ok := r.multipliers[input.Condition]
	if !ok {
		return ReportQuote{}, fmt.Errorf("%w: %q", entities.ErrInvalidCondition, input.Condition)
	}

	if !IsCompliant(input) {
		return ReportQuote{Amount: 0, Range: entities.PriceRange{}, MatchedModel: matched}, nil
	}

	price := decimal.NewFromInt(base).Mul(mult)

	if input.DeviceType == entities.DeviceTypePhone && input.BatteryHealthPercent != nil {
		price = price.Sub(decimal.NewFromInt(reportBatteryPenalty(*input.BatteryHealthPercent)))
	}

	switch input.ScreenCondition {
	case entities.ScreenCracked:
		price = price.Sub(decimal.NewFromInt(reportPenaltyScreenCracked))
	case entities.ScreenLightMarks, entities.ScreenVisibleMarks:
		price = price.Sub(decimal.NewFromInt(reportPenaltyScreenMarks))
	}

	switch input.BodyCondition {
	case entities.BodyDented:
		price = price.Sub(decimal.NewFromInt(reportPenaltyBodyDented))
	case entities.BodyLightMarks, entities.BodyVisibleMarks:
		price = price.Sub(decimal.NewFromInt(reportPenaltyBodyMarks))
	}

	if input.HasWaterDamage {
		price = price.Sub(decimal.NewFromInt(reportPenaltyWaterDamage))
	}
	if input.HasFunctionalIssues {
		price = price.Sub(decimal.NewFromInt(reportPenaltyFunctional))
	}

	var bonus int64
	if input.HasBox {
		bonus += reportBonusBox
	}
	if input.HasCharger {
		bonus += reportBonusCharger
	}
	if input.HasInvoice {
		bonus += reportBonusInvoice
	}
	if input.HasWarranty {
		bonus += reportBonusWarranty
	}
	price = price.Add(decimal.NewFromInt(bonus))

	amount := price.Round(0).IntPart()
	if amount < 0 {
		amount = 0
	}

	return ReportQuote{Amount: amount, Range: RangeFor(amount), MatchedModel: matched}, nil
}

func (r *ReportEstimator) matchBase(model string) (int64, string, error) {
	needle := strings.ToLower(strings.TrimSpace(model))
	for _, b := range r.bases {
		if strings.Contains(needle, b.fragment) {
			return b.price, b.fragment, nil
		}
	}
	return 0, "", fmt.Errorf("%w: no report base price for model %q", entities.ErrDeviceNotFound, model)
}

func reportBatteryPenalty(healthPercent int) int64 {
	switch {
	case healthPercent < reportBatteryLowCutoff:
		return reportBatteryLow
	case healthPercent < reportBatteryMidCutoff:
		return reportBatteryMid
	default:
		return 0
	}
}
