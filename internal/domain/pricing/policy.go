// Package pricing implements the device valuation engine: the market price
// calculator used by evaluations and the separate estimator used by
// technical reports.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/felipecasali/iphoneshopping-sub000/internal/domain/entities"
)

// ValuationPolicy is the coefficient table driving the market estimate.
// It is read-only configuration: loaded once, shared by any number of
// concurrent calculations.

type ValuationPolicy struct {
	// Flat increment per storage tier above the base tier.
	StorageTierStep int64

	// Monthly depreciation rates by device class and the factor the
	// depreciation stage can never drop below.
	MonthlyRateTablet   decimal.Decimal
	MonthlyRatePhonePro decimal.Decimal
	MonthlyRatePhone    decimal.Decimal
	DepreciationFloor   decimal.Decimal

	ConditionMultipliers map[entities.Condition]decimal.Decimal

	BonusBox          int64
	BonusCharger      int64
	BonusCable        int64
	BonusStylus       int64
	BonusKeyboardCase int64
	BonusInvoice      int64
	BonusWarranty     int64

	// Battery tiers apply to phones only. Below PenaltyBatteryLowCutoff the
	// low penalty applies; from there up to PenaltyBatteryMidCutoff
	// (exclusive) the mid penalty applies; at or above the mid cutoff there
	// is no penalty. Tiers do not stack.
	PenaltyBatteryLowCutoff int
	PenaltyBatteryMidCutoff int
	PenaltyBatteryLow       int64
	PenaltyBatteryMid       int64

	ScreenPenalties map[entities.ScreenCondition]int64
	BodyPenalties   map[entities.BodyCondition]int64

	PenaltyWaterDamage      int64
	PenaltyFunctionalIssues int64

	// Minimum-value floors by device type and age bracket, representing
	// residual parts value. Age brackets: <=2y, <=4y, older.
	PhoneFloors  AgeFloors
	TabletFloors AgeFloors
}

// AgeFloors holds the three age-bracket floors for one device type.

type AgeFloors struct {
	UpToTwoYears  int64
	UpToFourYears int64
	Older         int64
}

// For returns the floor for a device of the given age in years.
func (f AgeFloors) For(ageYears int) int64 {
	switch {
	case ageYears <= 2:
		return f.UpToTwoYears
	case ageYears <= 4:
		return f.UpToFourYears
	default:
		return f.Older
	}
}

// DefaultPolicy returns the coefficient table in production use.
func DefaultPolicy() *ValuationPolicy {
	return &ValuationPolicy{
		StorageTierStep: 500,

		MonthlyRateTablet:   decimal.NewFromFloat(0.018),
		MonthlyRatePhonePro: decimal.NewFromFloat(0.015),
		MonthlyRatePhone:    decimal.NewFromFloat(0.020),
		DepreciationFloor:   decimal.NewFromFloat(0.4),

		ConditionMultipliers: map[entities.Condition]decimal.Decimal{
			entities.ConditionNew:       decimal.NewFromFloat(0.95),
			entities.ConditionExcellent: decimal.NewFromFloat(0.85),
			entities.ConditionVeryGood:  decimal.NewFromFloat(0.75),
			entities.ConditionGood:      decimal.NewFromFloat(0.65),
			entities.ConditionFair:      decimal.NewFromFloat(0.50),
			entities.ConditionDefective: decimal.NewFromFloat(0.40),
		},

		BonusBox:          150,
		BonusCharger:      100,
		BonusCable:        80,
		BonusStylus:       400,
		BonusKeyboardCase: 600,
		BonusInvoice:      200,
		BonusWarranty:     300,

		PenaltyBatteryLowCutoff: 70,
		PenaltyBatteryMidCutoff: 80,
		PenaltyBatteryLow:       400,
		PenaltyBatteryMid:       200,

		ScreenPenalties: map[entities.ScreenCondition]int64{
			entities.ScreenPerfect:      0,
			entities.ScreenLightMarks:   80,
			entities.ScreenVisibleMarks: 200,
			entities.ScreenCracked:      500,
		},
		BodyPenalties: map[entities.BodyCondition]int64{
			entities.BodyPerfect:      0,
			entities.BodyLightMarks:   60,
			entities.BodyVisibleMarks: 150,
			entities.BodyDented:       300,
		},

		PenaltyWaterDamage:      300,
		PenaltyFunctionalIssues: 300,

		PhoneFloors:  AgeFloors{UpToTwoYears: 800, UpToFourYears: 500, Older: 300},
		TabletFloors: AgeFloors{UpToTwoYears: 600, UpToFourYears: 400, Older: 250},
	}
}

// MonthlyRate selects the depreciation rate for one device. "Pro" family
// phones hold value better than the regular line; tablets have their own
// rate.
func (p *ValuationPolicy) MonthlyRate(deviceType entities.DeviceType, model string) decimal.Decimal {
	if deviceType == entities.DeviceTypeTablet {
		return p.MonthlyRateTablet
	}
	if strings.Contains(strings.ToLower(model), "pro") {
		return p.MonthlyRatePhonePro
	}
	return p.MonthlyRatePhone
}

// Floors returns the age-bracket floor table for the device type.
func (p *ValuationPolicy) Floors(deviceType entities.DeviceType) AgeFloors {
	if deviceType == entities.DeviceTypeTablet {
		return p.TabletFloors
	}
	return p.PhoneFloors
}
