package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidCondition       = errors.New("invalid condition")
	ErrInvalidScreenCondition = errors.New("invalid screen condition")
	ErrInvalidBodyCondition   = errors.New("invalid body condition")
	ErrInvalidYearMonth       = errors.New("invalid year-month")
)

// Condition is the six-tier overall physical-condition bucket declared by the
// seller. Tiers are ordered; each maps to a multiplicative discount in the
// valuation policy.

type Condition string

const (
	ConditionNew       Condition = "new"
	ConditionExcellent Condition = "excellent"
	ConditionVeryGood  Condition = "very_good"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionDefective Condition = "defective"
)

// Conditions lists every tier from best to worst.
var Conditions = []Condition{
	ConditionNew,
	ConditionExcellent,
	ConditionVeryGood,
	ConditionGood,
	ConditionFair,
	ConditionDefective,
}

func ParseCondition(raw string) (Condition, error) {
	switch normalizeEnum(raw) {
	case "new":
		return ConditionNew, nil
	case "excellent":
		return ConditionExcellent, nil
	case "very_good":
		return ConditionVeryGood, nil
	case "good":
		return ConditionGood, nil
	case "fair":
		return ConditionFair, nil
	case "defective":
		return ConditionDefective, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCondition, raw)
	}
}

// ScreenCondition describes the display glass state.

type ScreenCondition string

const (
	ScreenPerfect      ScreenCondition = "perfect"
	ScreenLightMarks   ScreenCondition = "light_marks"
	ScreenVisibleMarks ScreenCondition = "visible_marks"
	ScreenCracked      ScreenCondition = "cracked"
)

func ParseScreenCondition(raw string) (ScreenCondition, error) {
	switch normalizeEnum(raw) {
	case "perfect":
		return ScreenPerfect, nil
	case "light_marks":
		return ScreenLightMarks, nil
	case "visible_marks":
		return ScreenVisibleMarks, nil
	case "cracked":
		return ScreenCracked, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidScreenCondition, raw)
	}
}

// BodyCondition describes the housing/chassis state.

type BodyCondition string

const (
	BodyPerfect      BodyCondition = "perfect"
	BodyLightMarks   BodyCondition = "light_marks"
	BodyVisibleMarks BodyCondition = "visible_marks"
	BodyDented       BodyCondition = "dented"
)

func ParseBodyCondition(raw string) (BodyCondition, error) {
	switch normalizeEnum(raw) {
	case "perfect":
		return BodyPerfect, nil
	case "light_marks":
		return BodyLightMarks, nil
	case "visible_marks":
		return BodyVisibleMarks, nil
	case "dented":
		return BodyDented, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidBodyCondition, raw)
	}
}

func normalizeEnum(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, "-", "_")
}

// YearMonth is a calendar month without a day component, used for the
// declared purchase date.

type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// ParseYearMonth accepts the "YYYY-MM" wire format.
func ParseYearMonth(raw string) (YearMonth, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(raw))
	if err != nil {
		return YearMonth{}, fmt.Errorf("%w: %q", ErrInvalidYearMonth, raw)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// MonthsUntil counts whole elapsed months from ym to asOf, clamped at zero
// for purchase dates in the future.
func (ym YearMonth) MonthsUntil(asOf time.Time) int {
	months := (asOf.Year()-ym.Year)*12 + int(asOf.Month()) - int(ym.Month)
	if months < 0 {
		return 0
	}
	return months
}
