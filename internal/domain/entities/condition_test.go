package entities

import (
	"errors"
	"testing"
	"time"
)

func TestParseCondition(t *testing.T) {
	cases := []struct {
		raw  string
		want Condition
	}{
		{"new", ConditionNew},
		{"EXCELLENT", ConditionExcellent},
		{"very_good", ConditionVeryGood},
		{"very good", ConditionVeryGood},
		{"Very-Good", ConditionVeryGood},
		{"good", ConditionGood},
		{"fair", ConditionFair},
		{"defective", ConditionDefective},
	}
	for _, tc := range cases {
		got, err := ParseCondition(tc.raw)
		if err != nil {
			t.Fatalf("ParseCondition(%q): unexpected error: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseCondition(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}

	if _, err := ParseCondition("pristine"); !errors.Is(err, ErrInvalidCondition) {
		t.Fatalf("expected ErrInvalidCondition, got %v", err)
	}
	if _, err := ParseCondition(""); !errors.Is(err, ErrInvalidCondition) {
		t.Fatalf("expected ErrInvalidCondition for empty string, got %v", err)
	}
}

func TestParseScreenAndBodyCondition(t *testing.T) {
	if got, err := ParseScreenCondition("Light Marks"); err != nil || got != ScreenLightMarks {
		t.Fatalf("ParseScreenCondition: got %s, err %v", got, err)
	}
	if _, err := ParseScreenCondition("shattered"); !errors.Is(err, ErrInvalidScreenCondition) {
		t.Fatalf("expected ErrInvalidScreenCondition, got %v", err)
	}

	if got, err := ParseBodyCondition("dented"); err != nil || got != BodyDented {
		t.Fatalf("ParseBodyCondition: got %s, err %v", got, err)
	}
	// "cracked" is a screen tier, not a body tier.
	if _, err := ParseBodyCondition("cracked"); !errors.Is(err, ErrInvalidBodyCondition) {
		t.Fatalf("expected ErrInvalidBodyCondition, got %v", err)
	}
}

func TestParseYearMonth(t *testing.T) {
	ym, err := ParseYearMonth("2022-06")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ym.Year != 2022 || ym.Month != time.June {
		t.Fatalf("unexpected value: %+v", ym)
	}
	if ym.String() != "2022-06" {
		t.Fatalf("unexpected String(): %s", ym.String())
	}

	for _, raw := range []string{"2022", "06-2022", "2022-13", "abc"} {
		if _, err := ParseYearMonth(raw); !errors.Is(err, ErrInvalidYearMonth) {
			t.Fatalf("ParseYearMonth(%q): expected ErrInvalidYearMonth, got %v", raw, err)
		}
	}
}

func TestMonthsUntil(t *testing.T) {
	asOf := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		ym   YearMonth
		want int
	}{
		{YearMonth{Year: 2024, Month: time.June}, 0},
		{YearMonth{Year: 2024, Month: time.January}, 5},
		{YearMonth{Year: 2022, Month: time.June}, 24},
		{YearMonth{Year: 2023, Month: time.August}, 10},
		{YearMonth{Year: 2030, Month: time.January}, 0},
	}
	for _, tc := range cases {
		if got := tc.ym.MonthsUntil(asOf); got != tc.want {
			t.Fatalf("MonthsUntil(%s) = %d, want %d", tc.ym, got, tc.want)
		}
	}
}
