package request

import (
	"errors"
	"fmt"
	"strings"

	"github.com/felipecasali/iphoneshopping-sub000/internal/domain/entities"
)

var (
	ErrInvalidModel         = errors.New("invalid model")
	ErrInvalidStorageValue  = errors.New("invalid storage value")
	ErrInvalidBatteryHealth = errors.New("battery health out of range")
)

// EvaluationRequest is the questionnaire payload posted by the listing flow.
// Field names follow the marketplace frontend contract (camelCase).
type EvaluationRequest struct {
	Type      string `json:"type" binding:"required"`
	Model     string `json:"model" binding:"required"`
	Storage   int    `json:"storage" binding:"required"`
	Condition string `json:"condition" binding:"required"`

	// Optional "YYYY-MM"; empty skips the depreciation stage.
	PurchaseDate string `json:"purchaseDate"`

	HasBox          bool `json:"hasBox"`
	HasCharger      bool `json:"hasCharger"`
	HasCable        bool `json:"hasCable"`
	HasStylus       bool `json:"hasStylus"`
	HasKeyboardCase bool `json:"hasKeyboardCase"`
	HasInvoice      bool `json:"hasInvoice"`
	HasWarranty     bool `json:"hasWarranty"`

	ICloudFree bool `json:"icloudFree"`
	IMEIClean  bool `json:"imeiClean"`

	BatteryHealthPercent *int `json:"batteryHealthPercent"`

	ScreenCondition     string `json:"screenCondition" binding:"required"`
	BodyCondition       string `json:"bodyCondition" binding:"required"`
	HasWaterDamage      bool   `json:"hasWaterDamage"`
	HasFunctionalIssues bool   `json:"hasFunctionalIssues"`
}

// ToValuationInput validates the payload and builds the immutable domain
// input. Unrecognized enum strings are rejected here, never defaulted.
func (r EvaluationRequest) ToValuationInput() (entities.ValuationInput, error) {
	deviceType, err := entities.ParseDeviceType(r.Type)
	if err != nil {
		return entities.ValuationInput{}, err
	}

	model := strings.TrimSpace(r.Model)
	if model == "" {
		return entities.ValuationInput{}, ErrInvalidModel
	}

	if r.Storage <= 0 {
		return entities.ValuationInput{}, fmt.Errorf("%w: %d", ErrInvalidStorageValue, r.Storage)
	}

	condition, err := entities.ParseCondition(r.Condition)
	if err != nil {
		return entities.ValuationInput{}, err
	}

	screen, err := entities.ParseScreenCondition(r.ScreenCondition)
	if err != nil {
		return entities.ValuationInput{}, err
	}

	body, err := entities.ParseBodyCondition(r.BodyCondition)
	if err != nil {
		return entities.ValuationInput{}, err
	}

	var purchaseDate *entities.YearMonth
	if strings.TrimSpace(r.PurchaseDate) != "" {
		ym, err := entities.ParseYearMonth(r.PurchaseDate)
		if err != nil {
			return entities.ValuationInput{}, err
		}
		purchaseDate = &ym
	}

	if r.BatteryHealthPercent != nil {
		if v := *r.BatteryHealthPercent; v < 0 || v > 100 {
			return entities.ValuationInput{}, fmt.Errorf("%w: %d", ErrInvalidBatteryHealth, v)
		}
	}

	return entities.ValuationInput{
		DeviceType:           deviceType,
		Model:                model,
		StorageGB:            r.Storage,
		Condition:            condition,
		PurchaseDate:         purchaseDate,
		HasBox:               r.HasBox,
		HasCharger:           r.HasCharger,
		HasCable:             r.HasCable,
		HasStylus:            r.HasStylus,
		HasKeyboardCase:      r.HasKeyboardCase,
		HasInvoice:           r.HasInvoice,
		HasWarranty:          r.HasWarranty,
		ICloudFree:           r.ICloudFree,
		IMEIClean:            r.IMEIClean,
		BatteryHealthPercent: r.BatteryHealthPercent,
		ScreenCondition:      screen,
		BodyCondition:        body,
		HasWaterDamage:       r.HasWaterDamage,
		HasFunctionalIssues:  r.HasFunctionalIssues,
	}, nil
}
