package entities

import "time"

// ValuationInput is the validated questionnaire for one evaluation request.
// It is built once from the HTTP payload, consumed by the price calculator
// and then discarded; nothing mutates it after construction.

type ValuationInput struct {
	DeviceType DeviceType `json:"device_type"`
	Model      string     `json:"model"`
	StorageGB  int        `json:"storage_gb"`
	Condition  Condition  `json:"condition"`

	// Nil means the seller skipped the purchase date and the depreciation
	// stage is not applied.
	PurchaseDate *YearMonth `json:"purchase_date,omitempty"`

	HasBox          bool `json:"has_box"`
	HasCharger      bool `json:"has_charger"`
	HasCable        bool `json:"has_cable"`
	HasStylus       bool `json:"has_stylus"`
	HasKeyboardCase bool `json:"has_keyboard_case"`
	HasInvoice      bool `json:"has_invoice"`
	HasWarranty     bool `json:"has_warranty"`

	// Both must be true for a nonzero price.
	ICloudFree bool `json:"icloud_free"`
	IMEIClean  bool `json:"imei_clean"`

	// Phones only; nil when the seller did not report it.
	BatteryHealthPercent *int `json:"battery_health_percent,omitempty"`

	ScreenCondition     ScreenCondition `json:"screen_condition"`
	BodyCondition       BodyCondition   `json:"body_condition"`
	HasWaterDamage      bool            `json:"has_water_damage"`
	HasFunctionalIssues bool            `json:"has_functional_issues"`
}

// PriceRange is the advertised negotiation band around an estimate,
// min = round(amount*0.9) and max = round(amount*1.1).

type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Evaluation is the persisted record of one valuation request and its
// outcome.
//
// Storage model (DynamoDB):
//   - PK: id
//   - TTL attribute: expires_at (evaluations are kept for 90 days)

type Evaluation struct {
	ID          string             `json:"id"`
	Input       ValuationInput     `json:"input"`
	Device      DeviceCatalogEntry `json:"device"`
	Amount      int64              `json:"amount"`
	Range       PriceRange         `json:"range"`
	Blocked     bool               `json:"blocked"`
	BlockReason string             `json:"block_reason,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	ExpiresAt   time.Time          `json:"expires_at"`
}
