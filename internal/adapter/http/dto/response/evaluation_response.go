package response

import (
	"time"

	"github.com/felipecasali/iphoneshopping-sub000/internal/domain/entities"
	"github.com/felipecasali/iphoneshopping-sub000/internal/domain/pricing"
)

type PriceRangeResponse struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

type DeviceResponse struct {
	Model     string `json:"model"`
	Type      string `json:"type"`
	BasePrice int64  `json:"basePrice"`
}

// EvaluationResponse is the stored-evaluation view returned on creation and
// lookup. Blocked evaluations carry a zero price plus the violated
// precondition so the frontend can explain the zero instead of showing a
// bare R$0.
type EvaluationResponse struct {
	ID             string             `json:"id"`
	EstimatedPrice int64              `json:"estimatedPrice"`
	PriceRange     PriceRangeResponse `json:"priceRange"`
	Device         DeviceResponse     `json:"device"`
	Blocked        bool               `json:"blocked"`
	BlockReason    string             `json:"blockReason,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	ExpiresAt      time.Time          `json:"expiresAt"`
}

func FromEvaluation(e entities.Evaluation) EvaluationResponse {
	return EvaluationResponse{
		ID:             e.ID,
		EstimatedPrice: e.Amount,
		PriceRange:     PriceRangeResponse{Min: e.Range.Min, Max: e.Range.Max},
		Device: DeviceResponse{
			Model:     e.Device.Model,
			Type:      string(e.Device.Type),
			BasePrice: e.Device.BasePrice,
		},
		Blocked:     e.Blocked,
		BlockReason: e.BlockReason,
		CreatedAt:   e.CreatedAt,
		ExpiresAt:   e.ExpiresAt,
	}
}

// ReportEstimateResponse is the technical-report price view.
type ReportEstimateResponse struct {
	ReportPrice  int64              `json:"reportPrice"`
	PriceRange   PriceRangeResponse `json:"priceRange"`
	MatchedModel string             `json:"matchedModel"`
}

func FromReportQuote(q pricing.ReportQuote) ReportEstimateResponse {
	return ReportEstimateResponse{
		ReportPrice:  q.Amount,
		PriceRange:   PriceRangeResponse{Min: q.Range.Min, Max: q.Range.Max},
		MatchedModel: q.MatchedModel,
	}
}
