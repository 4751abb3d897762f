package usecase

import (
	"context"

	"github.com/felipecasali/iphoneshopping-sub000/internal/domain/entities"
	"github.com/felipecasali/iphoneshopping-sub000/internal/domain/pricing"
)

// IReportUseCase exposes the technical-report estimate. The report path is a
// separate formula from the market estimate (own base table, coefficients
// and ordering); see pricing.ReportEstimator.

type IReportUseCase interface {
	EstimateForReport(ctx context.Context, input entities.ValuationInput) (pricing.ReportQuote, error)
}

type ReportUseCase struct {
	estimator *pricing.ReportEstimator
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(estimator *pricing.ReportEstimator) *ReportUseCase {
	if estimator == nil {
		estimator = pricing.NewReportEstimator()
	}
	return &ReportUseCase{estimator: estimator}
}

// EstimateForReport is stateless: report values are recomputed on demand and
// only the document that embeds them is persisted, elsewhere.
func (u *ReportUseCase) EstimateForReport(_ context.Context, input entities.ValuationInput) (pricing.ReportQuote, error) {
	return u.estimator.Estimate(input)
}
