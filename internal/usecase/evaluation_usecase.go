package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/felipecasali/iphoneshopping-sub000/internal/domain/entities"
	"github.com/felipecasali/iphoneshopping-sub000/internal/domain/pricing"
	"github.com/felipecasali/iphoneshopping-sub000/internal/usecase/interfaces"
)

// EvaluationRetention is how long a stored evaluation record stays valid.
const EvaluationRetention = 90 * 24 * time.Hour

var (
	ErrEvaluationNotFound  = errors.New("evaluation not found")
	ErrInvalidEvaluationID = errors.New("invalid evaluation id")
)

// IEvaluationUseCase exposes the valuation operations consumed by the HTTP
// layer.
//
//   - Evaluate prices a validated questionnaire and persists the
//     input/outcome pair as an evaluation record (90-day retention)
//   - GetByID fetches a previously stored record

type IEvaluationUseCase interface {
	Evaluate(ctx context.Context, input entities.ValuationInput) (entities.Evaluation, error)
	GetByID(ctx context.Context, id string) (entities.Evaluation, error)
}

type EvaluationUseCase struct {
	repo    interfaces.IEvaluationRepository
	catalog interfaces.IDeviceCatalog
	calc    *pricing.Calculator
	nowFn   func() time.Time
	logger  zerolog.Logger
}

var _ IEvaluationUseCase = (*EvaluationUseCase)(nil)

// NewEvaluationUseCase wires the engine to its collaborators. nowFn supplies
// the pricing as-of instant; pass nil to use the wall clock. Tests inject a
// fixed clock to keep estimates reproducible.
func NewEvaluationUseCase(repo interfaces.IEvaluationRepository, catalog interfaces.IDeviceCatalog, calc *pricing.Calculator, nowFn func() time.Time) *EvaluationUseCase {
	if calc == nil {
		calc = pricing.NewCalculator(nil)
	}
	if nowFn == nil {
		nowFn = time.Now
	}
	return &EvaluationUseCase{
		repo:    repo,
		catalog: catalog,
		calc:    calc,
		nowFn:   nowFn,
		logger:  log.With().Str("component", "evaluation_usecase").Logger(),
	}
}

func (u *EvaluationUseCase) Evaluate(ctx context.Context, input entities.ValuationInput) (entities.Evaluation, error) {
	entry, err := u.catalog.Lookup(input.DeviceType, input.Model)
	if err != nil {
		return entities.Evaluation{}, err
	}

	asOf := u.nowFn().UTC()
	quote, err := u.calc.Estimate(input, entry, asOf)
	if err != nil {
		return entities.Evaluation{}, err
	}

	if quote.Blocked {
		u.logger.Info().
			Str("model", entry.Model).
			Str("reason", string(quote.BlockReason)).
			Msg("evaluation blocked by compliance gate")
	}

	e := entities.Evaluation{
		ID:          uuid.NewString(),
		Input:       input,
		Device:      entry,
		Amount:      quote.Amount,
		Range:       quote.Range,
		Blocked:     quote.Blocked,
		BlockReason: string(quote.BlockReason),
		CreatedAt:   asOf,
		ExpiresAt:   asOf.Add(EvaluationRetention),
	}
	return u.repo.Create(ctx, e)
}

func (u *EvaluationUseCase) GetByID(ctx context.Context, id string) (entities.Evaluation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Evaluation{}, ErrInvalidEvaluationID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Evaluation{}, err
	}
	if e.ID == "" {
		return entities.Evaluation{}, ErrEvaluationNotFound
	}
	// DynamoDB TTL deletion is lazy, so an expired record can still come
	// back from the table. Treat it as gone.
	if !u.nowFn().UTC().Before(e.ExpiresAt) {
		return entities.Evaluation{}, ErrEvaluationNotFound
	}
	return e, nil
}
