package interfaces

import (
	"context"

	"github.com/felipecasali/iphoneshopping-sub000/internal/domain/entities"
)

// IEvaluationRepository abstracts DynamoDB persistence for evaluation
// records.
//
// The valuation service must be able to:
//   - store the input/outcome pair of every priced questionnaire
//   - fetch a record by id while it has not expired (90-day retention,
//     enforced by a DynamoDB TTL attribute)

type IEvaluationRepository interface {
	Create(ctx context.Context, e entities.Evaluation) (entities.Evaluation, error)
	GetByID(ctx context.Context, id string) (entities.Evaluation, error)
}
