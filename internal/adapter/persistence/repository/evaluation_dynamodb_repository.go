package repository

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/felipecasali/iphoneshopping-sub000/internal/domain/entities"
	"github.com/felipecasali/iphoneshopping-sub000/internal/usecase/interfaces"
)

const defaultEvaluationsTableName = "evaluations"

type evaluationItem struct {
	ID          string `dynamodbav:"id"`
	InputJSON   string `dynamodbav:"input"`
	DeviceJSON  string `dynamodbav:"device"`
	Amount      int64  `dynamodbav:"amount"`
	RangeMin    int64  `dynamodbav:"range_min"`
	RangeMax    int64  `dynamodbav:"range_max"`
	Blocked     bool   `dynamodbav:"blocked"`
	BlockReason string `dynamodbav:"block_reason,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	// Epoch seconds; the table's TTL attribute. DynamoDB removes the record
	// after the 90-day retention window.
	ExpiresAt int64 `dynamodbav:"expires_at"`
}

// EvaluationDynamoRepository persists evaluation records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL enabled on expires_at (number, epoch seconds)

type EvaluationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEvaluationRepository = (*EvaluationDynamoRepository)(nil)

func NewEvaluationDynamoRepository(ddb *dynamodb.Client) *EvaluationDynamoRepository {
	return &EvaluationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EVALUATIONS_TABLE", defaultEvaluationsTableName),
	}
}

func (r *EvaluationDynamoRepository) Create(ctx context.Context, e entities.Evaluation) (entities.Evaluation, error) {
	it, err := toEvaluationItem(e)
	if err != nil {
		return entities.Evaluation{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Evaluation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Evaluation{}, err
	}
	return e, nil
}

func (r *EvaluationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Evaluation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Evaluation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Evaluation{}, nil
	}

	var it evaluationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Evaluation{}, err
	}
	return fromEvaluationItem(it)
}

func toEvaluationItem(e entities.Evaluation) (evaluationItem, error) {
	inputJSON, err := json.Marshal(e.Input)
	if err != nil {
		return evaluationItem{}, err
	}
	deviceJSON, err := json.Marshal(e.Device)
	if err != nil {
		return evaluationItem{}, err
	}
	return evaluationItem{
		ID:          e.ID,
		InputJSON:   string(inputJSON),
		DeviceJSON:  string(deviceJSON),
		Amount:      e.Amount,
		RangeMin:    e.Range.Min,
		RangeMax:    e.Range.Max,
		Blocked:     e.Blocked,
		BlockReason: e.BlockReason,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt:   e.ExpiresAt.UTC().Unix(),
	}, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fromEvaluationItem(it evaluationItem) (entities.Evaluation, error) {
	var input entities.ValuationInput
	if err := json.Unmarshal([]byte(it.InputJSON), &input); err != nil {
		return entities.Evaluation{}, err
	}
	var device entities.DeviceCatalogEntry
	if err := json.Unmarshal([]byte(it.DeviceJSON), &device); err != nil {
		return entities.Evaluation{}, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
	if err != nil {
		return entities.Evaluation{}, err
	}
	return entities.Evaluation{
		ID:          it.ID,
		Input:       input,
		Device:      device,
		Amount:      it.Amount,
		Range:       entities.PriceRange{Min: it.RangeMin, Max: it.RangeMax},
		Blocked:     it.Blocked,
		BlockReason: it.BlockReason,
		CreatedAt:   createdAt,
		ExpiresAt:   time.Unix(it.ExpiresAt, 0).UTC(),
	}, nil
}
