package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"gestorpro/internal/domain/entities"
)

var ErrDuplicateID = errors.New("record id already exists")

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

func isConditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

func stringKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{name: &types.AttributeValueMemberS{Value: value}}
}

// expression accumulates placeholder names and values for one DynamoDB expression.
type expression struct {
	names  map[string]string
	values map[string]types.AttributeValue
}

func newExpression() *expression {
	return &expression{names: map[string]string{}, values: map[string]types.AttributeValue{}}
}

func (e *expression) name(field string) string {
	ph := fmt.Sprintf("#f%d", len(e.names))
	e.names[ph] = field
	return ph
}

func (e *expression) value(v any) (string, error) {
	av, err := attributevalue.Marshal(v)
	if err != nil {
		return "", err
	}
	ph := fmt.Sprintf(":v%d", len(e.values))
	e.values[ph] = av
	return ph, nil
}

// filter renders the AND of every query filter, or "" when there are none.
func (e *expression) filter(q entities.Query) (string, error) {
	clauses := make([]string, 0, len(q.Filters))
	for _, f := range q.Filters {
		switch f.Op {
		case entities.OpEq, entities.OpLt, entities.OpLte, entities.OpGt, entities.OpGte:
		default:
			return "", fmt.Errorf("unsupported filter operator %q", f.Op)
		}
		op := string(f.Op)
		if f.Op == entities.OpEq {
			op = "="
		}
		v, err := e.value(f.Value)
		if err != nil {
			return "", err
		}
		clauses = append(clauses, fmt.Sprintf("%s %s %s", e.name(f.Field), op, v))
	}
	return strings.Join(clauses, " AND "), nil
}

// set renders "SET #f0 = :v0, ..." for every key of patch, in key order.
func (e *expression) set(patch map[string]any, keys []string) (string, error) {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v, err := e.value(patch[k])
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf("%s = %s", e.name(k), v))
	}
	return "SET " + strings.Join(parts, ", "), nil
}
