package repository

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"gestorpro/internal/domain/entities"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase/interfaces"
)

const (
	DefaultRecordsTableName = "records"

	attrPK = "pk"
)

// RecordDynamoRepository persists every organization collection in one table.
//
// Table requirements:
//   - PK: pk (string) = "{orgId}#{collectionPath}"
//   - SK: id (string)
//
// Document fields are stored as top-level attributes next to the keys.
type RecordDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	logger    *zap.Logger
}

var _ interfaces.IRecordStore = (*RecordDynamoRepository)(nil)

func NewRecordDynamoRepository(ddb DynamoAPI, tableName string, logger *zap.Logger) *RecordDynamoRepository {
	if tableName == "" {
		tableName = DefaultRecordsTableName
	}
	return &RecordDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		logger:    logging.OrNop(logger).Named("records"),
	}
}

func partitionKey(orgID, collection string) string {
	return orgID + "#" + collection
}

func (r *RecordDynamoRepository) key(orgID, collection, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrPK:            &types.AttributeValueMemberS{Value: partitionKey(orgID, collection)},
		entities.FieldID: &types.AttributeValueMemberS{Value: id},
	}
}

func (r *RecordDynamoRepository) Create(ctx context.Context, orgID, collection string, doc entities.Document) (entities.Document, error) {
	item := doc.Clone()
	if item == nil {
		item = entities.Document{}
	}
	if item.ID() == "" {
		item[entities.FieldID] = uuid.NewString()
	}
	av, err := toRecordItem(orgID, collection, item)
	if err != nil {
		return nil, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": entities.FieldID,
		},
	})
	if isConditionFailed(err) {
		return nil, ErrDuplicateID
	}
	if err != nil {
		r.logger.Error("create failed", zap.String("org_id", orgID), zap.String("collection", collection), zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (r *RecordDynamoRepository) Get(ctx context.Context, orgID, collection, id string) (entities.Document, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            r.key(orgID, collection, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return fromRecordItem(out.Item)
}

// Update applies patch with a single SET expression; a missing record yields nil, nil.
func (r *RecordDynamoRepository) Update(ctx context.Context, orgID, collection, id string, patch entities.Document) (entities.Document, error) {
	fields := make(map[string]any, len(patch))
	for k, v := range patch {
		if k == attrPK || k == entities.FieldID {
			continue
		}
		fields[k] = v
	}
	if len(fields) == 0 {
		return r.Get(ctx, orgID, collection, id)
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	expr := newExpression()
	update, err := expr.set(fields, keys)
	if err != nil {
		return nil, err
	}
	cond := "attribute_exists(" + expr.name(attrPK) + ")"

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       r.key(orgID, collection, id),
		UpdateExpression:          aws.String(update),
		ConditionExpression:       aws.String(cond),
		ExpressionAttributeNames:  expr.names,
		ExpressionAttributeValues: expr.values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if isConditionFailed(err) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("update failed", zap.String("org_id", orgID), zap.String("collection", collection), zap.String("record_id", id), zap.Error(err))
		return nil, err
	}
	return fromRecordItem(out.Attributes)
}

func (r *RecordDynamoRepository) Delete(ctx context.Context, orgID, collection, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       r.key(orgID, collection, id),
	})
	return err
}

// List queries one partition. Filters run server side; ordering is applied after the read.
func (r *RecordDynamoRepository) List(ctx context.Context, orgID, collection string, q entities.Query) ([]entities.Document, error) {
	expr := newExpression()
	keyCond := expr.name(attrPK) + " = "
	pk, err := expr.value(partitionKey(orgID, collection))
	if err != nil {
		return nil, err
	}
	keyCond += pk
	filter, err := expr.filter(q)
	if err != nil {
		return nil, err
	}

	in := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    aws.String(keyCond),
		ExpressionAttributeNames:  expr.names,
		ExpressionAttributeValues: expr.values,
		ConsistentRead:            aws.Bool(true),
	}
	if filter != "" {
		in.FilterExpression = aws.String(filter)
	}

	var docs []entities.Document
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			d, err := fromRecordItem(raw)
			if err != nil {
				return nil, err
			}
			docs = append(docs, d)
		}
	}
	if docs == nil {
		docs = []entities.Document{}
	}
	q.Sort(docs)
	return docs, nil
}

func toRecordItem(orgID, collection string, doc entities.Document) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(map[string]any(doc))
	if err != nil {
		return nil, err
	}
	av[attrPK] = &types.AttributeValueMemberS{Value: partitionKey(orgID, collection)}
	return av, nil
}

func fromRecordItem(item map[string]types.AttributeValue) (entities.Document, error) {
	var m map[string]any
	if err := attributevalue.UnmarshalMap(item, &m); err != nil {
		return nil, err
	}
	delete(m, attrPK)
	return entities.Document(m), nil
}
