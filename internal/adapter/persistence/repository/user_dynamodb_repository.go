package repository

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"gestorpro/internal/domain/entities"
	"gestorpro/internal/usecase/interfaces"
)

const (
	DefaultUsersTableName = "users"
	usersOrgIDIndex       = "org_id-index"
)

type userItem struct {
	UID         string `dynamodbav:"uid"`
	Email       string `dynamodbav:"email"`
	Role        string `dynamodbav:"role"`
	OrgID       string `dynamodbav:"org_id"`
	DNI         string `dynamodbav:"dni,omitempty"`
	TenantDocID string `dynamodbav:"tenant_doc_id,omitempty"`
}

// UserDynamoRepository persists user profiles.
//
// Table requirements:
//   - PK: uid (string)
//   - GSI: org_id-index (PK: org_id)
type UserDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoAPI, tableName string) *UserDynamoRepository {
	if tableName == "" {
		tableName = DefaultUsersTableName
	}
	return &UserDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#uid)"),
		ExpressionAttributeNames: map[string]string{
			"#uid": "uid",
		},
	})
	if isConditionFailed(err) {
		return entities.User{}, ErrDuplicateID
	}
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, uid string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("uid", uid),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}
	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) ListByOrg(ctx context.Context, orgID string) ([]entities.User, error) {
	var users []entities.User
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usersOrgIDIndex),
		KeyConditionExpression: aws.String("org_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orgID},
		},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it userItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			users = append(users, fromUserItem(it))
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}

func (r *UserDynamoRepository) UpdateRole(ctx context.Context, uid string, role entities.Role) (entities.User, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("uid", uid),
		UpdateExpression:    aws.String("SET #role = :role"),
		ConditionExpression: aws.String("attribute_exists(#uid)"),
		ExpressionAttributeNames: map[string]string{
			"#uid":  "uid",
			"#role": "role",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":role": &types.AttributeValueMemberS{Value: string(role)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if isConditionFailed(err) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	var it userItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) Delete(ctx context.Context, uid string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey("uid", uid),
	})
	return err
}

func toUserItem(u entities.User) userItem {
	return userItem{
		UID:         u.UID,
		Email:       u.Email,
		Role:        string(u.Role),
		OrgID:       u.OrgID,
		DNI:         u.DNI,
		TenantDocID: u.TenantDocID,
	}
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		UID:         it.UID,
		Email:       it.Email,
		Role:        entities.Role(it.Role),
		OrgID:       it.OrgID,
		DNI:         it.DNI,
		TenantDocID: it.TenantDocID,
	}
}
