package repository

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"

	"gestorpro/internal/adapter/auth"
	"gestorpro/internal/usecase/interfaces"
)

const DefaultIdentitiesTableName = "identities"

type identityItem struct {
	Email        string `dynamodbav:"email"`
	UID          string `dynamodbav:"uid"`
	PasswordHash string `dynamodbav:"password_hash"`
}

// IdentityDynamoRepository is the credential store behind login. Provisioning an
// identity for somebody else never touches the caller's own session.
//
// Table requirements:
//   - PK: email (string, lowercased)
type IdentityDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IIdentityProvider = (*IdentityDynamoRepository)(nil)

func NewIdentityDynamoRepository(ddb DynamoAPI, tableName string) *IdentityDynamoRepository {
	if tableName == "" {
		tableName = DefaultIdentitiesTableName
	}
	return &IdentityDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *IdentityDynamoRepository) CreateIdentity(ctx context.Context, email, password string) (string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}
	it := identityItem{
		Email:        normalizeEmail(email),
		UID:          uuid.NewString(),
		PasswordHash: hash,
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return "", err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(email)"),
	})
	if isConditionFailed(err) {
		return "", interfaces.ErrEmailAlreadyInUse
	}
	if err != nil {
		return "", err
	}
	return it.UID, nil
}

func (r *IdentityDynamoRepository) Authenticate(ctx context.Context, email, password string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("email", normalizeEmail(email)),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", interfaces.ErrInvalidCredentials
	}
	var it identityItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	if err := auth.CheckPassword(it.PasswordHash, password); err != nil {
		return "", err
	}
	return it.UID, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
