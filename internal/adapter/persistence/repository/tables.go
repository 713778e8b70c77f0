package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type TableCreator interface {
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

type TableNames struct {
	Records       string
	Organizations string
	Users         string
	Identities    string
}

// CreateTables bootstraps every table the service needs. Tables that already
// exist are left alone, so the command can be rerun against local DynamoDB.
func CreateTables(ctx context.Context, ddb TableCreator, names TableNames) ([]string, error) {
	var created []string
	for _, in := range tableDefinitions(names) {
		_, err := ddb.CreateTable(ctx, in)
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			continue
		}
		if err != nil {
			return created, fmt.Errorf("create table %s: %w", aws.ToString(in.TableName), err)
		}
		created = append(created, aws.ToString(in.TableName))
	}
	return created, nil
}

func tableDefinitions(names TableNames) []*dynamodb.CreateTableInput {
	str := types.ScalarAttributeTypeS
	return []*dynamodb.CreateTableInput{
		{
			TableName: aws.String(orDefault(names.Records, DefaultRecordsTableName)),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String(attrPK), AttributeType: str},
				{AttributeName: aws.String("id"), AttributeType: str},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(attrPK), KeyType: types.KeyTypeHash},
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeRange},
			},
			BillingMode: types.BillingModePayPerRequest,
		},
		{
			TableName: aws.String(orDefault(names.Organizations, DefaultOrganizationsTableName)),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: str},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			BillingMode: types.BillingModePayPerRequest,
		},
		{
			TableName: aws.String(orDefault(names.Users, DefaultUsersTableName)),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("uid"), AttributeType: str},
				{AttributeName: aws.String("org_id"), AttributeType: str},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("uid"), KeyType: types.KeyTypeHash},
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				{
					IndexName: aws.String(usersOrgIDIndex),
					KeySchema: []types.KeySchemaElement{
						{AttributeName: aws.String("org_id"), KeyType: types.KeyTypeHash},
					},
					Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
				},
			},
			BillingMode: types.BillingModePayPerRequest,
		},
		{
			TableName: aws.String(orDefault(names.Identities, DefaultIdentitiesTableName)),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("email"), AttributeType: str},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("email"), KeyType: types.KeyTypeHash},
			},
			BillingMode: types.BillingModePayPerRequest,
		},
	}
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
