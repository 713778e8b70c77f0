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

const DefaultOrganizationsTableName = "organizations"

type organizationItem struct {
	ID                 string `dynamodbav:"id"`
	Name               string `dynamodbav:"name"`
	GeminiAPIKey       string `dynamodbav:"gemini_api_key,omitempty"`
	ManagerPhoneNumber string `dynamodbav:"manager_phone_number,omitempty"`
	CreatedAt          string `dynamodbav:"created_at,omitempty"`
}

// OrganizationDynamoRepository persists organizations and their settings.
//
// Table requirements:
//   - PK: id (string)
type OrganizationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOrganizationRepository = (*OrganizationDynamoRepository)(nil)

func NewOrganizationDynamoRepository(ddb DynamoAPI, tableName string) *OrganizationDynamoRepository {
	if tableName == "" {
		tableName = DefaultOrganizationsTableName
	}
	return &OrganizationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrganizationDynamoRepository) Create(ctx context.Context, org entities.Organization) (entities.Organization, error) {
	av, err := attributevalue.MarshalMap(toOrganizationItem(org))
	if err != nil {
		return entities.Organization{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if isConditionFailed(err) {
		return entities.Organization{}, ErrDuplicateID
	}
	if err != nil {
		return entities.Organization{}, err
	}
	return org, nil
}

func (r *OrganizationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Organization, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Organization{}, err
	}
	if len(out.Item) == 0 {
		return entities.Organization{}, nil
	}
	var it organizationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Organization{}, err
	}
	return fromOrganizationItem(it), nil
}

// List scans the whole table; the reminder job is its only caller.
func (r *OrganizationDynamoRepository) List(ctx context.Context) ([]entities.Organization, error) {
	var orgs []entities.Organization
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it organizationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orgs = append(orgs, fromOrganizationItem(it))
		}
	}
	sort.Slice(orgs, func(i, j int) bool { return orgs[i].ID < orgs[j].ID })
	return orgs, nil
}

func (r *OrganizationDynamoRepository) UpdateSettings(ctx context.Context, id string, settings entities.OrganizationSettings) (entities.Organization, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", id),
		UpdateExpression:    aws.String("SET gemini_api_key = :key, manager_phone_number = :phone"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":key":   &types.AttributeValueMemberS{Value: settings.GeminiAPIKey},
			":phone": &types.AttributeValueMemberS{Value: settings.ManagerPhoneNumber},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if isConditionFailed(err) {
		return entities.Organization{}, nil
	}
	if err != nil {
		return entities.Organization{}, err
	}
	var it organizationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Organization{}, err
	}
	return fromOrganizationItem(it), nil
}

func toOrganizationItem(o entities.Organization) organizationItem {
	return organizationItem{
		ID:                 o.ID,
		Name:               o.Name,
		GeminiAPIKey:       o.Settings.GeminiAPIKey,
		ManagerPhoneNumber: o.Settings.ManagerPhoneNumber,
		CreatedAt:          o.CreatedAt,
	}
}

func fromOrganizationItem(it organizationItem) entities.Organization {
	return entities.Organization{
		ID:   it.ID,
		Name: it.Name,
		Settings: entities.OrganizationSettings{
			GeminiAPIKey:       it.GeminiAPIKey,
			ManagerPhoneNumber: it.ManagerPhoneNumber,
		},
		CreatedAt: it.CreatedAt,
	}
}
