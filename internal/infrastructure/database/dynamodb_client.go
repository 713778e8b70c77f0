package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"gestorpro/internal/config"
)

// ConnectDynamoDB creates a DynamoDB client. A non-empty endpoint points the client at
// a local DynamoDB (e.g. http://dynamodb:8000).
func ConnectDynamoDB(ctx context.Context, awsCfg config.AWSConfig, ddbCfg config.DynamoDBConfig) (*dynamodb.Client, error) {
	cfg, err := NewAWSConfig(ctx, awsCfg)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if ddbCfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(ddbCfg.Endpoint)
		}
	}), nil
}

func NewAWSConfig(ctx context.Context, c config.AWSConfig) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey.Value(), "")

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(c.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}
