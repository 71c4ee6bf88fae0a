package database

import (
	"context"
	"log"

	"invoicer/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// NewDynamoDBClient builds the client backing the DynamoDB blob store.
//
// Local DynamoDB does not validate credentials, but the SDK requires them, so
// static credentials from the config are always set. DynamoDBEndpoint, when
// present, overrides the regional endpoint (e.g. http://dynamodb:8000).
func NewDynamoDBClient(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	}), nil
}

func NewAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(creds),
	)
	if err != nil {
		log.Printf("[database][dynamodb] load config failed region=%s err=%v", cfg.AWSRegion, err)
		return aws.Config{}, err
	}
	log.Printf("[database][dynamodb] config loaded region=%s endpoint=%q", cfg.AWSRegion, cfg.DynamoDBEndpoint)
	return awsCfg, nil
}
