package blob

import (
	"context"
	"time"

	"invoicer/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultBlobTableName = "invoice_blobs"

// dynamoAPI is the subset of *dynamodb.Client used here.
type dynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type blobItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoBlobStore persists each storage key as one DynamoDB item.
//
// Table requirements:
//   - PK: key (string)
//
// DynamoDB caps items at 400KB, which bounds the collection size. That is
// acceptable for a single user's invoices.

type DynamoBlobStore struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IBlobStore = (*DynamoBlobStore)(nil)

func NewDynamoBlobStore(ddb dynamoAPI, tableName string) *DynamoBlobStore {
	if tableName == "" {
		tableName = DefaultBlobTableName
	}
	return &DynamoBlobStore{ddb: ddb, tableName: tableName}
}

func (s *DynamoBlobStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, err
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var it blobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, err
	}
	return []byte(it.Value), true, nil
}

func (s *DynamoBlobStore) Put(ctx context.Context, key string, value []byte) error {
	av, err := attributevalue.MarshalMap(blobItem{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}
