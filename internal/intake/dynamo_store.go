package intake

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type dynamoAPI interface {
	PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(context.Context, *dynamodb.GetItemInput, ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// dynamoRecord wraps Record with the table key and a TTL attribute.
type dynamoRecord struct {
	Identity  string `dynamodbav:"identity"`
	Record    Record `dynamodbav:"record"`
	ExpiresAt int64  `dynamodbav:"expiresAt,omitempty"`
}

// DynamoStore persists conversation records to a DynamoDB table keyed by
// identity, with a TTL attribute for expiry.
type DynamoStore struct {
	api   dynamoAPI
	table string
	ttl   time.Duration
}

func NewDynamoStore(api dynamoAPI, table string, ttl time.Duration) (*DynamoStore, error) {
	if api == nil {
		return nil, errors.New("intake: dynamodb client cannot be nil")
	}
	if table == "" {
		return nil, errors.New("intake: dynamodb table name required")
	}
	return &DynamoStore{api: api, table: table, ttl: ttl}, nil
}

func (s *DynamoStore) GetOrCreate(ctx context.Context, identity string) (*Record, error) {
	if identity == "" {
		return nil, errors.New("intake: identity required")
	}

	out, err := s.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"identity": &types.AttributeValueMemberS{Value: identity},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("intake: load record for %s: %w", identity, err)
	}
	if out.Item == nil {
		return NewRecord(identity), nil
	}

	var item dynamoRecord
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("intake: decode record for %s: %w", identity, err)
	}
	return &item.Record, nil
}

func (s *DynamoStore) Save(ctx context.Context, rec *Record) error {
	if rec == nil || rec.Identity == "" {
		return errors.New("intake: record with identity required")
	}

	wrapped := dynamoRecord{Identity: rec.Identity, Record: *rec}
	if s.ttl > 0 {
		wrapped.ExpiresAt = time.Now().Add(s.ttl).Unix()
	}

	item, err := attributevalue.MarshalMap(wrapped)
	if err != nil {
		return fmt.Errorf("intake: marshal record: %w", err)
	}

	if _, err := s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("intake: save record for %s: %w", rec.Identity, err)
	}
	return nil
}
