package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"wedding_server/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

// KVStore is the key-value surface the domain services run on: one
// record per string key plus string-set attributes with atomic add.
// The only coordination primitives are PutItemIfAbsent and AddToSet;
// there are no multi-key transactions.
type KVStore interface {
	GetItem(ctx context.Context, key string, out interface{}) error
	PutItem(ctx context.Context, key string, item interface{}) error
	PutItemIfAbsent(ctx context.Context, key string, item interface{}) error
	AddToSet(ctx context.Context, key, field string, members ...string) error
	GetSet(ctx context.Context, key, field string) ([]string, error)
	GetSetMap(ctx context.Context, key string) (map[string][]string, error)
}

const partitionKey = "pk"

// DynamoService implements KVStore on a single DynamoDB table whose
// partition key is the record key.
type DynamoService struct {
	Client    *dynamodb.Client
	TableName string
}

// InitializeDynamoDBClient initializes the DynamoDB client
func InitializeDynamoDBClient() *dynamodb.Client {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load AWS config")
	}
	return dynamodb.NewFromConfig(cfg)
}

// GetItem retrieves the record stored under key and unmarshals it into
// out. Returns ErrItemNotFound when the key has no record.
func (ds *DynamoService) GetItem(ctx context.Context, key string, out interface{}) error {
	output, err := ds.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &ds.TableName,
		Key:       ds.keyAttr(key),
	})
	if err != nil {
		return fmt.Errorf("failed to get %q: %w", key, err)
	}
	if output.Item == nil {
		return ErrItemNotFound
	}
	if err := attributevalue.UnmarshalMap(output.Item, out); err != nil {
		return fmt.Errorf("failed to unmarshal %q: %w", key, err)
	}
	return nil
}

// PutItem writes item under key, replacing any existing record
func (ds *DynamoService) PutItem(ctx context.Context, key string, item interface{}) error {
	marshaled, err := ds.marshalWithKey(key, item)
	if err != nil {
		return err
	}
	_, err = ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &ds.TableName,
		Item:      marshaled,
	})
	if err != nil {
		return fmt.Errorf("failed to put %q: %w", key, err)
	}
	return nil
}

// PutItemIfAbsent writes item under key only if the key has no record
// yet. This is the store's atomic set-if-not-exists: when the key
// already exists nothing is written and ErrConditionFailed is returned.
func (ds *DynamoService) PutItemIfAbsent(ctx context.Context, key string, item interface{}) error {
	marshaled, err := ds.marshalWithKey(key, item)
	if err != nil {
		return err
	}
	_, err = ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &ds.TableName,
		Item:                marshaled,
		ConditionExpression: aws.String("attribute_not_exists(" + partitionKey + ")"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrConditionFailed
		}
		return fmt.Errorf("failed to conditionally put %q: %w", key, err)
	}
	return nil
}

// AddToSet atomically adds members to the string-set attribute field of
// the record under key, creating the record and the attribute as
// needed. Concurrent adds to the same set never lose each other.
func (ds *DynamoService) AddToSet(ctx context.Context, key, field string, members ...string) error {
	if len(members) == 0 {
		return nil
	}
	_, err := ds.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        &ds.TableName,
		Key:              ds.keyAttr(key),
		UpdateExpression: aws.String("ADD #f :members"),
		ExpressionAttributeNames: map[string]string{
			"#f": field,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":members": &types.AttributeValueMemberSS{Value: members},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to add to set %q of %q: %w", field, key, err)
	}
	return nil
}

// GetSet returns the members of the string-set attribute field of the
// record under key. A missing record or attribute is an empty set, not
// an error.
func (ds *DynamoService) GetSet(ctx context.Context, key, field string) ([]string, error) {
	output, err := ds.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &ds.TableName,
		Key:       ds.keyAttr(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get set %q: %w", key, err)
	}
	if output.Item == nil {
		return []string{}, nil
	}
	return utils.ExtractStringSet(output.Item, field), nil
}

// GetSetMap returns every string-set attribute of the record under key,
// keyed by attribute name. Used for the per-room booked-dates record.
func (ds *DynamoService) GetSetMap(ctx context.Context, key string) (map[string][]string, error) {
	output, err := ds.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &ds.TableName,
		Key:       ds.keyAttr(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %q: %w", key, err)
	}
	result := map[string][]string{}
	for name, attr := range output.Item {
		if name == partitionKey {
			continue
		}
		if set, ok := attr.(*types.AttributeValueMemberSS); ok {
			result[name] = set.Value
		}
	}
	return result, nil
}

// DeleteItem removes the record under key
func (ds *DynamoService) DeleteItem(ctx context.Context, key string) error {
	_, err := ds.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &ds.TableName,
		Key:       ds.keyAttr(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

func (ds *DynamoService) keyAttr(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		partitionKey: &types.AttributeValueMemberS{Value: key},
	}
}

func (ds *DynamoService) marshalWithKey(key string, item interface{}) (map[string]types.AttributeValue, error) {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %q: %w", key, err)
	}
	marshaled[partitionKey] = &types.AttributeValueMemberS{Value: key}
	return marshaled, nil
}
