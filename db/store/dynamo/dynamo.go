package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
	"github.com/richcrm/richcrm/db/store"
	"github.com/richcrm/richcrm/pkg/env"
)

// Store implements store.Store on top of DynamoDB. Records are
// marshalled with attributevalue using the dynamodbav tags on the
// model structs.
type Store struct {
	client *dynamodb.Client
	prefix string
}

// New builds a DynamoDB-backed store from the environment. When
// DynamoEndpoint is set (local development), the client talks to
// that endpoint instead of AWS.
func New() (*Store, error) {
	vars := env.Variables()

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(vars.AWSRegion),
	}

	if vars.AWSAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				vars.AWSAccessKeyID,
				vars.AWSSecretAccessKey,
				"",
			),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if vars.DynamoEndpoint != "" {
			o.BaseEndpoint = aws.String(vars.DynamoEndpoint)
		}
	})

	return &Store{client: client, prefix: vars.TablePrefix}, nil
}

func (s *Store) table(name string) *string {
	return aws.String(s.prefix + name)
}

func (s *Store) Get(ctx context.Context, table string, key map[string]interface{}, out interface{}) error {
	k, err := attributevalue.MarshalMap(key)
	if err != nil {
		return errors.Wrap(err, "failed to marshal key")
	}

	resp, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: s.table(table),
		Key:       k,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to get item from %v", table)
	}

	if len(resp.Item) == 0 {
		return store.ErrNotFound
	}

	return errors.Wrap(
		attributevalue.UnmarshalMap(resp.Item, out),
		"failed to unmarshal item",
	)
}

func (s *Store) Scan(ctx context.Context, table string, filter map[string]interface{}, out interface{}) error {
	input := &dynamodb.ScanInput{TableName: s.table(table)}

	if len(filter) > 0 {
		var cond expression.ConditionBuilder

		first := true
		for name, value := range filter {
			eq := expression.Name(name).Equal(expression.Value(value))
			if first {
				cond, first = eq, false
			} else {
				cond = cond.And(eq)
			}
		}

		expr, err := expression.NewBuilder().WithFilter(cond).Build()
		if err != nil {
			return errors.Wrap(err, "failed to build filter expression")
		}

		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	items := []map[string]types.AttributeValue{}

	paginator := dynamodb.NewScanPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return errors.Wrapf(err, "failed to scan %v", table)
		}
		items = append(items, page.Items...)
	}

	return errors.Wrap(
		attributevalue.UnmarshalListOfMaps(items, out),
		"failed to unmarshal items",
	)
}

func (s *Store) Put(ctx context.Context, table string, item interface{}) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return errors.Wrap(err, "failed to marshal item")
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: s.table(table),
		Item:      av,
	})

	return errors.Wrapf(err, "failed to put item into %v", table)
}

func (s *Store) Update(ctx context.Context, table string, key map[string]interface{}, set map[string]interface{}) error {
	if len(set) == 0 {
		return nil
	}

	k, err := attributevalue.MarshalMap(key)
	if err != nil {
		return errors.Wrap(err, "failed to marshal key")
	}

	upd := expression.UpdateBuilder{}
	for name, value := range set {
		upd = upd.Set(expression.Name(name), expression.Value(value))
	}

	expr, err := expression.NewBuilder().WithUpdate(upd).Build()
	if err != nil {
		return errors.Wrap(err, "failed to build update expression")
	}

	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 s.table(table),
		Key:                       k,
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})

	return errors.Wrapf(err, "failed to update item in %v", table)
}

func (s *Store) Delete(ctx context.Context, table string, key map[string]interface{}) error {
	k, err := attributevalue.MarshalMap(key)
	if err != nil {
		return errors.Wrap(err, "failed to marshal key")
	}

	_, err = s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: s.table(table),
		Key:       k,
	})

	return errors.Wrapf(err, "failed to delete item from %v", table)
}
