package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps items keyed by a single string hash key and answers
// equality queries on one attribute.
type fakeDynamo struct {
	mu      sync.Mutex
	hashKey string
	items   map[string]map[string]types.AttributeValue
	err     error

	lastQuery *dynamodb.QueryInput
}

func newFakeDynamo(hashKey string) *fakeDynamo {
	return &fakeDynamo{hashKey: hashKey, items: map[string]map[string]types.AttributeValue{}}
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if s, ok := item[name].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	key := stringAttr(in.Item, f.hashKey)
	if _, exists := f.items[key]; exists && in.ConditionExpression != nil {
		return nil, &types.ConditionalCheckFailedException{Message: strPtr("exists")}
	}
	f.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[stringAttr(in.Key, f.hashKey)]}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastQuery = in
	if f.err != nil {
		return nil, f.err
	}
	want := stringAttr(in.ExpressionAttributeValues, ":bid")
	if want == "" {
		return nil, errors.New("missing :bid")
	}
	out := &dynamodb.QueryOutput{}
	for _, it := range f.items {
		if stringAttr(it, "booking_id") == want {
			out.Items = append(out.Items, it)
		}
	}
	return out, nil
}

func strPtr(s string) *string { return &s }
