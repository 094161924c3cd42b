// Package dynamotest provides an in-memory stand-in for the DynamoDB API used
// by the store package. It understands single-table items keyed by "id" and
// the SET update expressions produced by the expression builder.
package dynamotest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Client is an in-memory DynamoDB table.
type Client struct {
	// PageSize limits the number of items per Scan page (0 = no limit).
	PageSize int

	// Err, when set, is returned by every call.
	Err error

	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
	calls map[string]int
}

// NewClient creates an empty table.
func NewClient() *Client {
	return &Client{
		items: make(map[string]map[string]types.AttributeValue),
		calls: make(map[string]int),
	}
}

// Calls returns how many times the named operation (e.g. "PutItem") was invoked.
func (c *Client) Calls(op string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[op]
}

// TotalCalls returns the number of operations invoked so far.
func (c *Client) TotalCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, n := range c.calls {
		total += n
	}
	return total
}

// Len returns the number of stored items.
func (c *Client) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Raw returns a copy of the stored attributes for id, or nil.
func (c *Client) Raw(id string) map[string]types.AttributeValue {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[id]
	if !ok {
		return nil
	}
	return copyItem(item)
}

func (c *Client) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.record("GetItem"); err != nil {
		return nil, err
	}

	id, err := keyID(params.Key)
	if err != nil {
		return nil, err
	}
	out := &dynamodb.GetItemOutput{}
	if item, ok := c.items[id]; ok {
		out.Item = copyItem(item)
	}
	return out, nil
}

func (c *Client) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.record("PutItem"); err != nil {
		return nil, err
	}

	id, err := keyID(params.Item)
	if err != nil {
		return nil, err
	}
	c.items[id] = copyItem(params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (c *Client) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.record("Scan"); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	start := 0
	if params.ExclusiveStartKey != nil {
		after, err := keyID(params.ExclusiveStartKey)
		if err != nil {
			return nil, err
		}
		start = sort.SearchStrings(ids, after)
		if start < len(ids) && ids[start] == after {
			start++
		}
	}
	end := len(ids)
	if c.PageSize > 0 && start+c.PageSize < end {
		end = start + c.PageSize
	}

	out := &dynamodb.ScanOutput{}
	for _, id := range ids[start:end] {
		out.Items = append(out.Items, copyItem(c.items[id]))
	}
	out.Count = int32(len(out.Items))
	out.ScannedCount = out.Count
	if end < len(ids) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: ids[end-1]},
		}
	}
	return out, nil
}

func (c *Client) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.record("UpdateItem"); err != nil {
		return nil, err
	}

	id, err := keyID(params.Key)
	if err != nil {
		return nil, err
	}
	item, exists := c.items[id]
	if params.ConditionExpression != nil && strings.Contains(*params.ConditionExpression, "attribute_exists") && !exists {
		return nil, &types.ConditionalCheckFailedException{
			Message: aws.String("The conditional request failed"),
		}
	}

	assignments, err := parseSet(aws.ToString(params.UpdateExpression), params.ExpressionAttributeNames, params.ExpressionAttributeValues)
	if err != nil {
		return nil, err
	}
	if !exists {
		item = copyItem(params.Key)
	} else {
		item = copyItem(item)
	}
	for name, value := range assignments {
		item[name] = value
	}
	c.items[id] = item
	return &dynamodb.UpdateItemOutput{}, nil
}

func (c *Client) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.record("DeleteItem"); err != nil {
		return nil, err
	}

	id, err := keyID(params.Key)
	if err != nil {
		return nil, err
	}
	delete(c.items, id)
	return &dynamodb.DeleteItemOutput{}, nil
}

// record counts the call; c.mu must be held.
func (c *Client) record(op string) error {
	c.calls[op]++
	return c.Err
}

// parseSet evaluates an expression of the form "SET #0 = :0, #1 = :1".
func parseSet(expr string, names map[string]string, values map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	expr = strings.TrimSpace(expr)
	if !strings.HasPrefix(expr, "SET ") {
		return nil, fmt.Errorf("dynamotest: unsupported update expression %q", expr)
	}

	result := make(map[string]types.AttributeValue)
	for _, clause := range strings.Split(strings.TrimPrefix(expr, "SET "), ",") {
		lhs, rhs, ok := strings.Cut(clause, "=")
		if !ok {
			return nil, fmt.Errorf("dynamotest: malformed clause %q", clause)
		}
		lhs, rhs = strings.TrimSpace(lhs), strings.TrimSpace(rhs)

		name := lhs
		if n, ok := names[lhs]; ok {
			name = n
		}
		value, ok := values[rhs]
		if !ok {
			return nil, fmt.Errorf("dynamotest: unbound value %q", rhs)
		}
		result[name] = value
	}
	return result, nil
}

func keyID(key map[string]types.AttributeValue) (string, error) {
	v, ok := key["id"].(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("dynamotest: missing string key attribute \"id\"")
	}
	return v.Value, nil
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}
