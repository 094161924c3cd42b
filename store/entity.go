package store

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// PK represents a DynamoDB primary key.
type PK map[string]types.AttributeValue

// Key returns the primary key of the item with the given id.
func Key(id string) PK {
	return PK{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// Item is the single entity kept in the table.
type Item struct {
	// ID is the caller-supplied identifier. It never changes after creation.
	ID string `json:"id" dynamodbav:"id"`

	// Name is required on create and replace.
	Name string `json:"name" dynamodbav:"name"`

	// Price is required on create and replace.
	Price Price `json:"price" dynamodbav:"price"`
}

// Patch describes a partial update. Nil fields are left untouched.
type Patch struct {
	Name  *string
	Price *Price
}

// IsEmpty reports whether the patch sets no fields.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil
}
