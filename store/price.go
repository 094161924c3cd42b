package store

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// DynamoDB number limits: 38 significant digits, magnitudes from 1e-130
// up to (but excluding) 1e126.
const (
	maxPriceDigits   = 38
	minPriceExponent = -130
	maxPriceExponent = 125
)

// Price is an exact decimal amount.
// It encodes as a bare JSON number and as a DynamoDB number attribute, so
// values like 9.99 survive the round trip without float rounding.
type Price struct {
	decimal.Decimal
}

// NewPrice wraps a decimal value.
func NewPrice(d decimal.Decimal) Price {
	return Price{Decimal: d}
}

// ParsePrice parses a decimal string such as "12.50".
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("parse price %q: %w", s, err)
	}
	d, err = storable(d)
	if err != nil {
		return Price{}, err
	}
	return Price{Decimal: d}, nil
}

// MarshalJSON writes the price as an unquoted JSON number.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string.
func (p *Price) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	d, err := storable(d)
	if err != nil {
		return err
	}
	p.Decimal = d
	return nil
}

// MarshalDynamoDBAttributeValue implements attributevalue.Marshaler.
func (p Price) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: p.Decimal.String()}, nil
}

// UnmarshalDynamoDBAttributeValue implements attributevalue.Unmarshaler.
func (p *Price) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	n, ok := av.(*types.AttributeValueMemberN)
	if !ok {
		return fmt.Errorf("price: expected number attribute, got %T", av)
	}
	d, err := decimal.NewFromString(n.Value)
	if err != nil {
		return fmt.Errorf("price: %w", err)
	}
	d, err = storable(d)
	if err != nil {
		return err
	}
	p.Decimal = d
	return nil
}

// storable rejects values outside the DynamoDB number range. It inspects
// only the coefficient and exponent, never the expanded digits. Zero is
// normalized so a large exponent on it is never expanded either.
func storable(d decimal.Decimal) (decimal.Decimal, error) {
	if d.IsZero() {
		return decimal.Zero, nil
	}
	coefficient := strings.TrimPrefix(d.Coefficient().Text(10), "-")
	significant := len(strings.TrimRight(coefficient, "0"))

	// Exponent of the leading digit in scientific notation.
	magnitude := int64(d.Exponent()) + int64(len(coefficient)) - 1
	if significant > maxPriceDigits || magnitude < minPriceExponent || magnitude > maxPriceExponent {
		return decimal.Decimal{}, fmt.Errorf("%w: %d significant digits, exponent %d", ErrPriceOutOfRange, significant, magnitude)
	}
	return d, nil
}
