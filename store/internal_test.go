package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// --- updateExpression Tests ---

func TestUpdateExpression_Empty(t *testing.T) {
	_, err := updateExpression(Patch{})
	if !errors.Is(err, ErrEmptyUpdate) {
		t.Errorf("expected ErrEmptyUpdate, got %v", err)
	}
}

func TestUpdateExpression_OneClausePerField(t *testing.T) {
	name := "Widget"
	price, _ := ParsePrice("9.99")

	tests := []struct {
		name    string
		patch   Patch
		fields  []string
		clauses int
	}{
		{"name only", Patch{Name: &name}, []string{"name"}, 1},
		{"price only", Patch{Price: &price}, []string{"price"}, 1},
		{"both", Patch{Name: &name, Price: &price}, []string{"name", "price"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := updateExpression(tt.patch)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			update := strings.TrimSpace(aws.ToString(expr.Update()))
			if !strings.HasPrefix(update, "SET ") {
				t.Errorf("expected SET expression, got %q", update)
			}
			if got := strings.Count(update, "="); got != tt.clauses {
				t.Errorf("expected %d clauses, got %d in %q", tt.clauses, got, update)
			}

			// One bound value per clause; the condition only references a name.
			if got := len(expr.Values()); got != tt.clauses {
				t.Errorf("expected %d values, got %d", tt.clauses, got)
			}

			named := make(map[string]bool)
			for _, v := range expr.Names() {
				named[v] = true
			}
			for _, f := range tt.fields {
				if !named[f] {
					t.Errorf("expected attribute name %q in %v", f, expr.Names())
				}
			}
			if !named["id"] {
				t.Error("expected condition on id")
			}
		})
	}
}

func TestUpdateExpression_ConditionRequiresExistingItem(t *testing.T) {
	name := "Widget"
	expr, err := updateExpression(Patch{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cond := aws.ToString(expr.Condition())
	if !strings.Contains(cond, "attribute_exists") {
		t.Errorf("expected attribute_exists condition, got %q", cond)
	}
}

func TestUpdateExpression_PriceIsNumber(t *testing.T) {
	price, _ := ParsePrice("12.50")
	expr, err := updateExpression(Patch{Price: &price})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, v := range expr.Values() {
		n, ok := v.(*types.AttributeValueMemberN)
		if !ok {
			t.Fatalf("expected number value, got %T", v)
		}
		if n.Value != "12.5" {
			t.Errorf("expected '12.5', got %q", n.Value)
		}
	}
}

// --- unmarshalItem Tests ---

func TestUnmarshalItem_Full(t *testing.T) {
	raw := map[string]types.AttributeValue{
		"id":    &types.AttributeValueMemberS{Value: "1"},
		"name":  &types.AttributeValueMemberS{Value: "Widget"},
		"price": &types.AttributeValueMemberN{Value: "9.99"},
	}

	item, err := unmarshalItem(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != "1" {
		t.Errorf("expected ID '1', got %q", item.ID)
	}
	if item.Name != "Widget" {
		t.Errorf("expected Name 'Widget', got %q", item.Name)
	}
	if item.Price.String() != "9.99" {
		t.Errorf("expected Price 9.99, got %s", item.Price)
	}
}

func TestUnmarshalItem_IgnoresUnknownAttributes(t *testing.T) {
	raw := map[string]types.AttributeValue{
		"id":         &types.AttributeValueMemberS{Value: "1"},
		"name":       &types.AttributeValueMemberS{Value: "Widget"},
		"price":      &types.AttributeValueMemberN{Value: "1"},
		"created_at": &types.AttributeValueMemberS{Value: "2024-01-01T00:00:00Z"},
	}

	if _, err := unmarshalItem(raw); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUnmarshalItem_WrongPriceType(t *testing.T) {
	raw := map[string]types.AttributeValue{
		"id":    &types.AttributeValueMemberS{Value: "1"},
		"price": &types.AttributeValueMemberS{Value: "not-a-number"},
	}

	if _, err := unmarshalItem(raw); err == nil {
		t.Error("expected error for string price")
	}
}

// --- Config.validate Tests ---

func TestConfigValidate_Defaults(t *testing.T) {
	cfg := Config{}
	cfg.validate()

	if cfg.TableName != DefaultTableName {
		t.Errorf("expected default TableName, got %q", cfg.TableName)
	}
}

func TestConfigValidate_PreservesCustomTableName(t *testing.T) {
	cfg := Config{TableName: "custom_items"}
	cfg.validate()

	if cfg.TableName != "custom_items" {
		t.Errorf("expected custom TableName, got %q", cfg.TableName)
	}
}
