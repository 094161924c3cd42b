package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jacentio/items/store"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		key      string
		expected Route
	}{
		{"POST /items", RouteCreateItem},
		{"GET /items", RouteListItems},
		{"GET /items/{id}", RouteGetItem},
		{"PATCH /items/{id}", RouteUpdateItem},
		{"PUT /items/{id}", RouteReplaceItem},
		{"DELETE /items/{id}", RouteDeleteItem},
		{"DELETE /items", RouteUnsupported},
		{"GET /items/", RouteUnsupported},
		{"get /items", RouteUnsupported},
		{"$default", RouteUnsupported},
		{"", RouteUnsupported},
	}

	for _, tt := range tests {
		if got := ParseRoute(tt.key); got != tt.expected {
			t.Errorf("ParseRoute(%q): expected %v, got %v", tt.key, tt.expected, got)
		}
	}
}

func TestRouteString(t *testing.T) {
	if len(routeKeys) != int(RouteDeleteItem) {
		t.Fatalf("expected %d route keys, got %d", int(RouteDeleteItem), len(routeKeys))
	}
	for key, route := range routeKeys {
		if route.String() != key {
			t.Errorf("expected %q, got %q", key, route.String())
		}
		if ParseRoute(route.String()) != route {
			t.Errorf("expected %q to parse back to %v", route.String(), route)
		}
	}
	if Route(99).String() != "unsupported" {
		t.Errorf("expected %q, got %q", "unsupported", Route(99).String())
	}
	if RouteUnsupported.String() != "unsupported" {
		t.Errorf("expected %q, got %q", "unsupported", RouteUnsupported.String())
	}
}

func TestKindStatusCode(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindUnsupportedRoute, http.StatusNotFound},
		{KindStorage, http.StatusInternalServerError},
		{Kind(0), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := tt.kind.StatusCode(); got != tt.expected {
			t.Errorf("%s: expected %d, got %d", tt.kind, tt.expected, got)
		}
	}
}

func TestStoreError(t *testing.T) {
	storageErr := errors.New("ProvisionedThroughputExceededException: slow down")

	tests := []struct {
		name    string
		err     error
		kind    Kind
		message string
	}{
		{"not found", store.ErrNotFound, KindNotFound, "Item with id 42 not found"},
		{"wrapped not found", fmt.Errorf("get: %w", store.ErrNotFound), KindNotFound, "Item with id 42 not found"},
		{"empty update", store.ErrEmptyUpdate, KindValidation, msgNoUpdateFields},
		{"storage", storageErr, KindStorage, storageErr.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := storeError(tt.err, "42")
			if got.Kind != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, got.Kind)
			}
			if got.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, got.Message)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("expected error to wrap %v", tt.err)
			}
		})
	}
}

func TestAsError(t *testing.T) {
	apiErr := validationError(msgMissingPathID)
	if got := asError(fmt.Errorf("wrapped: %w", apiErr)); got != apiErr {
		t.Errorf("expected the wrapped *Error to be returned, got %v", got)
	}

	plain := errors.New("boom")
	got := asError(plain)
	if got.Kind != KindStorage {
		t.Errorf("expected kind storage, got %s", got.Kind)
	}
	if got.Message != "boom" {
		t.Errorf("expected message %q, got %q", "boom", got.Message)
	}
}

func TestUnsupportedRouteError(t *testing.T) {
	tests := []struct {
		routeKey string
		expected string
	}{
		{"PATCH /widgets", `Unsupported route: "PATCH /widgets"`},
		{`GET /a"b`, `Unsupported route: "GET /a"b"`},
		{`GET /a\b`, `Unsupported route: "GET /a\b"`},
		{"", `Unsupported route: ""`},
	}
	for _, tt := range tests {
		if got := unsupportedRouteError(tt.routeKey).Error(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}

	err := unsupportedRouteError("PATCH /widgets")
	if err.Kind.StatusCode() != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, err.Kind.StatusCode())
	}
}
