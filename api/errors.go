package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jacentio/items/store"
)

// Kind classifies a failed request.
type Kind int

const (
	// KindValidation is a malformed or incomplete request.
	KindValidation Kind = iota + 1
	// KindNotFound is a request for an id with no stored item.
	KindNotFound
	// KindUnsupportedRoute is a route key outside the dispatch table.
	KindUnsupportedRoute
	// KindStorage is a failed DynamoDB call.
	KindStorage
)

// StatusCode returns the HTTP status reported for the kind.
func (k Kind) StatusCode() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound, KindUnsupportedRoute:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnsupportedRoute:
		return "unsupported_route"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Error is a request failure. Message is returned to the caller verbatim.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func validationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func unsupportedRouteError(routeKey string) *Error {
	return &Error{Kind: KindUnsupportedRoute, Message: fmt.Sprintf("Unsupported route: \"%s\"", routeKey)}
}

// storeError classifies an error returned by the store for item id.
func storeError(err error, id string) *Error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return &Error{Kind: KindNotFound, Message: fmt.Sprintf("Item with id %s not found", id), Err: err}
	case errors.Is(err, store.ErrEmptyUpdate):
		return &Error{Kind: KindValidation, Message: msgNoUpdateFields, Err: err}
	default:
		return &Error{Kind: KindStorage, Message: err.Error(), Err: err}
	}
}

// asError converts any error into an *Error, treating unknown errors as storage failures.
func asError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &Error{Kind: KindStorage, Message: err.Error(), Err: err}
}
