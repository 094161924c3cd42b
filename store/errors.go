package store

import "errors"

var (
	// ErrNotFound is returned when no item exists for the requested id.
	ErrNotFound = errors.New("items: item not found")

	// ErrEmptyUpdate is returned when a patch sets no fields.
	ErrEmptyUpdate = errors.New("items: no fields to update")

	// ErrPriceOutOfRange is returned for prices DynamoDB cannot store as a number.
	ErrPriceOutOfRange = errors.New("items: price outside the storable number range")
)
