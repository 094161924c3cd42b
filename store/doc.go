// Package store provides the DynamoDB data access layer for items.
//
// A [Store] wraps a single table, keyed by the string attribute "id", and
// exposes the five operations the request handler needs:
//
//   - [Store.Put] writes an item, replacing any existing item with the same id
//   - [Store.ScanAll] returns every item in the table
//   - [Store.Get] reads one item by id
//   - [Store.Update] applies a [Patch] to an existing item
//   - [Store.Delete] removes an item (deleting a missing id is not an error)
//
// Every operation performs exactly one logical storage call. Nothing is
// retried and nothing is cached; the table is the only owner of item state.
//
// # Client
//
// [Store] talks to DynamoDB through the [Client] interface, which
// *dynamodb.Client satisfies. Create the client once per process and pass it
// to [New]:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	s := store.New(dynamodb.NewFromConfig(cfg), store.DefaultConfig())
//
// # Errors
//
//   - [ErrNotFound] - item doesn't exist (Get, Update)
//   - [ErrEmptyUpdate] - patch carries no fields (Update)
//   - [ErrPriceOutOfRange] - price outside the DynamoDB number range (decoding)
//
// Any other error is returned as produced by the SDK.
package store
