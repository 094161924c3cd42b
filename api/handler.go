// Package api provides the API Gateway (HTTP API, payload v2) handler that
// maps item routes onto store operations.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-playground/validator/v10"

	"github.com/jacentio/items/store"
)

// ItemStore is the storage the handler depends on. *store.Store satisfies it.
type ItemStore interface {
	Put(ctx context.Context, item store.Item) error
	ScanAll(ctx context.Context) ([]store.Item, error)
	Get(ctx context.Context, id string) (*store.Item, error)
	Update(ctx context.Context, id string, patch store.Patch) error
	Delete(ctx context.Context, id string) error
}

// Handler serves item routes. It holds no item state between invocations.
type Handler struct {
	store    ItemStore
	logger   *slog.Logger
	validate *validator.Validate
}

// NewHandler creates a new request handler.
func NewHandler(s ItemStore, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		store:    s,
		logger:   logger,
		validate: validator.New(),
	}
}

type messageResponse struct {
	Message string      `json:"message"`
	Item    *store.Item `json:"item,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handle processes one API Gateway request.
// This function is designed to be used as an AWS Lambda handler. It never
// returns an error: every failure is reported in the response.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	route := ParseRoute(req.RouteKey)

	body, err := h.dispatch(ctx, route, req)
	if err != nil {
		apiErr := asError(err)
		if apiErr.Kind == KindStorage {
			h.logger.Error("storage call failed",
				"route", req.RouteKey,
				"error", apiErr.Err,
			)
		} else {
			h.logger.Info("request rejected",
				"route", req.RouteKey,
				"kind", apiErr.Kind.String(),
				"error", apiErr.Message,
			)
		}
		return h.respond(apiErr.Kind.StatusCode(), errorResponse{Error: apiErr.Message}), nil
	}

	h.logger.Info("request handled",
		"route", route.String(),
		"status", http.StatusOK,
	)
	return h.respond(http.StatusOK, body), nil
}

// dispatch performs the route's single store call and returns the success body.
func (h *Handler) dispatch(ctx context.Context, route Route, req events.APIGatewayV2HTTPRequest) (any, error) {
	switch route {
	case RouteCreateItem:
		return h.createItem(ctx, req)
	case RouteListItems:
		return h.listItems(ctx)
	case RouteGetItem:
		return h.getItem(ctx, req)
	case RouteUpdateItem:
		return h.updateItem(ctx, req)
	case RouteReplaceItem:
		return h.replaceItem(ctx, req)
	case RouteDeleteItem:
		return h.deleteItem(ctx, req)
	case RouteUnsupported:
		return nil, unsupportedRouteError(req.RouteKey)
	}
	return nil, unsupportedRouteError(req.RouteKey)
}

func (h *Handler) createItem(ctx context.Context, req events.APIGatewayV2HTTPRequest) (any, error) {
	var in createRequest
	if err := decodeBody(h.validate, req, &in, msgCreateMissing); err != nil {
		return nil, err
	}

	item := store.Item{ID: *in.ID, Name: *in.Name, Price: *in.Price}
	if err := h.store.Put(ctx, item); err != nil {
		return nil, storeError(err, item.ID)
	}
	return messageResponse{
		Message: fmt.Sprintf("Item %s created successfully", item.ID),
		Item:    &item,
	}, nil
}

func (h *Handler) listItems(ctx context.Context) (any, error) {
	items, err := h.store.ScanAll(ctx)
	if err != nil {
		return nil, storeError(err, "")
	}
	if items == nil {
		items = []store.Item{}
	}
	return items, nil
}

func (h *Handler) getItem(ctx context.Context, req events.APIGatewayV2HTTPRequest) (any, error) {
	id, err := pathID(req)
	if err != nil {
		return nil, err
	}

	item, err := h.store.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, id)
	}
	return item, nil
}

func (h *Handler) updateItem(ctx context.Context, req events.APIGatewayV2HTTPRequest) (any, error) {
	id, err := pathID(req)
	if err != nil {
		return nil, err
	}

	var in updateRequest
	if err := decodeBody(h.validate, req, &in, msgEmptyUpdateName); err != nil {
		return nil, err
	}
	patch := in.patch()
	if patch.IsEmpty() {
		return nil, validationError(msgNoUpdateFields)
	}

	if err := h.store.Update(ctx, id, patch); err != nil {
		return nil, storeError(err, id)
	}
	return messageResponse{Message: fmt.Sprintf("Item %s updated successfully", id)}, nil
}

func (h *Handler) replaceItem(ctx context.Context, req events.APIGatewayV2HTTPRequest) (any, error) {
	id, err := pathID(req)
	if err != nil {
		return nil, err
	}

	var in replaceRequest
	if err := decodeBody(h.validate, req, &in, msgReplaceMissing); err != nil {
		return nil, err
	}

	// The path id wins over any id in the body.
	item := store.Item{ID: id, Name: *in.Name, Price: *in.Price}
	if err := h.store.Put(ctx, item); err != nil {
		return nil, storeError(err, id)
	}
	return messageResponse{
		Message: fmt.Sprintf("Item %s replaced", id),
		Item:    &item,
	}, nil
}

func (h *Handler) deleteItem(ctx context.Context, req events.APIGatewayV2HTTPRequest) (any, error) {
	id, err := pathID(req)
	if err != nil {
		return nil, err
	}

	if err := h.store.Delete(ctx, id); err != nil {
		return nil, storeError(err, id)
	}
	return messageResponse{Message: fmt.Sprintf("Item %s deleted successfully", id)}, nil
}

// respond builds the response envelope with a JSON body.
func (h *Handler) respond(status int, body any) events.APIGatewayV2HTTPResponse {
	data, err := json.Marshal(body)
	if err != nil {
		h.logger.Error("failed to encode response", "error", err)
		status = http.StatusInternalServerError
		data = []byte(`{"error":"failed to encode response"}`)
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(data),
	}
}
