package api

import (
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-playground/validator/v10"

	"github.com/jacentio/items/store"
)

const (
	msgInvalidBody     = "Invalid request body"
	msgMissingPathID   = "Missing path parameter id"
	msgCreateMissing   = "Missing id, name, or price"
	msgReplaceMissing  = "Missing name or price"
	msgNoUpdateFields  = "No valid fields to update"
	msgEmptyUpdateName = "Name must not be empty"
)

// A field counts as present when its key is in the body with a non-null
// value. Pointer fields keep "absent" apart from zero values such as price 0.

type createRequest struct {
	ID    *string      `json:"id" validate:"required,min=1"`
	Name  *string      `json:"name" validate:"required,min=1"`
	Price *store.Price `json:"price" validate:"required"`
}

type replaceRequest struct {
	Name  *string      `json:"name" validate:"required,min=1"`
	Price *store.Price `json:"price" validate:"required"`
}

type updateRequest struct {
	Name  *string      `json:"name" validate:"omitempty,min=1"`
	Price *store.Price `json:"price"`
}

func (r updateRequest) patch() store.Patch {
	return store.Patch{Name: r.Name, Price: r.Price}
}

// decodeBody unmarshals the request body into dst and validates it.
// A decode failure reports msgInvalidBody; a validation failure reports invalidMsg.
func decodeBody(v *validator.Validate, req events.APIGatewayV2HTTPRequest, dst any, invalidMsg string) error {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return validationError(msgInvalidBody)
		}
		body = decoded
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return validationError(msgInvalidBody)
	}
	if err := v.Struct(dst); err != nil {
		return validationError(invalidMsg)
	}
	return nil
}

// pathID returns the {id} path parameter.
func pathID(req events.APIGatewayV2HTTPRequest) (string, error) {
	id := req.PathParameters["id"]
	if id == "" {
		return "", validationError(msgMissingPathID)
	}
	return id, nil
}
