package ports

import (
	"context"
	"encoding/json"
)

// RequestBody is the payload of an outgoing backend request. The set of
// implementations is closed: nil, JSONBody or MultipartBody.
type RequestBody interface {
	isRequestBody()
}

// JSONBody is serialized with encoding/json and sent as application/json.
type JSONBody struct {
	Value interface{}
}

// MultipartBody is an already encoded multipart/form-data payload. It is
// sent byte for byte with the boundary-bearing ContentType it was built with.
type MultipartBody struct {
	Payload     []byte
	ContentType string
}

func (JSONBody) isRequestBody()      {}
func (MultipartBody) isRequestBody() {}

// Gateway is the single access point to the backend API. A nil result
// with a nil error means the backend answered 204 No Content.
type Gateway interface {
	Request(ctx context.Context, endpoint, method string, body RequestBody, token string) (json.RawMessage, error)
}

// ResponseError is implemented by gateway failures. Status is 0 when no
// response was received.
type ResponseError interface {
	error
	Status() int
	ResponseBody() []byte
}
