package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"skateplan/internal/core/domain"
	"skateplan/internal/core/ports"
	"skateplan/pkg/validation"
)

// call sends one request through gw and decodes the response into T.
// A 204 response yields the zero T.
func call[T any](ctx context.Context, gw ports.Gateway, endpoint, method string, body ports.RequestBody, token string) (T, error) {
	var out T
	raw, err := gw.Request(ctx, endpoint, method, body, token)
	if err != nil {
		return out, err
	}
	if raw == nil {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s %s: %w", method, endpoint, err)
	}
	return out, nil
}

// send is call for endpoints whose response body is ignored.
func send(ctx context.Context, gw ports.Gateway, endpoint, method string, body ports.RequestBody, token string) error {
	_, err := gw.Request(ctx, endpoint, method, body, token)
	return err
}

// jsonBody validates v before wrapping it as a JSON request body.
func jsonBody(v interface{}) (ports.RequestBody, error) {
	if err := validation.ValidateStruct(v); err != nil {
		return nil, err
	}
	return ports.JSONBody{Value: v}, nil
}

func entityPath(kind domain.EntityKind, id int64, suffix string) (string, error) {
	switch kind {
	case domain.KindSkater, domain.KindTeam, domain.KindSynchro:
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidEntity, kind)
	}
	if err := validation.ValidateEntityID(id); err != nil {
		return "", err
	}
	return fmt.Sprintf("/%s/%d/%s", kind, id, suffix), nil
}

func idPath(collection string, id int64, suffix string) (string, error) {
	if err := validation.ValidateEntityID(id); err != nil {
		return "", err
	}
	return fmt.Sprintf("/%s/%d/%s", collection, id, suffix), nil
}

func withQuery(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}
