package services

import (
	"context"
	"encoding/json"
	"fmt"

	"skateplan/internal/core/domain"
	"skateplan/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Request(ctx context.Context, endpoint, method string, body ports.RequestBody, token string) (json.RawMessage, error) {
	args := m.Called(ctx, endpoint, method, body, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Load(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockTokenStore) Save(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockEntityFetcher struct {
	mock.Mock
}

func (m *MockEntityFetcher) FetchEntity(ctx context.Context, token string, kind domain.EntityKind, id int64) (domain.Entitled, error) {
	args := m.Called(ctx, token, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Entitled), args.Error(1)
}

// statusError is a minimal ports.ResponseError for non-2xx responses.
type statusError struct {
	status int
	msg    string
	body   []byte
}

func (e *statusError) Error() string        { return e.msg }
func (e *statusError) Status() int          { return e.status }
func (e *statusError) ResponseBody() []byte { return e.body }

func raw(s string) json.RawMessage {
	return json.RawMessage(s)
}

// jsonOf asserts that a request body is a JSON body and returns its encoding.
func jsonOf(body interface{}) string {
	jb, ok := body.(ports.JSONBody)
	if !ok {
		return fmt.Sprintf("<%T>", body)
	}
	out, err := json.Marshal(jb.Value)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return string(out)
}

func int64Ptr(v int64) *int64 { return &v }
