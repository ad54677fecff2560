package gateway

import (
	"errors"
	"net/http"

	apperrors "skateplan/pkg/errors"
)

// FailureKind says at which stage a request failed.
type FailureKind string

const (
	// KindEncode: the request body could not be serialized.
	KindEncode FailureKind = "encode"
	// KindTransport: no HTTP response was received.
	KindTransport FailureKind = "transport"
	// KindStatus: the backend answered with a non-2xx status.
	KindStatus FailureKind = "status"
	// KindDecode: a 2xx response carried a body that is not JSON.
	KindDecode FailureKind = "decode"
)

// RequestError is the only error type returned by Client.Request.
type RequestError struct {
	Kind       FailureKind
	Method     string
	Endpoint   string
	StatusCode int
	Message    string
	// Body holds the raw error body of a KindStatus failure.
	Body []byte
	Err  error
}

// Error returns the human readable message resolved from the response.
func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status of a KindStatus failure, 0 otherwise.
func (e *RequestError) Status() int {
	if e.Kind != KindStatus {
		return 0
	}
	return e.StatusCode
}

func (e *RequestError) ResponseBody() []byte {
	return e.Body
}

// AsRequestError extracts a *RequestError from err's chain.
func AsRequestError(err error) (*RequestError, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// IsStatus reports whether err is a backend response with the given status.
func IsStatus(err error, status int) bool {
	re, ok := AsRequestError(err)
	return ok && re.Kind == KindStatus && re.StatusCode == status
}

// ToAppError maps a gateway failure onto an application error. Backend
// statuses are passed through; transport and decode failures become 502.
func ToAppError(err error) *apperrors.AppError {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return appErr
	}
	re, ok := AsRequestError(err)
	if !ok {
		return apperrors.WrapError(err, apperrors.ErrCodeInternal, err.Error(), http.StatusInternalServerError)
	}
	switch re.Kind {
	case KindStatus:
		return apperrors.WrapError(re, apperrors.CodeForStatus(re.StatusCode), re.Message, re.StatusCode).
			WithContext("endpoint", re.Endpoint)
	case KindEncode:
		return apperrors.WrapError(re, apperrors.ErrCodeInvalidInput, re.Message, http.StatusBadRequest)
	default:
		return apperrors.NewBadGatewayError(re.Message, re).WithContext("endpoint", re.Endpoint)
	}
}
