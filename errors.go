package exeq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"

	"github.com/exeq-dev/exeq-go/generated/models"
)

// Error represents an exeq API, transport or configuration error.
//
// Status is the HTTP status code for API errors and zero otherwise.
// Cause holds the underlying error for transport and configuration
// failures.
type Error struct {
	Code    string
	Message string
	Status  int
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("exeq: %s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("exeq: %s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code, so that
// errors.Is(err, ErrNotFound) matches any not-found response.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors.
var (
	ErrNotFound      = &Error{Code: "NOT_FOUND", Message: "resource not found", Status: 404}
	ErrTimeout       = &Error{Code: "TIMEOUT", Message: "request timed out", Status: 408}
	ErrUnauthorized  = &Error{Code: "UNAUTHORIZED", Message: "invalid credentials", Status: 401}
	ErrBadRequest    = &Error{Code: "BAD_REQUEST", Message: "invalid request", Status: 400}
	ErrInternal      = &Error{Code: "INTERNAL", Message: "internal server error", Status: 500}
	ErrConfiguration = &Error{Code: "CONFIGURATION", Message: "invalid client configuration"}
	ErrRequestFailed = &Error{Code: "REQUEST_FAILED", Message: "request failed"}
)

func newError(code, message string, status int, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Status:  status,
		Cause:   cause,
	}
}

// newAPIError builds an error for a non-2xx response.
func newAPIError(status int, message string) *Error {
	if message == "" {
		message = http.StatusText(status)
	}
	return newError(codeForStatus(status), message, status, nil)
}

func codeForStatus(status int) string {
	switch {
	case status == http.StatusBadRequest:
		return "BAD_REQUEST"
	case status == http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case status == http.StatusNotFound:
		return "NOT_FOUND"
	case status == http.StatusRequestTimeout:
		return "TIMEOUT"
	case status >= 500:
		return "INTERNAL"
	default:
		return "API_ERROR"
	}
}

// MappingError reports a response that decoded but does not satisfy the
// public contract, such as a session without a CDP URL. Fields lists the
// offending wire fields.
type MappingError struct {
	Type   string
	Fields []string
	Cause  error
}

func (e *MappingError) Error() string {
	msg := fmt.Sprintf("exeq: invalid %s in response", e.Type)
	if len(e.Fields) > 0 {
		msg += ": " + strings.Join(e.Fields, ", ")
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *MappingError) Unwrap() error {
	return e.Cause
}

// newMappingError wraps a model validation failure, collecting the names
// of every field the validator rejected.
func newMappingError(typ string, err error) *MappingError {
	return &MappingError{
		Type:   typ,
		Fields: validationFields(err),
		Cause:  err,
	}
}

func validationFields(err error) []string {
	var fields []string
	var walk func(error)
	walk = func(err error) {
		var composite *openapierrors.CompositeError
		var validation *openapierrors.Validation
		switch {
		case errors.As(err, &composite):
			for _, inner := range composite.Errors {
				walk(inner)
			}
		case errors.As(err, &validation):
			fields = append(fields, validation.Name)
		}
	}
	walk(err)
	return fields
}

// errorResponse is implemented by every generated default response.
type errorResponse interface {
	error
	Code() int
	GetPayload() *models.InternalServerPublicErrorResponse
}

// handleError translates errors from the generated layer. API responses
// keep their status and server message; transport failures keep the
// original error as Cause.
func (c *Client) handleError(err error, message string) error {
	if err == nil {
		return nil
	}

	var mappingErr *MappingError
	if errors.As(err, &mappingErr) {
		return err
	}

	var resp errorResponse
	if errors.As(err, &resp) {
		var serverMsg string
		if payload := resp.GetPayload(); payload != nil {
			serverMsg = payload.Error
		}
		return newAPIError(resp.Code(), serverMsg)
	}

	var apiErr *runtime.APIError
	if errors.As(err, &apiErr) {
		return newAPIError(apiErr.Code, "")
	}

	// Error bodies are decoded leniently by the transport, so a type error
	// can only come from a success payload.
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		mappingErr := &MappingError{Type: payloadType(typeErr), Cause: err}
		if typeErr.Field != "" {
			mappingErr.Fields = []string{typeErr.Field}
		}
		return mappingErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return newError("TIMEOUT", message, 0, err)
	}
	return newError("REQUEST_FAILED", message, 0, err)
}

// payloadType names the wire type a decode failure occurred in, for
// example "SessionList".
func payloadType(typeErr *json.UnmarshalTypeError) string {
	if name := strings.TrimPrefix(typeErr.Struct, "InternalServerPublic"); name != "" {
		return name
	}
	return "payload"
}
