package errors

import (
	"fmt"
	"net/http"
)

const (
	CodeUpstreamCall   = "UPSTREAM_CALL_FAILED"
	CodeUpstreamLogic  = "UPSTREAM_LOGIC_ERROR"
	CodeResponseShape  = "RESPONSE_SHAPE_ERROR"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalServer = "INTERNAL_SERVER_ERROR"
)

// All upstream failures surface as 500 to stay compatible with existing callers.
var (
	ErrUpstreamCall = New(
		CodeUpstreamCall,
		"Upstream call failed",
		http.StatusInternalServerError,
	)

	ErrUpstreamLogic = New(
		CodeUpstreamLogic,
		"Upstream provider returned an error",
		http.StatusInternalServerError,
	)

	ErrResponseShape = New(
		CodeResponseShape,
		"Failed to parse upstream response",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		CodeInvalidRequest,
		"Invalid request parameters",
		http.StatusUnprocessableEntity,
	)

	ErrInternalServer = New(
		CodeInternalServer,
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// UpstreamCall - network failure, timeout or non-2xx status from the provider
func UpstreamCall(cause error) *AppError {
	return ErrUpstreamCall.Wrap(fmt.Sprintf("upstream call failed: %v", cause), cause)
}

// UpstreamLogic - provider answered with an error field
func UpstreamLogic(providerMessage string) *AppError {
	return ErrUpstreamLogic.Wrap(fmt.Sprintf("upstream provider error: %s", providerMessage), nil)
}

// ResponseShape - no route found or the payload schema is not what we expect
func ResponseShape(reason string) *AppError {
	return ErrResponseShape.Wrap(fmt.Sprintf("response parsing failed: %s", reason), nil)
}

func ResponseShapeWrap(reason string, cause error) *AppError {
	return ErrResponseShape.Wrap(fmt.Sprintf("response parsing failed: %s: %v", reason, cause), cause)
}

func InvalidRequest(message string, cause error) *AppError {
	return ErrInvalidRequest.Wrap(message, cause)
}
