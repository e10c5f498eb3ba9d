package api

import "fmt"

// Kind classifies a normalized transport failure.
type Kind string

const (
	KindClient       Kind = "CLIENT_ERROR"
	KindBadRequest   Kind = "BAD_REQUEST"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindForbidden    Kind = "FORBIDDEN"
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindValidation   Kind = "VALIDATION_FAILED"
	KindServer       Kind = "SERVER_ERROR"
	KindUnavailable  Kind = "UNAVAILABLE"
	KindUnknown      Kind = "UNKNOWN"
)

// Error is the normalized failure every caller sees. Status is the
// HTTP status code, or 0 for failures before a response arrived.
type Error struct {
	Status  int
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// normalize maps an HTTP status to the fixed taxonomy. serverMsg is
// the backend's message field when the body carried one; some statuses
// surface it, the rest use fixed text.
func normalize(status int, serverMsg string) *Error {
	switch status {
	case 400:
		return &Error{Status: status, Kind: KindBadRequest, Message: orDefault(serverMsg, "Bad request")}
	case 401:
		return &Error{Status: status, Kind: KindUnauthorized, Message: "Unauthorized - please login again"}
	case 403:
		return &Error{Status: status, Kind: KindForbidden, Message: "Access forbidden - you don't have permission"}
	case 404:
		return &Error{Status: status, Kind: KindNotFound, Message: "Resource not found"}
	case 409:
		return &Error{Status: status, Kind: KindConflict, Message: orDefault(serverMsg, "Conflict - resource already exists")}
	case 422:
		return &Error{Status: status, Kind: KindValidation, Message: orDefault(serverMsg, "Validation failed")}
	case 500:
		return &Error{Status: status, Kind: KindServer, Message: "Internal server error - please try again later"}
	case 503:
		return &Error{Status: status, Kind: KindUnavailable, Message: "Service unavailable - please try again later"}
	default:
		return &Error{Status: status, Kind: KindUnknown, Message: orDefault(serverMsg, fmt.Sprintf("Server error: %d", status))}
	}
}

// clientError wraps a failure that happened before any response:
// connection refused, DNS, cancelled context.
func clientError(err error) *Error {
	return &Error{Kind: KindClient, Message: fmt.Sprintf("Client error: %v", err)}
}

func orDefault(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
