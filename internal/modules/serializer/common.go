package serializer

import "github.com/gin-gonic/gin"

// ErrorResponse is the error envelope for every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Err builds an error envelope. The underlying error message is attached as
// details; release mode suppresses it for 5xx paths via DBErr.
func Err(msg string, err error) ErrorResponse {
	res := ErrorResponse{Error: msg}
	if err != nil {
		res.Details = err.Error()
	}
	return res
}

// ParamErr reports a validation failure (400).
func ParamErr(msg string, err error) ErrorResponse {
	if msg == "" {
		msg = "invalid request parameters"
	}
	return Err(msg, err)
}

// AuthErr reports a missing or invalid credential (401).
func AuthErr(msg string) ErrorResponse {
	if msg == "" {
		msg = "unauthorized"
	}
	return Err(msg, nil)
}

// ForbiddenErr reports an insufficient role or missing project grant (403).
func ForbiddenErr(msg string) ErrorResponse {
	if msg == "" {
		msg = "forbidden"
	}
	return Err(msg, nil)
}

// NotFoundErr reports a missing entity (404).
func NotFoundErr(msg string) ErrorResponse {
	if msg == "" {
		msg = "not found"
	}
	return Err(msg, nil)
}

// ConflictErr reports a unique-constraint violation (409).
func ConflictErr(msg string) ErrorResponse {
	if msg == "" {
		msg = "conflict"
	}
	return Err(msg, nil)
}

// DBErr reports an unclassified store error (500). Details are withheld in
// release mode so internals never leak to clients.
func DBErr(msg string, err error) ErrorResponse {
	if msg == "" {
		msg = "database error"
	}
	if gin.Mode() == gin.ReleaseMode {
		err = nil
	}
	return Err(msg, err)
}
