package errors

import "fmt"

var (
	// General
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("bad request")

	// Storage
	ErrConflict         = fmt.Errorf("record with the same unique value already exists")
	ErrRelationNotFound = fmt.Errorf("referenced record does not exist")
	ErrInUse            = fmt.Errorf("record is referenced by other records")

	// Filters
	ErrUnknownFilterField = fmt.Errorf("unknown filter field")
	ErrInvalidFilterValue = fmt.Errorf("invalid filter value")
)

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError carries the status code and user-facing message for a failed request.
// Err is the underlying cause and is only logged, never sent to the client.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}
