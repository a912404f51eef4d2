package errorx

import (
	"errors"
	"fmt"
	"net/http"
)

// CodeError is an error carrying a business code.
// It implements the error interface, supports wrapping an underlying
// cause and is recognized by errors.Is/errors.As.
type CodeError struct {
	Code  int    // business code
	Msg   string // user-facing message
	cause error  // wrapped underlying error
}

// Error returns "msg: cause" when a cause is present, otherwise msg.
func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap exposes the cause for errors.Is/errors.As traversal.
func (e *CodeError) Unwrap() error {
	return e.cause
}

// New creates a CodeError without a cause.
func New(code int, msg string) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  msg,
	}
}

// Newf creates a CodeError with a formatted message.
func Newf(code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap attaches a business code and message to an underlying error.
// Usage: errorx.Wrap(err, CodeNotFound, "pet not found")
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// Wrapf attaches a business code and formatted message to an underlying error.
func Wrapf(err error, code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// GetCode extracts the business code from an error chain,
// falling back to CodeServerBusy for unknown errors.
func GetCode(err error) int {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeServerBusy
}

// Business codes.
const (
	CodeSuccess         = 1000 // success
	CodeInvalidParam    = 1001 // malformed or missing input
	CodeUserExist       = 1002 // account already registered
	CodeInvalidPassword = 1004 // bad credentials
	CodeServerBusy      = 1005 // internal failure
	CodeUnauthorized    = 1006 // missing or invalid principal
	CodeForbidden       = 1007 // authenticated but not allowed
	CodeNotFound        = 1008 // referenced record does not exist
	CodeConflict        = 1009 // duplicate adoption request
	CodeDBError         = 1010 // database failure
	CodeCacheError      = 1011 // cache failure
)

// Predefined instances, usable directly or with errors.Is.
var (
	ErrInvalidParam = New(CodeInvalidParam, "invalid request parameters")
	ErrServerBusy   = New(CodeServerBusy, "server busy, please try again later")
)

// HTTPStatus maps a business code to the stable HTTP status the API
// contract promises per error kind.
func HTTPStatus(code int) int {
	switch code {
	case CodeSuccess:
		return http.StatusOK
	case CodeInvalidParam, CodeUserExist, CodeInvalidPassword:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsNotFound reports whether the error chain carries CodeNotFound.
func IsNotFound(err error) bool {
	var codeErr *CodeError
	return errors.As(err, &codeErr) && codeErr.Code == CodeNotFound
}

// IsConflict reports whether the error chain carries CodeConflict.
func IsConflict(err error) bool {
	var codeErr *CodeError
	return errors.As(err, &codeErr) && codeErr.Code == CodeConflict
}
