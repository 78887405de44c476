// Package errors provides a coded error type with wrapping and metadata
package errors

// Import as perr to avoid shadowing the standard library package

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies failures across the daemon
// Values appear in status API payloads; append only
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic is for panics recovered by middleware
	ErrorCodePanic

	// ErrorCodeUnavailable is for transient errors where retry may succeed
	ErrorCodeUnavailable

	// ErrorCodeInvalidArgument is for bad input parameters
	ErrorCodeInvalidArgument

	// ErrorCodeValidation is for struct validation failures
	ErrorCodeValidation

	// ErrorCodeJSON is for JSON decode failures
	ErrorCodeJSON

	// ErrorCodeNotFound is for unknown paths or resources
	ErrorCodeNotFound

	// ErrorCodeStorageUnavailable is for a missing or unreadable credential record
	ErrorCodeStorageUnavailable

	// ErrorCodeMalformedRecord is for a credential line that cannot be decoded
	ErrorCodeMalformedRecord

	// ErrorCodeAssociationTimeout is for a station join that never associated
	ErrorCodeAssociationTimeout

	// ErrorCodeClientIO is for portal client read/write failures
	ErrorCodeClientIO

	// ErrorCodeRequestUnparsable is for portal requests that cannot be parsed
	ErrorCodeRequestUnparsable

	// ErrorCodeListenFault is for failures of the portal listening socket
	ErrorCodeListenFault

	// ErrorCodeRadio is for radio/platform command failures
	ErrorCodeRadio
)

var codeNames = map[ErrorCode]string{
	ErrorCodeUnknown:            "unknown",
	ErrorCodePanic:              "panic",
	ErrorCodeUnavailable:        "unavailable",
	ErrorCodeInvalidArgument:    "invalid_argument",
	ErrorCodeValidation:         "validation",
	ErrorCodeJSON:               "json",
	ErrorCodeNotFound:           "not_found",
	ErrorCodeStorageUnavailable: "storage_unavailable",
	ErrorCodeMalformedRecord:    "malformed_record",
	ErrorCodeAssociationTimeout: "association_timeout",
	ErrorCodeClientIO:           "client_io",
	ErrorCodeRequestUnparsable:  "request_unparsable",
	ErrorCodeListenFault:        "listen_fault",
	ErrorCodeRadio:              "radio",
}

// Codes lists every known code in ascending order
func Codes() []ErrorCode {
	out := make([]ErrorCode, 0, len(codeNames))
	for c := ErrorCodeUnknown; int(c) < len(codeNames); c++ {
		out = append(out, c)
	}
	return out
}

// String returns the snake_case name used in logs
func (c ErrorCode) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("code(%d)", uint16(c))
}

// HTTPStatusCode turns an ErrorCode into an http status code
func HTTPStatusCode(c ErrorCode) int {
	switch c {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeInvalidArgument, ErrorCodeValidation, ErrorCodeJSON, ErrorCodeRequestUnparsable:
		return http.StatusBadRequest
	case ErrorCodeUnavailable, ErrorCodeStorageUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeAssociationTimeout:
		return http.StatusGatewayTimeout
	case ErrorCodeRadio:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error is the coded error type
// msg is developer facing, code is machine facing, op names the failing operation
type Error struct {
	orig error
	msg  string
	code ErrorCode
	op   string
}

// Wire is the JSON form returned by the status API
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// ToWire converts an *Error to a Wire payload
func (e *Error) ToWire() Wire { return Wire{Code: e.code, Message: e.msg} }

// WireFrom converts any error into a Wire payload
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return err != nil && CodeOf(err) == code }

// HTTPStatus returns the mapped HTTP status for any error
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// As returns (*Error, true) if err is or wraps one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// WithOp attaches an operation label (copy-on-write); foreign errors pass through
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with a formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// WrapIf wraps only when err != nil
func WrapIf(err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, msg)
}

// InvalidArgf returns an invalid argument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// NotFoundf returns a not found error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// JSONErrf returns a JSON error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf returns a panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Malformedf returns a malformed record error
func Malformedf(format string, a ...any) error { return Newf(ErrorCodeMalformedRecord, format, a...) }

// Unparsablef returns a request unparsable error
func Unparsablef(format string, a ...any) error {
	return Newf(ErrorCodeRequestUnparsable, format, a...)
}

// Radiof returns a radio error
func Radiof(format string, a ...any) error { return Newf(ErrorCodeRadio, format, a...) }
