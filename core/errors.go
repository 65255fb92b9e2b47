package core

import (
	"errors"
	"fmt"
)

// General error codes
const (
	NOERROR   int = 0
	EMISSING  int = 122 // resource does not exist
	EINVALID  int = 123 // validation failed
	EINTERNAL int = 125 // internal error
	ENESTING  int = 126 // nesting limit exceeded
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EINTERNAL:
		return "internal error"
	case ENESTING:
		return "nested too deeply"
	}
	return "undefined error"
}

// Error kinds of the layout engine. Errors returned by the engine wrap one of
// these, so clients may test with errors.Is.
var (
	// ErrUnknownNodeType is returned if no builder is registered for a node type.
	ErrUnknownNodeType = errors.New("unknown node type")
	// ErrMissingFontMetrics is returned if a font has no metric table at all.
	ErrMissingFontMetrics = errors.New("font metrics not found")
	// ErrUnexpectedNodeShape is returned if a builder receives a node of the wrong kind.
	ErrUnexpectedNodeShape = errors.New("unexpected node shape")
	// ErrNestingTooDeep is returned if a formula exceeds the configured nesting depth.
	ErrNestingTooDeep = errors.New("formula nested too deeply")
)

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	if e.msg == "" || e.msg == e.error.Error() {
		return fmt.Sprintf("[%d] %v", e.code, e.error)
	}
	return fmt.Sprintf("[%d] %v: %s", e.code, e.error, e.msg)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// WrapError wraps an error in a core error, featuring an error code and
// a user message.
// If err is nil, an error denoting the code's default text is wrapped.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return coreError{err, code, msg}
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it checks StatusCode and returns that message.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// UnknownNodeType creates an error for a node type without a registered builder.
func UnknownNodeType(nodeType string) error {
	return WrapError(ErrUnknownNodeType, EINVALID, "no builder registered for node type %q", nodeType)
}

// MissingFontMetrics creates an error for a font without a metric table.
func MissingFontMetrics(fontName string) error {
	return WrapError(ErrMissingFontMetrics, EMISSING, "font metrics not found for font %q", fontName)
}

// UnexpectedNodeShape creates an error for a builder receiving a node of the wrong kind.
func UnexpectedNodeShape(builder string, got interface{}) error {
	return WrapError(ErrUnexpectedNodeShape, EINTERNAL, "builder %q cannot handle node %T", builder, got)
}

// NestingTooDeep creates an error for formulas nested deeper than limit.
func NestingTooDeep(limit int) error {
	return WrapError(ErrNestingTooDeep, ENESTING, "nesting depth exceeds limit of %d", limit)
}
