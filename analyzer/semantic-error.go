package analyzer

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	Redeclared        = ErrorKind("redeclared")
	Undeclared        = ErrorKind("undeclared")
	Uninitialized     = ErrorKind("uninitialized")
	IncompatibleTypes = ErrorKind("incompatible types")
	DivisionByZero    = ErrorKind("division by zero")
)

var (
	ErrRedeclared        = errors.New("redeclared")
	ErrUndeclared        = errors.New("undeclared")
	ErrUninitialized     = errors.New("uninitialized")
	ErrIncompatibleTypes = errors.New("incompatible types")
	ErrDivisionByZero    = errors.New("division by zero")
)

var kindSentinels = map[ErrorKind]error{
	Redeclared:        ErrRedeclared,
	Undeclared:        ErrUndeclared,
	Uninitialized:     ErrUninitialized,
	IncompatibleTypes: ErrIncompatibleTypes,
	DivisionByZero:    ErrDivisionByZero,
}

// A semantic violation.  The first one raised aborts the whole analysis.
type SemanticError struct {
	Kind ErrorKind

	// The offending identifier, value, or expression.
	Subject string

	Line int

	// Optional.  Extra context appended to the message.
	Detail string
}

func newSemanticError(
	kind ErrorKind,
	subject string,
	line int,
	detailFormat string,
	args ...interface{},
) *SemanticError {
	detail := detailFormat
	if len(args) > 0 {
		detail = fmt.Sprintf(detailFormat, args...)
	}

	return &SemanticError{
		Kind:    kind,
		Subject: subject,
		Line:    line,
		Detail:  detail,
	}
}

func (err *SemanticError) Error() string {
	return fmt.Sprintf("semantic error at line %d: %s", err.Line, err.Message())
}

func (err *SemanticError) Message() string {
	msg := ""
	switch err.Kind {
	case Redeclared:
		msg = fmt.Sprintf("variable '%s' already declared", err.Subject)
	case Undeclared:
		msg = fmt.Sprintf("variable '%s' used but not declared", err.Subject)
	case Uninitialized:
		msg = fmt.Sprintf("variable '%s' used before initialization", err.Subject)
	case IncompatibleTypes:
		msg = fmt.Sprintf("incompatible types for '%s'", err.Subject)
	case DivisionByZero:
		msg = fmt.Sprintf("division by zero in '%s'", err.Subject)
	default:
		msg = fmt.Sprintf("%s '%s'", err.Kind, err.Subject)
	}

	if err.Detail != "" {
		msg += ": " + err.Detail
	}
	return msg
}

func (err *SemanticError) Unwrap() error {
	return kindSentinels[err.Kind]
}
