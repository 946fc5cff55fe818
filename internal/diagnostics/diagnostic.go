package diagnostics

import (
	"fmt"
	"strings"

	"github.com/silversquirl/elide-c/internal/token"
	"github.com/silversquirl/elide-c/internal/typesystem"
)

// DiagnosticError is the single error a failed annotation pass reports.
// Expected and Actual are set when the failure is a comparison between two
// types; Node is the offending tree node when one is known.
type DiagnosticError struct {
	Code     ErrorCode
	Token    token.Token
	Message  string
	Expected typesystem.Type
	Actual   typesystem.Type
	Node     any
}

// NewError creates a diagnostic with the given code, position and message.
func NewError(code ErrorCode, tok token.Token, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: message}
}

// Errorf is NewError with a formatted message.
func Errorf(code ErrorCode, tok token.Token, format string, args ...any) *DiagnosticError {
	return NewError(code, tok, fmt.Sprintf(format, args...))
}

// WithTypes attaches the expected and actual types.
func (e *DiagnosticError) WithTypes(expected, actual typesystem.Type) *DiagnosticError {
	e.Expected = expected
	e.Actual = actual
	return e
}

// WithNode attaches the offending node.
func (e *DiagnosticError) WithNode(node any) *DiagnosticError {
	e.Node = node
	return e
}

func (e *DiagnosticError) Error() string {
	var sb strings.Builder
	if e.Token.Line > 0 {
		fmt.Fprintf(&sb, "%d:%d: ", e.Token.Line, e.Token.Column)
	}
	fmt.Fprintf(&sb, "error [%s]: %s", string(e.Code), e.Message)
	if e.Expected != nil || e.Actual != nil {
		fmt.Fprintf(&sb, " (expected %s, got %s)", typeOrNone(e.Expected), typeOrNone(e.Actual))
	}
	return sb.String()
}

// Is matches against an ErrorCode or another DiagnosticError with the same code.
func (e *DiagnosticError) Is(target error) bool {
	switch t := target.(type) {
	case ErrorCode:
		return e.Code == t
	case *DiagnosticError:
		return e.Code == t.Code
	}
	return false
}

func typeOrNone(t typesystem.Type) string {
	if t == nil {
		return "nothing"
	}
	return t.String()
}
