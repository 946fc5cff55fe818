package analyzer

import (
	"github.com/silversquirl/elide-c/internal/diagnostics"
	"github.com/silversquirl/elide-c/internal/token"
	"github.com/silversquirl/elide-c/internal/typesystem"
)

var noToken = token.Token{}

type positioned interface {
	GetToken() token.Token
}

func nodeError(code diagnostics.ErrorCode, node positioned, format string, args ...any) *diagnostics.DiagnosticError {
	return diagnostics.Errorf(code, node.GetToken(), format, args...).WithNode(node)
}

func mismatch(node positioned, expected, actual typesystem.Type, format string, args ...any) *diagnostics.DiagnosticError {
	return nodeError(diagnostics.ErrTypeMismatch, node, format, args...).WithTypes(expected, actual)
}

func unsupported(node positioned, actual typesystem.Type, format string, args ...any) *diagnostics.DiagnosticError {
	err := nodeError(diagnostics.ErrUnsupportedOperandKind, node, format, args...)
	err.Actual = actual
	return err
}

func isVoid(t typesystem.Type) bool {
	return typesystem.KindOf(t) == typesystem.KindVoid
}
