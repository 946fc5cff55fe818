package diagnostics

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/silversquirl/elide-c/internal/token"
	"github.com/silversquirl/elide-c/internal/typesystem"
)

func TestDiagnosticErrorIs(t *testing.T) {
	err := NewError(ErrNotMutable, token.Token{Line: 3, Column: 7}, "cannot assign to x")
	wrapped := fmt.Errorf("annotating main: %w", err)

	if !errors.Is(wrapped, ErrNotMutable) {
		t.Errorf("errors.Is(wrapped, ErrNotMutable) = false")
	}
	if errors.Is(wrapped, ErrTypeMismatch) {
		t.Errorf("errors.Is(wrapped, ErrTypeMismatch) = true")
	}

	var de *DiagnosticError
	if !errors.As(wrapped, &de) || de.Code != ErrNotMutable {
		t.Fatalf("errors.As did not recover the diagnostic")
	}
}

func TestDiagnosticErrorMessage(t *testing.T) {
	err := Errorf(ErrTypeMismatch, token.Token{Line: 2, Column: 5}, "operands of %s differ", "+").
		WithTypes(typesystem.I32, typesystem.Float64)

	want := "2:5: error [T001]: operands of + differ (expected i32, got f64)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	noPos := NewError(ErrUnknownIdentifier, token.Token{}, "unknown identifier y")
	if strings.Contains(noPos.Error(), ":0") {
		t.Errorf("position should be omitted, got %q", noPos.Error())
	}
}

func TestErrorCodeDescription(t *testing.T) {
	if ErrArgumentCountMismatch.Description() != "argument count mismatch" {
		t.Errorf("unexpected description %q", ErrArgumentCountMismatch.Description())
	}
	if ErrorCode("X999").Description() != "unknown error" {
		t.Errorf("unknown codes should have a fallback description")
	}
}

func TestEmitterPlain(t *testing.T) {
	var buf bytes.Buffer
	em := NewEmitter(&buf, ColorAuto)

	em.Emit("unit.yaml", NewError(ErrReturnTypeMismatch, token.Token{Line: 4, Column: 9}, "return value does not match").
		WithTypes(typesystem.Void, typesystem.I32))

	out := buf.String()
	for _, want := range []string{"unit.yaml:4:9:", "error[T012]:", "expected: void", "got: i32"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "T012:") {
		t.Errorf("header should carry the bare code:\n%s", out)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("buffer output must not be coloured:\n%s", out)
	}
}

func TestEmitterColorAlways(t *testing.T) {
	var buf bytes.Buffer
	em := NewEmitter(&buf, ColorAlways)
	em.Emit("unit.yaml", errors.New("boom"))
	if !strings.Contains(buf.String(), ansiRed) {
		t.Errorf("expected coloured output, got %q", buf.String())
	}
}
