package diagnostics

// ErrorCode identifies a kind of annotation failure. Codes are errors
// themselves, so errors.Is(err, ErrNotMutable) matches any DiagnosticError
// carrying that code.
type ErrorCode string

func (c ErrorCode) Error() string { return string(c) + ": " + c.Description() }

// Type annotation errors (T prefix)
const (
	ErrTypeMismatch           ErrorCode = "T001"
	ErrVoidOperand            ErrorCode = "T002"
	ErrUnsupportedOperandKind ErrorCode = "T003"
	ErrNotAReference          ErrorCode = "T004"
	ErrNotMutable             ErrorCode = "T005"
	ErrNotAPointer            ErrorCode = "T006"
	ErrNotAFunction           ErrorCode = "T007"
	ErrArgumentCountMismatch  ErrorCode = "T008"
	ErrUnknownField           ErrorCode = "T009"
	ErrUnknownIdentifier      ErrorCode = "T010"
	ErrInvalidCast            ErrorCode = "T011"
	ErrReturnTypeMismatch     ErrorCode = "T012"
	ErrUnsupportedLiteral     ErrorCode = "T013"
	ErrAlreadyAnnotated       ErrorCode = "T014"
	ErrNoEnclosingFunction    ErrorCode = "T015"
	ErrRedeclared             ErrorCode = "T016"
	ErrMalformedNode          ErrorCode = "T017"
	ErrDepthExceeded          ErrorCode = "T018"
	ErrCancelled              ErrorCode = "T019"
)

// Loader errors (L prefix)
const (
	ErrLoadSyntax  ErrorCode = "L001"
	ErrLoadUnknown ErrorCode = "L002"
	ErrLoadMissing ErrorCode = "L003"
)

var descriptions = map[ErrorCode]string{
	ErrTypeMismatch:           "type mismatch",
	ErrVoidOperand:            "void operand",
	ErrUnsupportedOperandKind: "unsupported operand kind",
	ErrNotAReference:          "not a reference",
	ErrNotMutable:             "not mutable",
	ErrNotAPointer:            "not a pointer",
	ErrNotAFunction:           "not a function",
	ErrArgumentCountMismatch:  "argument count mismatch",
	ErrUnknownField:           "unknown field",
	ErrUnknownIdentifier:      "unknown identifier",
	ErrInvalidCast:            "invalid cast",
	ErrReturnTypeMismatch:     "return type mismatch",
	ErrUnsupportedLiteral:     "unsupported literal",
	ErrAlreadyAnnotated:       "node already annotated",
	ErrNoEnclosingFunction:    "no enclosing function",
	ErrRedeclared:             "redeclared",
	ErrMalformedNode:          "malformed node",
	ErrDepthExceeded:          "nesting too deep",
	ErrCancelled:              "cancelled",
	ErrLoadSyntax:             "malformed tree document",
	ErrLoadUnknown:            "unknown tree element",
	ErrLoadMissing:            "missing tree element",
}

// Description returns the short human-readable name of the code.
func (c ErrorCode) Description() string {
	if d, ok := descriptions[c]; ok {
		return d
	}
	return "unknown error"
}
