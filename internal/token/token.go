package token

import "fmt"

// Token is the source position a parser attaches to every node.
// Lexing is not part of this module; only the position survives.
type Token struct {
	Lexeme string
	Line   int
	Column int
}

func (t Token) String() string {
	if t.Line == 0 {
		return t.Lexeme
	}
	return fmt.Sprintf("%d:%d", t.Line, t.Column)
}

// IsZero reports whether the token carries no position.
func (t Token) IsZero() bool {
	return t.Line == 0 && t.Column == 0 && t.Lexeme == ""
}
