package prop

import "fmt"

// Token represents a group of characters with additional information that was
// obtained during the scanning phase.
type Token struct {
	Typ    TokenType
	Lexeme string
	Pos    int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, pos int) *Token {
	return &Token{typ, lexeme, pos}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s %d", t.Typ.String(), t.Lexeme, t.Pos)
}

const (
	// Single-character tokens
	LEFT_PAREN TokenType = iota
	RIGHT_PAREN
	AND
	OR
	NOT
	TRUE
	FALSE
	END

	// Two-character tokens
	IMPLIES

	EOF
)

// TokenType identifies which lexeme a token was scanned from.
type TokenType uint

func (tt TokenType) String() string {
	switch tt {
	case LEFT_PAREN:
		return "("
	case RIGHT_PAREN:
		return ")"
	case AND:
		return "^"
	case OR:
		return "v"
	case NOT:
		return "~"
	case TRUE:
		return "T"
	case FALSE:
		return "F"
	case END:
		return "."
	case IMPLIES:
		return "->"
	case EOF:
		return "EOF"
	}
	return ""
}
