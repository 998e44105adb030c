package prop

import "fmt"

// ScanError wraps the error message returned by the scanner with the position
// of the character that caused it.
type ScanError struct {
	pos     int
	message string
}

// NewScanError creates a new scanner error
func NewScanError(pos int, message string) error {
	return &ScanError{pos, message}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf(
		"[col %d] Error: %s",
		err.pos+1,
		err.message,
	)
}

// ParseError wraps the error message returned by the parser with the token
// that violated the grammar.
type ParseError struct {
	token   *Token
	message string
}

// NewParseError creates a new parser error
func NewParseError(token *Token, message string) error {
	return &ParseError{token, message}
}

func (err *ParseError) Error() string {
	if err.token.Typ == EOF {
		return fmt.Sprintf(
			"[col %d] Error at end: %s",
			err.token.Pos+1,
			err.message,
		)
	}
	return fmt.Sprintf(
		"[col %d] Error at '%s': %s",
		err.token.Pos+1,
		err.token.Lexeme,
		err.message,
	)
}
