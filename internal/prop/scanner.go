package prop

import "fmt"

// Scanner produces tokens from the input source one at a time. Tokens are
// only scanned when asked for, so characters after a consumed expression
// terminator are never looked at.
type Scanner struct {
	start   int
	current int
	source  []rune
}

// NewScanner creates a new token scanner for a single expression
func NewScanner(source []rune) *Scanner {
	scanner := new(Scanner)
	scanner.start = 0
	scanner.current = 0
	scanner.source = source
	return scanner
}

// Next scans and returns the next token in the source, skipping any
// whitespace before it. Once the source is exhausted, every call returns a
// token of type EOF.
func (scanner *Scanner) Next() (*Token, error) {
	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t', '\n':
		// Single character tokens
		case '(':
			return scanner.makeToken(LEFT_PAREN), nil
		case ')':
			return scanner.makeToken(RIGHT_PAREN), nil
		case '^':
			return scanner.makeToken(AND), nil
		case 'v':
			return scanner.makeToken(OR), nil
		case '~':
			return scanner.makeToken(NOT), nil
		case 'T':
			return scanner.makeToken(TRUE), nil
		case 'F':
			return scanner.makeToken(FALSE), nil
		case '.':
			return scanner.makeToken(END), nil
		// Double character tokens
		case '-':
			if scanner.match('>') {
				return scanner.makeToken(IMPLIES), nil
			}
			return nil, NewScanError(scanner.start, "Expect '>' after '-'.")
		default:
			return nil, NewScanError(
				scanner.start,
				fmt.Sprintf("Unexpected character '%c'.", r),
			)
		}
	}
	return NewToken(EOF, "", scanner.current), nil
}

// makeToken creates a token of the given type from the lexeme between `start`
// and `current`
func (scanner *Scanner) makeToken(typ TokenType) *Token {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	return NewToken(typ, lexeme, scanner.start)
}

// hasNext returns true if the scanner has not read past the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// match checks if the rune at the current position is equal to the given rune,
// if they are equal, consumes the rune at the current position.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.source[scanner.current] != expected {
		return false
	}
	scanner.current++
	return true
}
