package prop

// maxNestingDepth bounds how deep grouping and negation may recurse. The
// grammar itself allows arbitrary nesting, but unbounded recursion on
// adversarial input would exhaust the stack.
const maxNestingDepth = 64

// Parser evaluates an expression while descending through the grammar rules,
// one method per precedence level. It pulls tokens from the scanner with a
// single token of lookahead and never backtracks; since no part of the
// expression is ever revisited, each rule computes its truth value directly
// instead of building a syntax tree.
type Parser struct {
	scanner *Scanner
	current *Token
	depth   int
}

// NewParser creates a new parser pulling tokens from the given scanner
func NewParser(scanner *Scanner) *Parser {
	return &Parser{scanner, nil, 0}
}

// Evaluate parses the expression and returns its truth value. The expression
// must be terminated by '.'; the terminator is consumed but nothing after it
// is scanned.
func (parser *Parser) Evaluate() (bool, error) {
	if err := parser.advance(); err != nil {
		return false, err
	}
	val, err := parser.implication()
	if err != nil {
		return false, err
	}
	if !parser.check(END) {
		return false, NewParseError(
			parser.current,
			"Expect '.' at end of expression.",
		)
	}
	return val, nil
}

// implication --> or ( "->" implication )? ;
//
// The rule recurses on its right operand, so chained implications group from
// the right. Both operands are always evaluated; implication itself does not
// short-circuit since the right operand must still be well-formed.
func (parser *Parser) implication() (bool, error) {
	left, err := parser.or()
	if err != nil {
		return false, err
	}
	if parser.check(IMPLIES) {
		if err := parser.advance(); err != nil {
			return false, err
		}
		right, err := parser.implication()
		if err != nil {
			return false, err
		}
		return !left || right, nil
	}
	return left, nil
}

// or --> and ( "v" and )* ;
func (parser *Parser) or() (bool, error) {
	val, err := parser.and()
	if err != nil {
		return false, err
	}
	for parser.check(OR) {
		if err := parser.advance(); err != nil {
			return false, err
		}
		right, err := parser.and()
		if err != nil {
			return false, err
		}
		val = val || right
	}
	return val, nil
}

// and --> literal ( "^" literal )* ;
func (parser *Parser) and() (bool, error) {
	val, err := parser.literal()
	if err != nil {
		return false, err
	}
	for parser.check(AND) {
		if err := parser.advance(); err != nil {
			return false, err
		}
		right, err := parser.literal()
		if err != nil {
			return false, err
		}
		val = val && right
	}
	return val, nil
}

// literal --> "~" literal | atom ;
func (parser *Parser) literal() (bool, error) {
	if parser.check(NOT) {
		tok := parser.current
		if err := parser.enterNesting(tok); err != nil {
			return false, err
		}
		if err := parser.advance(); err != nil {
			return false, err
		}
		val, err := parser.literal()
		parser.depth--
		if err != nil {
			return false, err
		}
		return !val, nil
	}
	return parser.atom()
}

// atom --> "T" | "F" | "(" implication ")" ;
func (parser *Parser) atom() (bool, error) {
	switch parser.current.Typ {
	case TRUE:
		return true, parser.advance()
	case FALSE:
		return false, parser.advance()
	case LEFT_PAREN:
		tok := parser.current
		if err := parser.enterNesting(tok); err != nil {
			return false, err
		}
		if err := parser.advance(); err != nil {
			return false, err
		}
		val, err := parser.implication()
		parser.depth--
		if err != nil {
			return false, err
		}
		if err := parser.consume(
			RIGHT_PAREN,
			"Expect ')' after expression.",
		); err != nil {
			return false, err
		}
		return val, nil
	}
	return false, NewParseError(parser.current, "Expect 'T', 'F', '~', or '('.")
}

// enterNesting records one more level of grouping/negation and fails once the
// recursion bound is exceeded.
func (parser *Parser) enterNesting(tok *Token) error {
	parser.depth++
	if parser.depth > maxNestingDepth {
		parser.depth--
		return NewParseError(tok, "Expression is nested too deeply.")
	}
	return nil
}

func (parser *Parser) consume(typ TokenType, message string) error {
	if !parser.check(typ) {
		return NewParseError(parser.current, message)
	}
	return parser.advance()
}

func (parser *Parser) check(tt TokenType) bool {
	return parser.current.Typ == tt
}

// advance pulls the next token from the scanner into the lookahead slot,
// propagating any scan error as-is.
func (parser *Parser) advance() error {
	tok, err := parser.scanner.Next()
	if err != nil {
		return err
	}
	parser.current = tok
	return nil
}
