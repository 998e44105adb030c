package prop

// Evaluate computes the truth value of a single expression. It is the only
// entry point into the package: the whole input is processed in one pass and
// no state survives between calls. On malformed input it returns a *ScanError
// or a *ParseError describing the first problem found.
func Evaluate(source string) (bool, error) {
	scanner := NewScanner([]rune(source))
	parser := NewParser(scanner)
	return parser.Evaluate()
}
