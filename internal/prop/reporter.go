package prop

import (
	"errors"
	"fmt"
	"io"
)

// Reporter defines the interface for structures that can display errors to
// the user. A reporter is defined to separate error reporting code from error
// displaying code.
type Reporter interface {
	Report(err error)
	HadScanError() bool
	HadParseError() bool
	HadError() bool
	Reset()
}

// SimpleReporter writes errors as-is to the inner writer while keeping track
// of which kinds of errors were seen.
type SimpleReporter struct {
	writer      io.Writer
	hadScanErr  bool
	hadParseErr bool
}

// NewSimpleReporter creates a reporter that writes to the given writer
func NewSimpleReporter(writer io.Writer) *SimpleReporter {
	return &SimpleReporter{writer, false, false}
}

func (reporter *SimpleReporter) Report(err error) {
	var scanErr *ScanError
	var parseErr *ParseError
	switch {
	case errors.As(err, &scanErr):
		reporter.hadScanErr = true
	case errors.As(err, &parseErr):
		reporter.hadParseErr = true
	default:
		reporter.hadParseErr = true
	}
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadScanError() bool {
	return reporter.hadScanErr
}

func (reporter *SimpleReporter) HadParseError() bool {
	return reporter.hadParseErr
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadScanErr || reporter.hadParseErr
}

// Reset clears the recorded errors so the reporter can be reused for the next
// input line.
func (reporter *SimpleReporter) Reset() {
	reporter.hadScanErr = false
	reporter.hadParseErr = false
}
