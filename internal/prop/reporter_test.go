package prop

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleReporterInit(t *testing.T) {
	assert := assert.New(t)

	r := NewSimpleReporter(io.Discard)

	assert.False(r.HadScanError())
	assert.False(r.HadParseError())
	assert.False(r.HadError())
}

func TestSimpleReporterSendScanError(t *testing.T) {
	assert := assert.New(t)
	err := NewScanError(2, "Unexpected character '#'.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal(fmt.Sprintf("%v\n", err), out.String())
	assert.True(r.HadScanError())
	assert.False(r.HadParseError())
	assert.True(r.HadError())
}

func TestSimpleReporterSendParseError(t *testing.T) {
	assert := assert.New(t)
	err := NewParseError(&Token{END, ".", 2}, "Expect ')' after expression.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal(fmt.Sprintf("%v\n", err), out.String())
	assert.False(r.HadScanError())
	assert.True(r.HadParseError())
	assert.True(r.HadError())
}

func TestSimpleReporterSendErrors(t *testing.T) {
	assert := assert.New(t)
	err1 := NewScanError(0, "Unexpected character '#'.")
	err2 := NewParseError(&Token{EOF, "", 1}, "Expect '.' at end of expression.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err1)
	r.Report(err2)

	assert.Equal(fmt.Sprintf("%v\n%v\n", err1, err2), out.String())
	assert.True(r.HadScanError())
	assert.True(r.HadParseError())
}

func TestSimpleReporterSendUnknownError(t *testing.T) {
	assert := assert.New(t)
	err := errors.New("test error")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal(fmt.Sprintf("%v\n", err), out.String())
	assert.True(r.HadError())
}

func TestSimpleReporterReset(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(NewScanError(0, "Unexpected character '#'."))
	r.Report(NewParseError(&Token{EOF, "", 1}, "Expect '.' at end of expression."))

	r.Reset()
	assert.False(r.HadScanError())
	assert.False(r.HadParseError())
	assert.False(r.HadError())
}
