// Package las reads and writes CWLS LAS 2.0 well-log files and converts them
// to and from merge.WellRecord. Only unwrapped (WRAP. NO) files are supported.
//
// On disk, absent samples carry the file's declared null sentinel
// (conventionally -999.25); in memory they become NaN. The translation happens
// entirely inside this package.
package las

import (
	"errors"
	"fmt"
)

// DefaultNull is the conventional LAS null sentinel, used when writing records
// and when a file fails to declare its own.
const DefaultNull = -999.25

// nullTolerance is the slack used when matching data values against the
// declared null sentinel; LAS bodies frequently round the sentinel.
const nullTolerance = 1e-4

// ErrInvalidFormat indicates the input is not a parseable LAS 2.0 file.
var ErrInvalidFormat = errors.New("las: invalid file format")

// ErrWrappedFile indicates a WRAP. YES file, which this reader does not
// support.
var ErrWrappedFile = errors.New("las: wrapped files are not supported")

// ParseError wraps a format failure with the line it occurred on.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("las: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// curveInfo is one ~Curve section entry: mnemonic, unit, and description in
// column order.
type curveInfo struct {
	mnemonic    string
	unit        string
	description string
}
