package merge

import "errors"

var (
	// ErrEmptyInput indicates that no curves were supplied to the grid resolver.
	ErrEmptyInput = errors.New("merge: no input curves supplied")

	// ErrInsufficientInput indicates that fewer than two well records were
	// supplied to the merge orchestrator.
	ErrInsufficientInput = errors.New("merge: at least two well records are required")

	// ErrInvalidCurveData indicates that a curve's declared depth geometry does
	// not match its sample count, or that it contains non-finite non-null data.
	ErrInvalidCurveData = errors.New("merge: invalid curve data")

	// ErrDuplicateMnemonic indicates an attempt to add a curve to a well record
	// that already holds a curve with the same mnemonic.
	ErrDuplicateMnemonic = errors.New("merge: duplicate curve mnemonic")

	// ErrMissingCurve indicates that a required mnemonic is absent from a well
	// record. The merge engine itself never requires specific mnemonics; this is
	// surfaced by downstream calculators.
	ErrMissingCurve = errors.New("merge: required curve not present")
)
