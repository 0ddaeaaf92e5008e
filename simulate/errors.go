package simulate

import (
	"fmt"

	"github.com/JeffJassky/pyhsim/common"
)

// ErrorKind is the closed set of ways a simulation run can fail. It is a
// hand-written string enum rather than an int iota so it serializes
// directly to JSON/TOML diagnostic output without a lookup table.
type ErrorKind string

const (
	// ErrValidation means the registry or timeline was internally
	// inconsistent (unknown keys, negative durations).
	ErrValidation ErrorKind = "ValidationError"
	// ErrConfig means the subject or profile contradicted a constraint
	// (e.g. cycleDay set on a male subject).
	ErrConfig ErrorKind = "ConfigError"
	// ErrNumeric means the integration produced NaN/Inf or a blow-up.
	ErrNumeric ErrorKind = "NumericError"
	// ErrCancelled means the caller's token tripped mid-run. Not
	// surfaced as a failure to the caller — Response.Error is still set
	// so logging can distinguish it from a clean completion, but callers
	// should treat a Cancelled response as valid partial output.
	ErrCancelled ErrorKind = "Cancelled"
)

func (k ErrorKind) String() string {
	return string(k)
}

// SimError is the diagnostic payload Response.Error carries: the error
// kind plus enough context (signal key, minute) for a UI to point at the
// exact failure, per the core's contract of actionable diagnostics.
type SimError struct {
	Kind      ErrorKind
	SignalKey common.SignalKey
	Minute    float64
	Detail    string
	Err       error
}

func (e *SimError) Error() string {
	if e.SignalKey != "" {
		return fmt.Sprintf("simulate: %s at minute %.1f on signal %q: %s", e.Kind, e.Minute, e.SignalKey, e.Detail)
	}
	return fmt.Sprintf("simulate: %s: %s", e.Kind, e.Detail)
}

func (e *SimError) Unwrap() error {
	return e.Err
}

func validationErrorf(format string, args ...any) *SimError {
	return &SimError{Kind: ErrValidation, Detail: fmt.Sprintf(format, args...)}
}

func configErrorf(err error) *SimError {
	return &SimError{Kind: ErrConfig, Detail: err.Error(), Err: err}
}
