// pkg/registry/errors.go
package registry

import "fmt"

// LookupReason classifies why a lookup failed.
type LookupReason int

const (
	// ReasonRequestFailed covers transport errors and non-200 responses.
	ReasonRequestFailed LookupReason = iota
	// ReasonNoRecord means the page carried no record tables, which is how
	// the registry renders an unknown N-NUMBER.
	ReasonNoRecord
	// ReasonParseFailed means record tables were present but none of the
	// expected fields could be extracted from them.
	ReasonParseFailed
)

func (r LookupReason) String() string {
	switch r {
	case ReasonRequestFailed:
		return "request failed"
	case ReasonNoRecord:
		return "no record"
	case ReasonParseFailed:
		return "parse failed"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// LookupError reports a failed lookup for a single N-NUMBER. Whatever the
// reason, callers leave the row's registry columns empty and continue.
type LookupError struct {
	NNumber string
	Reason  LookupReason
	Err     error
}

func (e *LookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lookup %s: %s: %v", e.NNumber, e.Reason, e.Err)
	}
	return fmt.Sprintf("lookup %s: %s", e.NNumber, e.Reason)
}

// Unwrap returns the underlying cause, if any.
func (e *LookupError) Unwrap() error {
	return e.Err
}
