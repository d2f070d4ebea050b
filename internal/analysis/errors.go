package analysis

import "errors"

// Error classes returned by the analysis functions. Concrete failures wrap
// one of these, so callers should test with errors.Is.
var (
	// ErrConfiguration reports an unusable weight vector or option.
	ErrConfiguration = errors.New("configuration error")
	// ErrEmptyInput reports an operation that needs at least one row.
	ErrEmptyInput = errors.New("empty input")
	// ErrSchema reports a malformed table: missing factor columns,
	// duplicate entity IDs or unknown factor names.
	ErrSchema = errors.New("schema error")
)
