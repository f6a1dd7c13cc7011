package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID returns a new, lexically sortable identifier. ulid.Make uses a
// process-wide monotonic entropy source, so ids created within the same
// millisecond still sort in creation order.
func NewULID() string {
	return ulid.Make().String()
}

// IsULID reports whether s parses as a ULID.
func IsULID(s string) bool {
	if len(s) != ulid.EncodedSize {
		return false
	}
	_, err := ulid.ParseStrict(s)
	return err == nil
}
