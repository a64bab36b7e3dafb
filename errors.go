package seqbuf

import "github.com/teenjuna/seqbuf/internal/raw"

var (
	// ErrAllocation is returned when storage of the required capacity can't be allocated.
	// The buffer is left as it was before the call.
	ErrAllocation = raw.ErrAllocation
)
