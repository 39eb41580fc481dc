package gen

import "errors"

var (
	// ErrInvalidDegree reports an (n, d) pair RandomRegular does not
	// build: n < 1, d outside [0, n), n*d odd, or d == 0 (no edges).
	ErrInvalidDegree = errors.New("gen: invalid (n, d) combination for a simple regular graph")
	// ErrConstructFailed reports that stub-matching exhausted its retry
	// budget without producing a loop-free, multi-edge-free pairing.
	ErrConstructFailed = errors.New("gen: failed to realize a simple d-regular graph within attempt budget")
)
