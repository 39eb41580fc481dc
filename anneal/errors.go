package anneal

import "errors"

// ErrEmptyGraph reports an initial graph with no vertices — there is no
// partition to evaluate.
var ErrEmptyGraph = errors.New("anneal: initial graph has no vertices")
