package transport

import "errors"

// ErrTransport reports a fault in the transport layer itself (as opposed
// to an error returned by the per-rank function Run executes): fatal, no
// retries, no partial results.
var ErrTransport = errors.New("transport: fault in collective communication layer")
