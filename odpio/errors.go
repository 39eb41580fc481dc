package odpio

import "errors"

// ErrMalformedLine reports a non-blank line that does not parse as
// exactly two non-negative integers.
var ErrMalformedLine = errors.New("odpio: malformed edge line")
