package codec

import "errors"

// errInvalidMaxDepth is a configuration-time error, distinct from the
// decode-time errs taxonomy: it never reaches a caller via Config, only via
// WithMaxDepth/NewConfig before any encode or decode begins.
var errInvalidMaxDepth = errors.New("codec: max depth must be >= 1")
