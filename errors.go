package rasperi

import "errors"

// The following sentinel errors enumerate the §7 error taxonomy's
// cases that callers may need to branch on (as opposed to the
// recoverable, log-and-continue cases handled directly through the
// Diagnostics sink). The package's own functions report these cases
// with separate fmt.Errorf errors that do not wrap these values, so
// errors.Is against them does not match.
var (
	ErrCacheCorrupt     = errors.New("rasperi: texture cache corrupt or bad magic")
	ErrUnsupportedHDR   = errors.New("rasperi: unsupported or malformed HDR file")
	ErrMipmapPrecondition = errors.New("rasperi: texture does not satisfy mipmap preconditions (square power-of-two >= 16)")
	ErrMissingGeometry  = errors.New("rasperi: glTF primitive missing required POSITION attribute")
)
