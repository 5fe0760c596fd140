package rasperi

import "log"

// Diagnostics is a minimal structured-logging sink. The recoverable
// error cases enumerated in §7 (degenerate projection, out-of-range
// texel access, mipmap precondition failures, cache corruption) log
// through here and continue rather than panic, mirroring the source's
// qDebug()-and-carry-on error handling.
type Diagnostics interface {
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type logDiagnostics struct {
	logger *log.Logger
}

func (d *logDiagnostics) Warnf(format string, args ...any) {
	d.logger.Printf("WARN "+format, args...)
}

func (d *logDiagnostics) Errorf(format string, args ...any) {
	d.logger.Printf("ERROR "+format, args...)
}

// Diag is the package-wide diagnostics sink. Tests and CLI callers may
// reassign it (e.g. to a buffering sink) to inspect emitted warnings.
var Diag Diagnostics = &logDiagnostics{logger: log.Default()}

// NewLogDiagnostics builds a Diagnostics backed by the given stdlib
// logger, letting callers redirect diagnostic output (e.g. to a file or
// to os.Stderr with a custom prefix) without replacing the interface.
func NewLogDiagnostics(logger *log.Logger) Diagnostics {
	return &logDiagnostics{logger: logger}
}

// discardDiagnostics silently drops everything; used by tests that
// intentionally trigger a diagnostic path and don't want it on stderr.
type discardDiagnostics struct{}

func (discardDiagnostics) Warnf(string, ...any)  {}
func (discardDiagnostics) Errorf(string, ...any) {}

var DiscardDiagnostics Diagnostics = discardDiagnostics{}
