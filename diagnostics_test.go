package rasperi

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogDiagnosticsPrefixesWarnAndError(t *testing.T) {
	var buf bytes.Buffer
	d := NewLogDiagnostics(log.New(&buf, "", 0))

	d.Warnf("low mip %d", 3)
	d.Errorf("bad magic %x", 0xff)

	out := buf.String()
	require.Contains(t, out, "WARN low mip 3")
	require.Contains(t, out, "ERROR bad magic ff")
}

func TestDiscardDiagnosticsDropsEverything(t *testing.T) {
	// Just asserts it doesn't panic; there's nothing observable to
	// assert on beyond that since it discards by design.
	DiscardDiagnostics.Warnf("x")
	DiscardDiagnostics.Errorf("y")
}
