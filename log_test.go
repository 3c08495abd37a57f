package gwaskit

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	log := NewLogger(&buf, false)
	log.Debug("hidden")
	log.Info("Reading input file")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "Reading input file") {
		t.Fatalf("got %q", out)
	}

	buf.Reset()
	NewLogger(&buf, true).Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("debug not logged when verbose: %q", buf.String())
	}
}
