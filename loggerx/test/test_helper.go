package loggerxtest

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/clinia/featuretoggles/loggerx"
	"github.com/stretchr/testify/require"
)

func NewTestLogger(t testing.TB) *loggerx.Logger {
	t.Helper()
	return loggerx.NewNoop()
}

// NewTestLoggerWithJSONBuffer returns a debug level logger writing JSON lines to the buffer.
func NewTestLoggerWithJSONBuffer(t testing.TB) (*loggerx.Logger, *bytes.Buffer) {
	t.Helper()
	buf := new(bytes.Buffer)
	return loggerx.New(buf, slog.LevelDebug), buf
}

// DecodeEntries parses every JSON line written to the buffer.
func DecodeEntries(t testing.TB, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	entries := []map[string]any{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}
