package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) Logger {
	return NewWithConfig(Config{
		Name:   "test",
		Format: FormatJSON,
		Level:  slog.LevelDebug,
		Writer: buf,
	})
}

func TestErrorReturnsError(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	err := log.Error("something failed", "key", "value")
	require.Error(t, err)
	assert.Equal(t, "something failed", err.Error())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "something failed", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "test", entry["package"])
}

func TestErrorWithTypeWrapsSentinel(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	sentinel := errors.New("not found")
	err := log.ErrorWithType(sentinel, "record missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, sentinel))
	assert.Contains(t, err.Error(), "record missing")
}

func TestErrReturnsOriginalError(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	original := errors.New("db down")
	err := log.Err("query failed", original, "table", "artifacts")

	assert.Same(t, original, err)
}

func TestFunctionAndWithChain(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf).Function("DoThing").With("id", 7)

	log.Info("done")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "DoThing", entry["function"])
	assert.Equal(t, float64(7), entry["id"])
}

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := ContextWithTraceID(context.Background(), "trace-123")
	assert.Equal(t, "trace-123", TraceIDFromContext(ctx))

	var buf bytes.Buffer
	log := newBufferLogger(&buf).TraceFromContext(ctx)
	log.Info("traced")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trace-123", entry["traceID"])
}

func TestTraceFromContextWithoutID(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	same := log.TraceFromContext(context.Background())
	assert.Equal(t, log, same)
}

func TestHasTestFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "verbose key=value form", args: []string{"pkg.test", "-test.v=true"}, want: true},
		{name: "run filter", args: []string{"pkg.test", "-test.run=TestFoo"}, want: true},
		{name: "timeout", args: []string{"pkg.test", "-test.timeout=10m0s"}, want: true},
		{name: "bare verbose flag", args: []string{"pkg.test", "-test.v"}, want: true},
		{name: "regular binary", args: []string{"musea", "-verbose"}, want: false},
		{name: "no flags", args: []string{"musea"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasTestFlag(tt.args))
		})
	}
}

func TestIsTestModeDetectsTestBinary(t *testing.T) {
	// go test always passes -test.* flags to the test binary
	assert.True(t, isTestMode())
}
