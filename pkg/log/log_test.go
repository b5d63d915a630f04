package log_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/flick/pkg/log"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		"debug":           {input: "debug", want: slog.LevelDebug},
		"info":            {input: "info", want: slog.LevelInfo},
		"warn":            {input: "warn", want: slog.LevelWarn},
		"warning alias":   {input: "warning", want: slog.LevelWarn},
		"error":           {input: "error", want: slog.LevelError},
		"case insensitve": {input: "INFO", want: slog.LevelInfo},
		"unknown":         {input: "trace", wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			lvl, err := log.GetLevel(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, log.ErrUnknownLogLevel)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, lvl)
		})
	}
}

func TestGetFormat(t *testing.T) {
	t.Parallel()

	f, err := log.GetFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, log.FormatJSON, f)

	_, err = log.GetFormat("xml")
	require.ErrorIs(t, err, log.ErrUnknownLogFormat)
}

func TestCreateHandlerWithStrings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	h, err := log.CreateHandlerWithStrings(&buf, "info", "json")
	require.NoError(t, err)

	logger := slog.New(h)
	logger.Info("hello", slog.String("k", "v"))

	out := buf.String()
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"k":"v"`)

	_, err = log.CreateHandlerWithStrings(&buf, "bogus", "json")
	require.ErrorIs(t, err, log.ErrInvalidArgument)

	_, err = log.CreateHandlerWithStrings(&buf, "info", "bogus")
	require.ErrorIs(t, err, log.ErrInvalidArgument)
}

func TestRingBuffer(t *testing.T) {
	t.Parallel()

	b := log.NewRingBuffer(3)
	assert.Equal(t, 3, b.Capacity())
	assert.Equal(t, 0, b.Size())
	assert.False(t, b.IsFull())

	for _, s := range []string{"one\n", "two\n", "three\n"} {
		n, err := b.Write([]byte(s))
		require.NoError(t, err)
		assert.Equal(t, len(s), n)
	}

	assert.True(t, b.IsFull())

	// A fourth entry overwrites the oldest.
	_, err := b.Write([]byte("four\n"))
	require.NoError(t, err)

	var out strings.Builder

	_, err = b.WriteTo(&out)
	require.NoError(t, err)

	assert.Equal(t, "two\nthree\nfour\n", out.String())
	assert.Equal(t, 0, b.Size(), "WriteTo drains the buffer")
}

func TestRingBuffer_Defaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100, log.NewRingBuffer(0).Capacity())
	assert.Equal(t, 100, log.NewRingBuffer(-5).Capacity())
}

func TestRingBuffer_EmptyWrite(t *testing.T) {
	t.Parallel()

	b := log.NewRingBuffer(2)

	n, err := b.Write(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, b.Size())
}
