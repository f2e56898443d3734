//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"io"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpTogglePause,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpTogglePause,
			err:      errors.New("connection reset"),
			expected: "Failed to toggle pause: connection reset",
		},
		{
			name:     "volume operation",
			op:       OpVolume,
			err:      errors.New("no mixer"),
			expected: "Failed to change volume: no mixer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.op, tt.err); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(OpRefresh, nil) != nil {
		t.Fatal("Wrap(nil) should be nil")
	}

	err := Wrap(OpRefresh, io.EOF)
	if !errors.Is(err, io.EOF) {
		t.Error("wrapped error should match io.EOF")
	}
	if got := err.Error(); got != "refresh state: EOF" {
		t.Errorf("Error() = %q", got)
	}
	op, ok := OpOf(err)
	if !ok || op != OpRefresh {
		t.Errorf("OpOf() = %q, %v", op, ok)
	}
	if _, ok := OpOf(io.EOF); ok {
		t.Error("OpOf on a plain error should report false")
	}
}
