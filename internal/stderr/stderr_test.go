//go:build !windows

package stderr

import (
	"fmt"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureLogsLines(t *testing.T) {
	logger, hook := logtest.NewNullLogger()

	require.NoError(t, Start(logger))
	require.NoError(t, Start(logger), "second Start is a no-op")
	fmt.Fprintln(os.Stderr, "stray write")
	fmt.Fprintln(os.Stderr, "   ")
	Stop()
	Stop()

	entries := hook.AllEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, "stray write", entries[0].Message)
	assert.Equal(t, logrus.WarnLevel, entries[0].Level)
}
