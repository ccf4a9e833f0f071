package botproc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle_StartStopStatus(t *testing.T) {
	h := New("sleep", nil, zerolog.Nop())

	assert.False(t, h.Status().Running)
	require.NoError(t, h.Start(30))

	st := h.Status()
	assert.True(t, st.Running)
	assert.NotZero(t, st.PID)

	// A second start must refuse, not spawn a sibling.
	err := h.Start(30)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already running")

	require.NoError(t, h.Stop())
	assert.False(t, h.Status().Running)
}

func TestHandle_StartPassesCount(t *testing.T) {
	out := filepath.Join(t.TempDir(), "count.txt")

	// With sh -c the trailing argument becomes $0, so the script sees
	// exactly what the bot binary would receive as its list count.
	h := New("sh", []string{"-c", `echo "$0" > ` + out}, zerolog.Nop())
	require.NoError(t, h.Start(7))

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(out)
		return err == nil && strings.TrimSpace(string(data)) == "7"
	}, 2*time.Second, 20*time.Millisecond)
}

func TestHandle_StartRejectsNonPositiveCount(t *testing.T) {
	h := New("sleep", nil, zerolog.Nop())
	assert.Error(t, h.Start(0))
	assert.False(t, h.Status().Running)
}

func TestHandle_StopIdleIsNoop(t *testing.T) {
	h := New("sleep", nil, zerolog.Nop())
	require.NoError(t, h.Stop())
}

func TestHandle_CrashFreesHandle(t *testing.T) {
	h := New("false", nil, zerolog.Nop())
	require.NoError(t, h.Start(1))

	// The reaper clears the handle once the process exits.
	require.Eventually(t, func() bool {
		return !h.Status().Running
	}, 2*time.Second, 20*time.Millisecond)

	require.NoError(t, h.Start(1))
	require.Eventually(t, func() bool {
		return !h.Status().Running
	}, 2*time.Second, 20*time.Millisecond)
}

func TestHandle_StartMissingBinary(t *testing.T) {
	h := New("/nonexistent/bot", nil, zerolog.Nop())
	assert.Error(t, h.Start(1))
}
