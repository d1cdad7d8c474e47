package hal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSysfsPinLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "value")
	pin := &SysfsPin{path: path, idle: true}

	require.True(t, pin.Get(), "missing value file reads idle")

	require.NoError(t, os.WriteFile(path, []byte("0\n"), 0644))
	require.False(t, pin.Get())

	require.NoError(t, os.WriteFile(path, []byte("1\n"), 0644))
	require.True(t, pin.Get())

	require.NoError(t, os.WriteFile(path, nil, 0644))
	require.True(t, pin.Get(), "empty value file reads idle")
}

func TestNewSysfsPinPath(t *testing.T) {
	pin := NewSysfsPin(Pin(17), false)
	require.Equal(t, "/sys/class/gpio/gpio17/value", pin.path)
	require.False(t, pin.idle)
}
