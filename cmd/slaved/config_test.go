package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, 115200, cfg.Baud)
	require.Equal(t, "/dev/ttyUSB0", cfg.Port)
	require.NotZero(t, cfg.Pins.Green)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slaved.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"port: /dev/ttyACM1\nuid: CAFE01\npins:\n  green: 10\n  red: 11\n  buzzer: 12\n"), 0644))
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "/dev/ttyACM1", cfg.Port)
	require.Equal(t, "CAFE01", cfg.UID)
	require.Equal(t, 115200, cfg.Baud) // default survives partial files
	require.Equal(t, PinConfig{Green: 10, Red: 11, Buzzer: 12, REX: 7, Contact: 8}, cfg.Pins)
}

func TestLoadConfigInputsAndIntervals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slaved.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"pins:\n  rex: 20\n  contact: 21\nheartbeat_seconds: 5\nstep_millis: 2\n"), 0644))
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 20, cfg.Pins.REX)
	require.Equal(t, 21, cfg.Pins.Contact)
	require.Equal(t, 5, cfg.HeartbeatSeconds)
	require.Equal(t, 2, cfg.StepMillis)
}

func TestInputPins(t *testing.T) {
	in := inputPins(PinConfig{REX: 7, Contact: 8})
	require.NotNil(t, in.REX)
	require.NotNil(t, in.Contact)

	in = inputPins(PinConfig{Green: 4})
	require.Nil(t, in.REX)
	require.Nil(t, in.Contact)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestParseSimRead(t *testing.T) {
	read, err := parseSimRead("12345")
	require.NoError(t, err)
	require.Equal(t, uint32(12345), read.code)
	require.Equal(t, uint8(26), read.bits)

	read, err = parseSimRead("99:34")
	require.NoError(t, err)
	require.Equal(t, uint8(34), read.bits)

	_, err = parseSimRead("abc")
	require.Error(t, err)
}
