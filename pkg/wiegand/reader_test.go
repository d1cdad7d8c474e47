package wiegand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidParity26(t *testing.T) {
	testCases := []struct {
		name  string
		code  uint32
		valid bool
	}{
		// high group: bits 25..13, low group: bits 12..0
		{"even high, odd low", 0x3<<13 | 0x1, true},
		{"odd high, odd low", 0x1<<13 | 0x1, false},
		{"even high, even low", 0x3<<13 | 0x3, false},
		{"odd high, even low", 0x1<<13 | 0x3, false},
		{"all zero high, single low", 0x1, true},
		{"full high, full low", 0x3ffffff, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.valid, ValidParity(tc.code, 26))
		})
	}
}

func TestValidParityOtherLengths(t *testing.T) {
	for _, bits := range []uint8{4, 8, 24, 32, 34, 37} {
		require.True(t, ValidParity(0x1<<13|0x3, bits), "bits=%d", bits)
	}
}

func TestPollFunc(t *testing.T) {
	var src Source = PollFunc(func() (uint32, uint8, bool) {
		return 42, 26, true
	})
	code, bits, ok := src.Poll()
	require.True(t, ok)
	require.Equal(t, uint32(42), code)
	require.Equal(t, uint8(26), bits)
}
