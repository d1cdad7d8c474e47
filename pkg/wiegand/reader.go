// Package wiegand adapts an external Wiegand decode capability and
// applies the parity validation policy for the 26-bit format.
package wiegand

import "math/bits"

// Source supplies decoded reads from a card reader. Implementations
// must not block: Poll reports ok=false when no read is pending.
type Source interface {
	Poll() (code uint32, bitLen uint8, ok bool)
}

// PollFunc is the func form of Source.
type PollFunc func() (uint32, uint8, bool)

// Poll implements Source.
func (f PollFunc) Poll() (uint32, uint8, bool) {
	return f()
}

// ValidParity checks the parity bits embedded in a raw read. Only the
// 26-bit format defines a parity scheme: the high 13 bits must carry
// even parity and the low 13 bits odd parity. Every other bit length
// is accepted as-is.
func ValidParity(code uint32, bitLen uint8) bool {
	if bitLen != 26 {
		return true
	}
	if bits.OnesCount32((code>>13)&0x1fff)%2 != 0 {
		return false
	}
	return bits.OnesCount32(code&0x1fff)%2 == 1
}
