package proto

import (
	"fmt"
	"strings"
)

// Frame layout on the serial link:
//
//	<payload>|XX\n
//
// XX is the XOR checksum of the payload bytes as two uppercase hex
// digits. Receivers accept the checksum case-insensitively.
const (
	frameOpen  = '<'
	frameClose = '>'
	frameSep   = '|'
)

// MaxPayloadLen bounds the payload of a single frame. Encoding never
// proceeds for a larger payload.
const MaxPayloadLen = 256

// Checksum computes the 8-bit XOR checksum of payload.
func Checksum(payload []byte) byte {
	var sum byte
	for _, b := range payload {
		sum ^= b
	}
	return sum
}

// EncodeFrame wraps payload into a complete frame including the
// trailing newline. The returned slice is meant to be emitted with a
// single Write so no partial frame ever appears on the link.
func EncodeFrame(payload []byte) ([]byte, error) {
	if len(payload) > MaxPayloadLen {
		return nil, ErrPayloadTooLarge
	}
	for _, b := range payload {
		if b == frameOpen || b == frameClose {
			return nil, ErrPayloadMarker
		}
	}
	frame := make([]byte, 0, len(payload)+6)
	frame = append(frame, frameOpen)
	frame = append(frame, payload...)
	frame = append(frame, frameClose, frameSep)
	frame = append(frame, fmt.Sprintf("%02X", Checksum(payload))...)
	frame = append(frame, '\n')
	return frame, nil
}

// DecodeFrame validates one received line and extracts the payload.
// The separator is the last '|' in the line: a payload is only
// '|'-free by convention, so the trailing checksum field wins the
// tie-break.
func DecodeFrame(line string) (string, error) {
	line = strings.TrimSpace(line)
	if len(line) == 0 || line[0] != frameOpen {
		return "", ErrNoFrame
	}
	sep := strings.LastIndexByte(line, frameSep)
	if sep <= 0 {
		return "", ErrNoSeparator
	}
	head := line[:sep]
	if len(head) < 2 || head[len(head)-1] != frameClose {
		return "", ErrNoClose
	}
	payload := head[1 : len(head)-1]
	want := fmt.Sprintf("%02X", Checksum([]byte(payload)))
	if !strings.EqualFold(line[sep+1:], want) {
		return "", ErrChecksum
	}
	return payload, nil
}
