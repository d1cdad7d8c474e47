package proto

import "errors"

var (
	// ErrNoFrame indicates the line does not start a frame.
	ErrNoFrame = errors.New("not a frame")
	// ErrNoSeparator indicates the checksum separator is missing.
	ErrNoSeparator = errors.New("missing checksum separator")
	// ErrNoClose indicates the payload close marker is missing.
	ErrNoClose = errors.New("missing close marker")
	// ErrChecksum indicates the received checksum does not match.
	ErrChecksum = errors.New("checksum mismatch")
	// ErrPayloadTooLarge indicates the payload exceeds MaxPayloadLen.
	ErrPayloadTooLarge = errors.New("payload too large")
	// ErrPayloadMarker indicates the payload contains an envelope marker.
	ErrPayloadMarker = errors.New("payload contains envelope marker")
	// ErrNotCommand indicates the payload is not a command message.
	ErrNotCommand = errors.New("not a command")
)
