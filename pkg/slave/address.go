// Package slave implements the card-reader endpoint: persisted
// address, command dispatch, feedback signalling and the cooperative
// scheduler tying them to the serial link.
package slave

import (
	"github.com/golang/glog"

	"github.com/acslink/acs.go/pkg/hal"
)

// Unconfigured is the address of a factory-default device.
// Operational messages are suppressed until an address is assigned.
const Unconfigured byte = 0

// Store cells used for the persisted address. The marker cell
// distinguishes a legitimately stored address (including 0) from
// uninitialized storage.
const (
	cellMarker = 0
	cellValue  = 1

	markerValid = 0xa5
)

// AddressStoreCells is the number of byte-store cells the address
// store occupies.
const AddressStoreCells = 2

// AddressStore persists the single-byte device address.
type AddressStore struct {
	store hal.ByteStore
}

// NewAddressStore creates an AddressStore on top of a byte store.
func NewAddressStore(store hal.ByteStore) *AddressStore {
	return &AddressStore{store: store}
}

// Load reads the persisted address. Without a valid marker the
// device reads as Unconfigured.
func (a *AddressStore) Load() byte {
	marker, err := a.store.ReadByte(cellMarker)
	if err != nil {
		glog.Errorf("address store read: %v", err)
		return Unconfigured
	}
	if marker != markerValid {
		return Unconfigured
	}
	value, err := a.store.ReadByte(cellValue)
	if err != nil {
		glog.Errorf("address store read: %v", err)
		return Unconfigured
	}
	return value
}

// Store persists addr. The value cell is written before the marker so
// a torn write never validates a stale address.
func (a *AddressStore) Store(addr byte) error {
	if err := a.store.WriteByte(cellValue, addr); err != nil {
		return err
	}
	return a.store.WriteByte(cellMarker, markerValid)
}
