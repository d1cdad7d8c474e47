package slave

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acslink/acs.go/pkg/hal"
)

func TestAddressStoreDefaultsUnconfigured(t *testing.T) {
	a := NewAddressStore(hal.NewMemStore())
	require.Equal(t, Unconfigured, a.Load())
}

func TestAddressStoreRoundTrip(t *testing.T) {
	a := NewAddressStore(hal.NewMemStore())
	require.NoError(t, a.Store(7))
	require.Equal(t, byte(7), a.Load())
}

func TestAddressStoreZeroIsLegitimate(t *testing.T) {
	// a stored 0 is distinguishable from erased storage by the marker
	store := hal.NewMemStore()
	a := NewAddressStore(store)
	require.NoError(t, a.Store(0))
	marker, err := store.ReadByte(0)
	require.NoError(t, err)
	require.Equal(t, byte(0xa5), marker)
	require.Equal(t, byte(0), a.Load())
}

func TestAddressStoreIgnoresValueWithoutMarker(t *testing.T) {
	store := hal.NewMemStore()
	require.NoError(t, store.WriteByte(1, 9))
	require.Equal(t, Unconfigured, NewAddressStore(store).Load())
}
