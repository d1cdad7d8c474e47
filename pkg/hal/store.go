package hal

import (
	"errors"
	"os"
)

// Erased is the value read from a cell that was never written,
// mirroring erased EEPROM/flash.
const Erased byte = 0xff

// ErrBadCell indicates a cell index outside the store.
var ErrBadCell = errors.New("cell out of range")

// ByteStore is byte-addressed non-volatile storage.
type ByteStore interface {
	ReadByte(cell int) (byte, error)
	WriteByte(cell int, value byte) error
}

// MemStore is an in-memory ByteStore for tests and simulation.
type MemStore struct {
	cells map[int]byte
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{cells: make(map[int]byte)}
}

// ReadByte implements ByteStore. Unwritten cells read as Erased.
func (s *MemStore) ReadByte(cell int) (byte, error) {
	if v, ok := s.cells[cell]; ok {
		return v, nil
	}
	return Erased, nil
}

// WriteByte implements ByteStore.
func (s *MemStore) WriteByte(cell int, value byte) error {
	s.cells[cell] = value
	return nil
}

// FileStore persists a small fixed number of cells in a file, one
// byte per cell. A missing or short file reads as Erased.
type FileStore struct {
	path string
	size int
}

// NewFileStore creates a FileStore with size cells backed by path.
func NewFileStore(path string, size int) *FileStore {
	return &FileStore{path: path, size: size}
}

// ReadByte implements ByteStore.
func (s *FileStore) ReadByte(cell int) (byte, error) {
	if cell < 0 || cell >= s.size {
		return 0, ErrBadCell
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Erased, nil
		}
		return 0, err
	}
	if cell >= len(data) {
		return Erased, nil
	}
	return data[cell], nil
}

// WriteByte implements ByteStore.
func (s *FileStore) WriteByte(cell int, value byte) error {
	if cell < 0 || cell >= s.size {
		return ErrBadCell
	}
	data, err := os.ReadFile(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if len(data) < s.size {
		grown := make([]byte, s.size)
		for i := range grown {
			grown[i] = Erased
		}
		copy(grown, data)
		data = grown
	}
	data[cell] = value
	return os.WriteFile(s.path, data, 0644)
}
