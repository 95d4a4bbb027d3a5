package inspect

import (
	"errors"
	"fmt"
)

// Memory reads raw bytes from the inspected process. A failed read
// means the range is unmapped or protected (optimized-out variable,
// freed object); it is reported immediately, never retried.
type Memory interface {
	// ReadMemory is just like io.ReaderAt.ReadAt with a uint64 offset.
	ReadMemory(buf []byte, addr uint64) (n int, err error)
}

// StaticType is the host's static view of a named type. Only the
// identity is consulted, never the contents.
type StaticType struct {
	Name string
	Size uint64
}

// TypeLookup resolves static type information by name.
type TypeLookup interface {
	LookupStaticType(name string) (StaticType, error)
}

// RawValueOffset is where sc_int_base/sc_uint_base store the value
// word relative to the object base address: one vtable pointer, then
// the value. This is an assumption about the SystemC library's
// internal layout, not something derived from debug info; if the
// library lays its objects out differently the decoded values will be
// silently wrong.
const RawValueOffset = 8

// MemoryAccessError wraps a host read failure with the address that
// could not be served.
type MemoryAccessError struct {
	Addr uint64
	Err  error
}

func (e *MemoryAccessError) Error() string {
	return fmt.Sprintf("cannot read %#x: %v", e.Addr, e.Err)
}

func (e *MemoryAccessError) Unwrap() error { return e.Err }

// ErrUnmappedAddress is reported by BufferMemory for reads outside its
// snapshot.
var ErrUnmappedAddress = errors.New("unmapped memory address")

// BufferMemory serves reads from an in-memory snapshot of an inspected
// object. It is the host adapter used by the offline commands and
// tests.
type BufferMemory struct {
	base uint64
	data []byte
}

// NewBufferMemory returns a BufferMemory mapping data at base.
func NewBufferMemory(base uint64, data []byte) *BufferMemory {
	return &BufferMemory{base: base, data: data}
}

func (m *BufferMemory) ReadMemory(buf []byte, addr uint64) (int, error) {
	if addr < m.base || addr+uint64(len(buf)) > m.base+uint64(len(m.data)) {
		return 0, ErrUnmappedAddress
	}
	copy(buf, m.data[addr-m.base:])
	return len(buf), nil
}
