// Package scvalue reconstructs canonical integer values from the raw
// storage bytes of SystemC sc_int/sc_uint objects.
package scvalue

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/sysc-tools/scdbg/pkg/sctypes"
)

// DecodedValue is a single value read out of an inspected object.
type DecodedValue struct {
	Width  uint
	Signed bool
	// RawBytes holds the storage bytes the value was decoded from, in
	// little-endian order. Its length is the storage granularity for
	// Width, not Width/8.
	RawBytes []byte
	// Value is the canonical integer. For unsigned width 64 it holds
	// the two's-complement bit pattern; use Uint to render it.
	Value int64
}

// Uint returns the value as an unsigned bit pattern of Width bits.
func (v DecodedValue) Uint() uint64 {
	u := uint64(v.Value)
	if v.Width < sctypes.MaxWidth {
		u &= (1 << v.Width) - 1
	}
	return u
}

// InsufficientDataError is returned when a buffer is smaller than the
// storage granularity the width demands.
type InsufficientDataError struct {
	Need int
	Have int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: need %d bytes, have %d", e.Need, e.Have)
}

// StorageSize returns the number of bytes sc_int_base/sc_uint_base use
// to store a value of the given logical bit width.
func StorageSize(width uint) int {
	switch {
	case width <= 8:
		return 1
	case width <= 16:
		return 2
	case width <= 32:
		return 4
	default:
		return 8
	}
}

// Decode reassembles raw little-endian storage bytes into the canonical
// integer for the descriptor: the stored word is masked down to the
// logical width, then sign extended if the type is signed and the top
// logical bit is set. Width 1 decodes to {0,1} unsigned and {0,-1}
// signed.
func Decode(raw []byte, desc sctypes.TypeDescriptor) (DecodedValue, error) {
	size := StorageSize(desc.Width)
	if len(raw) < size {
		return DecodedValue{}, &InsufficientDataError{Need: size, Have: len(raw)}
	}
	stored := make([]byte, size)
	copy(stored, raw[:size])

	var u uint64
	switch size {
	case 1:
		u = uint64(stored[0])
	case 2:
		u = uint64(binary.LittleEndian.Uint16(stored))
	case 4:
		u = uint64(binary.LittleEndian.Uint32(stored))
	case 8:
		u = binary.LittleEndian.Uint64(stored)
	}

	if desc.Width < sctypes.MaxWidth {
		u &= (1 << desc.Width) - 1
	}
	n := int64(u)
	if desc.Signed {
		// The arithmetic right shift performs the sign extension.
		shift := sctypes.MaxWidth - desc.Width
		n = int64(u<<shift) >> shift
	}
	return DecodedValue{Width: desc.Width, Signed: desc.Signed, RawBytes: stored, Value: n}, nil
}

// EncodeMinimal writes the canonical value back into the minimal
// storage buffer for its width. Decode(EncodeMinimal(v)) reproduces v.
func EncodeMinimal(v DecodedValue) []byte {
	buf := make([]byte, StorageSize(v.Width))
	u := v.Uint()
	switch len(buf) {
	case 1:
		buf[0] = byte(u)
	case 2:
		binary.LittleEndian.PutUint16(buf, uint16(u))
	case 4:
		binary.LittleEndian.PutUint32(buf, uint32(u))
	case 8:
		binary.LittleEndian.PutUint64(buf, u)
	}
	return buf
}

// ParseHexBytes converts hex tokens to bytes. A token is either one
// byte ("d6", "0xd6") or an even-length run of bytes ("d6420010").
func ParseHexBytes(tokens []string) ([]byte, error) {
	var out []byte
	for _, tok := range tokens {
		s := strings.TrimPrefix(strings.ToLower(tok), "0x")
		if len(s) == 0 || len(s)%2 != 0 {
			return nil, fmt.Errorf("invalid hex bytes %q", tok)
		}
		for i := 0; i < len(s); i += 2 {
			b, err := strconv.ParseUint(s[i:i+2], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid hex bytes %q", tok)
			}
			out = append(out, byte(b))
		}
	}
	return out, nil
}
