// Package pretty renders decoded SystemC values and enum resolutions
// as display strings.
package pretty

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sysc-tools/scdbg/pkg/sctypes"
	"github.com/sysc-tools/scdbg/pkg/scvalue"
)

// Format returns the canonical single-line representation of a decoded
// value, e.g. "sc_dt::sc_uint<8>(66)".
func Format(desc sctypes.TypeDescriptor, v scvalue.DecodedValue) string {
	return fmt.Sprintf("%s<%d>(%s)", desc.BaseName, desc.Width, Numeric(v))
}

// Numeric returns the decimal value, rendered signed or unsigned
// according to the decoded value's type.
func Numeric(v scvalue.DecodedValue) string {
	if v.Signed {
		return strconv.FormatInt(v.Value, 10)
	}
	return strconv.FormatUint(v.Uint(), 10)
}

// FormatEnum renders a successful enum resolution, e.g.
// "State::PROCESSING(10)".
func FormatEnum(typeName, name string, value int64) string {
	return fmt.Sprintf("%s::%s(%d)", typeName, name, value)
}

// FormatEnumUnknown renders a value missing from a known enum table,
// e.g. "State::<unknown:15>".
func FormatEnumUnknown(typeName string, value int64) string {
	return fmt.Sprintf("%s::<unknown:%d>", typeName, value)
}

// AnalysisReport is the detailed diagnostic view for one inspected
// variable.
type AnalysisReport struct {
	Name      string
	TypeName  string
	Formatted string
	RawValue  string
	Width     uint
	Signed    bool
	Addr      uint64
	// ValueOffset is where ValueBytes were read relative to Addr.
	ValueOffset uint64
	// ValueBytes is the memory window actually read, nil when the read
	// failed.
	ValueBytes []byte
}

// String renders the report as the fixed multi-line analysis block.
// Field order is stable: type, formatted value, raw value, width,
// signedness, address, byte dump.
func (r *AnalysisReport) String() string {
	var buf bytes.Buffer
	r.writeTo(&buf)
	return buf.String()
}

func (r *AnalysisReport) writeTo(w io.Writer) {
	fmt.Fprintf(w, "=== SystemC Variable Analysis: %s ===\n", r.Name)
	fmt.Fprintf(w, "Type: %s\n", r.TypeName)
	fmt.Fprintf(w, "Formatted: %s\n", r.Formatted)
	fmt.Fprintf(w, "Raw value: %s\n", r.RawValue)
	fmt.Fprintf(w, "Width: %d\n", r.Width)
	fmt.Fprintf(w, "Signed: %t\n", r.Signed)
	if r.Addr != 0 {
		fmt.Fprintf(w, "Address: %#x\n", r.Addr)
	} else {
		fmt.Fprintf(w, "Address: <not available>\n")
	}
	if len(r.ValueBytes) > 0 {
		fmt.Fprintf(w, "Value memory (+%d): %s\n", r.ValueOffset, hexBytes(r.ValueBytes))
	} else {
		fmt.Fprintf(w, "Value memory (+%d): <unavailable>\n", r.ValueOffset)
	}
}

func hexBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, " ")
}
