package pretty

import (
	"strings"
	"testing"

	"github.com/sysc-tools/scdbg/pkg/sctypes"
	"github.com/sysc-tools/scdbg/pkg/scvalue"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		desc sctypes.TypeDescriptor
		v    scvalue.DecodedValue
		want string
	}{
		{
			sctypes.TypeDescriptor{BaseName: "sc_uint", Width: 8},
			scvalue.DecodedValue{Width: 8, Value: 66},
			"sc_uint<8>(66)",
		},
		{
			sctypes.TypeDescriptor{BaseName: "sc_dt::sc_int", Width: 8, Signed: true},
			scvalue.DecodedValue{Width: 8, Signed: true, Value: -42},
			"sc_dt::sc_int<8>(-42)",
		},
		{
			sctypes.TypeDescriptor{BaseName: "sc_dt::sc_uint", Width: 64},
			scvalue.DecodedValue{Width: 64, Value: -1}, // all-ones bit pattern
			"sc_dt::sc_uint<64>(18446744073709551615)",
		},
	}
	for _, tt := range tests {
		if got := Format(tt.desc, tt.v); got != tt.want {
			t.Errorf("Format = %q, want %q", got, tt.want)
		}
	}
}

func TestFormatEnum(t *testing.T) {
	if got := FormatEnum("State", "PROCESSING", 10); got != "State::PROCESSING(10)" {
		t.Errorf("FormatEnum = %q", got)
	}
	if got := FormatEnumUnknown("State", 15); got != "State::<unknown:15>" {
		t.Errorf("FormatEnumUnknown = %q", got)
	}
}

func TestAnalysisReportString(t *testing.T) {
	r := &AnalysisReport{
		Name:        "counter",
		TypeName:    "sc_dt::sc_uint<8>",
		Formatted:   "sc_dt::sc_uint<8>(66)",
		RawValue:    "66",
		Width:       8,
		Signed:      false,
		Addr:        0x7ffe1000,
		ValueOffset: 8,
		ValueBytes:  []byte{0x42, 0, 0, 0, 0, 0, 0, 0},
	}

	want := strings.Join([]string{
		"=== SystemC Variable Analysis: counter ===",
		"Type: sc_dt::sc_uint<8>",
		"Formatted: sc_dt::sc_uint<8>(66)",
		"Raw value: 66",
		"Width: 8",
		"Signed: false",
		"Address: 0x7ffe1000",
		"Value memory (+8): 42 00 00 00 00 00 00 00",
		"",
	}, "\n")

	if got := r.String(); got != want {
		t.Errorf("report mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestAnalysisReportPlaceholders(t *testing.T) {
	r := &AnalysisReport{
		Name:        "ghost",
		TypeName:    "sc_dt::sc_int<16>",
		Formatted:   "sc_dt::sc_int<16>(<unavailable>)",
		RawValue:    "<unavailable>",
		Width:       16,
		Signed:      true,
		ValueOffset: 8,
	}
	s := r.String()
	if !strings.Contains(s, "Address: <not available>") {
		t.Errorf("missing address placeholder:\n%s", s)
	}
	if !strings.Contains(s, "Value memory (+8): <unavailable>") {
		t.Errorf("missing byte dump placeholder:\n%s", s)
	}
}
