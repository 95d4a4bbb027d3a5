package sctypes

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		width  uint
		signed bool
	}{
		{"sc_uint<8>", "sc_uint", 8, false},
		{"sc_int<8>", "sc_int", 8, true},
		{"sc_dt::sc_uint<16>", "sc_dt::sc_uint", 16, false},
		{"sc_dt::sc_int<24>", "sc_dt::sc_int", 24, true},
		{"sc_uint<1>", "sc_uint", 1, false},
		{"sc_int<64>", "sc_int", 64, true},
		{"sc_uint< 12 >", "sc_uint", 12, false},
	}

	for _, tt := range tests {
		d, err := Parse(tt.name)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", tt.name, err)
			continue
		}
		if d.BaseName != tt.base || d.Width != tt.width || d.Signed != tt.signed {
			t.Errorf("Parse(%q) = %+v, want base=%q width=%d signed=%v", tt.name, d, tt.base, tt.width, tt.signed)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"sc_uint",            // no width parameter
		"sc_uint<>",          // empty width
		"sc_uint<eight>",     // not an integer
		"sc_uint<0>",         // below range
		"sc_uint<-1>",        // below range
		"sc_uint<65>",        // above range
		"sc_int<128>",        // never silently truncated to 64
		"sc_signal<8>",       // wrong base family
		"sc_dt::sc_logic",    // no template parameter at all
		"",
	}

	for _, name := range tests {
		_, err := Parse(name)
		if err == nil {
			t.Errorf("Parse(%q) expected error, got none", name)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q) returned %T, want *ParseError", name, err)
		}
	}
}

func TestDescriptorString(t *testing.T) {
	d := TypeDescriptor{BaseName: "sc_dt::sc_uint", Width: 8}
	if s := d.String(); s != "sc_dt::sc_uint<8>" {
		t.Errorf("String() = %q, want %q", s, "sc_dt::sc_uint<8>")
	}
}
