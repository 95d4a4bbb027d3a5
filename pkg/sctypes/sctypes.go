// Package sctypes parses SystemC integer type names into width and
// signedness descriptors.
package sctypes

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxWidth is the largest bit width representable by sc_int/sc_uint.
const MaxWidth = 64

// TypeDescriptor describes one sc_int<W> or sc_uint<W> instantiation.
type TypeDescriptor struct {
	// BaseName is the qualified type name without the template
	// parameter, e.g. "sc_dt::sc_uint".
	BaseName string
	Width    uint
	Signed   bool
}

// String returns the instantiated type name, e.g. "sc_dt::sc_uint<8>".
func (d TypeDescriptor) String() string {
	return fmt.Sprintf("%s<%d>", d.BaseName, d.Width)
}

// ParseError is returned when a type name does not describe a valid
// SystemC integer instantiation.
type ParseError struct {
	TypeName string
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse type %q: %s", e.TypeName, e.Reason)
}

// Parse extracts the width and signedness from a SystemC integer type
// name such as "sc_dt::sc_uint<8>" or "sc_int<24>". Widths outside
// [1,64] are rejected, never truncated.
func Parse(typeName string) (TypeDescriptor, error) {
	start := strings.Index(typeName, "<")
	end := strings.LastIndex(typeName, ">")
	if start < 0 || end < start {
		return TypeDescriptor{}, &ParseError{typeName, "no width parameter"}
	}
	base := strings.TrimSpace(typeName[:start])
	var signed bool
	switch unqualify(base) {
	case "sc_int":
		signed = true
	case "sc_uint":
		signed = false
	default:
		return TypeDescriptor{}, &ParseError{typeName, "not a sc_int/sc_uint instantiation"}
	}
	w, err := strconv.Atoi(strings.TrimSpace(typeName[start+1 : end]))
	if err != nil {
		return TypeDescriptor{}, &ParseError{typeName, "width parameter is not an integer"}
	}
	if w <= 0 || w > MaxWidth {
		return TypeDescriptor{}, &ParseError{typeName, fmt.Sprintf("width %d out of range [1,%d]", w, MaxWidth)}
	}
	return TypeDescriptor{BaseName: base, Width: uint(w), Signed: signed}, nil
}

func unqualify(name string) string {
	if i := strings.LastIndex(name, "::"); i >= 0 {
		return name[i+2:]
	}
	return name
}
