// Package enums resolves numeric values of SystemC enumeration types
// to their symbolic names.
package enums

import (
	"fmt"
	"sort"

	"github.com/derekparker/trie"
)

// Table maps the numeric values of one enumeration type to their names.
type Table map[int64]string

// builtinTables covers the SystemC enumerations known out of the box.
var builtinTables = map[string]Table{
	"sc_dt::sc_logic_value_t": {
		0: "SC_LOGIC_0",
		1: "SC_LOGIC_1",
		2: "SC_LOGIC_Z",
		3: "SC_LOGIC_X",
	},
	"sc_core::sc_time_unit": {
		0: "SC_FS",
		1: "SC_PS",
		2: "SC_NS",
		3: "SC_US",
		4: "SC_MS",
		5: "SC_SEC",
	},
	"sc_core::sc_severity": {
		0: "SC_INFO",
		1: "SC_WARNING",
		2: "SC_ERROR",
		3: "SC_FATAL",
	},
}

// UnmappedTypeError is returned when an enum type has no value table.
// It is distinct from a value missing in a known table, which is a
// normal, non-error resolution.
type UnmappedTypeError struct {
	TypeName string
}

func (e *UnmappedTypeError) Error() string {
	return fmt.Sprintf("no enum mapping for type %s", e.TypeName)
}

// Resolution is the outcome of resolving one numeric value.
type Resolution struct {
	// Matched reports whether a symbolic name was found.
	Matched bool
	Name    string
	// TypeName is the type whose table produced the match. It equals
	// the queried type unless the nested-scope search matched.
	TypeName string
}

// Resolver holds the enum value tables for the process. It is built
// once at startup and read-only afterwards.
type Resolver struct {
	tables map[string]Table
	names  *trie.Trie
}

// NewResolver builds a resolver from the built-in SystemC tables plus
// any extra tables, typically from the config file. An extra table
// replaces a builtin with the same type name.
func NewResolver(extra map[string]Table) *Resolver {
	r := &Resolver{
		tables: make(map[string]Table, len(builtinTables)+len(extra)),
		names:  trie.New(),
	}
	for name, tbl := range builtinTables {
		r.add(name, tbl)
	}
	for name, tbl := range extra {
		r.add(name, tbl)
	}
	return r
}

func (r *Resolver) add(name string, tbl Table) {
	cp := make(Table, len(tbl))
	for v, n := range tbl {
		cp[v] = n
	}
	r.tables[name] = cp
	r.names.Add(name, nil)
}

// Types returns the known enum type names, sorted.
func (r *Resolver) Types() []string {
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Table returns the value table for the given type, or nil if the type
// is unmapped.
func (r *Resolver) Table(typeName string) Table {
	return r.tables[typeName]
}

// Resolve looks up value in typeName's table. A type with no table at
// all yields *UnmappedTypeError; a value missing from a known table
// yields a Resolution with Matched false. When the type's own table
// misses, tables of enumerations nested inside the queried type
// (name prefix typeName + "::") are consulted before giving up;
// unrelated types never are.
func (r *Resolver) Resolve(typeName string, value int64) (Resolution, error) {
	tbl, ok := r.tables[typeName]
	if !ok {
		return Resolution{}, &UnmappedTypeError{TypeName: typeName}
	}
	if name, ok := tbl[value]; ok {
		return Resolution{Matched: true, Name: name, TypeName: typeName}, nil
	}
	nested := r.names.PrefixSearch(typeName + "::")
	sort.Strings(nested)
	for _, nestedName := range nested {
		if name, ok := r.tables[nestedName][value]; ok {
			return Resolution{Matched: true, Name: name, TypeName: nestedName}, nil
		}
	}
	return Resolution{Matched: false, TypeName: typeName}, nil
}
