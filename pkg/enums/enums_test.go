package enums

import (
	"errors"
	"reflect"
	"testing"
)

func stateResolver() *Resolver {
	return NewResolver(map[string]Table{
		"State": {0: "IDLE", 10: "PROCESSING", 20: "ERROR"},
	})
}

func TestResolve(t *testing.T) {
	r := stateResolver()

	res, err := r.Resolve("State", 10)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !res.Matched || res.Name != "PROCESSING" || res.TypeName != "State" {
		t.Fatalf("Resolve(State, 10) = %+v", res)
	}

	res, err = r.Resolve("State", 15)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if res.Matched {
		t.Fatalf("Resolve(State, 15) matched: %+v", res)
	}
}

func TestResolveUnmappedType(t *testing.T) {
	r := stateResolver()
	_, err := r.Resolve("NotAnEnum", 0)
	var uerr *UnmappedTypeError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *UnmappedTypeError, got %v", err)
	}
	if uerr.TypeName != "NotAnEnum" {
		t.Fatalf("wrong type name in error: %q", uerr.TypeName)
	}
}

func TestResolveBuiltins(t *testing.T) {
	r := NewResolver(nil)
	tests := []struct {
		typeName string
		value    int64
		want     string
	}{
		{"sc_dt::sc_logic_value_t", 2, "SC_LOGIC_Z"},
		{"sc_core::sc_time_unit", 2, "SC_NS"},
		{"sc_core::sc_severity", 3, "SC_FATAL"},
	}
	for _, tt := range tests {
		res, err := r.Resolve(tt.typeName, tt.value)
		if err != nil {
			t.Errorf("Resolve(%s, %d) error: %v", tt.typeName, tt.value, err)
			continue
		}
		if !res.Matched || res.Name != tt.want {
			t.Errorf("Resolve(%s, %d) = %+v, want %s", tt.typeName, tt.value, res, tt.want)
		}
	}
}

func TestResolveNestedScope(t *testing.T) {
	r := NewResolver(map[string]Table{
		"Outer":        {0: "ZERO"},
		"Outer::Inner": {7: "DEEP"},
		"Other":        {7: "WRONG"}, // unrelated type, must never be consulted
	})

	res, err := r.Resolve("Outer", 7)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !res.Matched || res.Name != "DEEP" || res.TypeName != "Outer::Inner" {
		t.Fatalf("Resolve(Outer, 7) = %+v, want match from Outer::Inner", res)
	}

	// a value found nowhere in the scope stays unknown even though an
	// unrelated table contains it
	res, err = r.Resolve("Outer", 9)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if res.Matched {
		t.Fatalf("Resolve(Outer, 9) matched: %+v", res)
	}
}

func TestExtraTableOverridesBuiltin(t *testing.T) {
	r := NewResolver(map[string]Table{
		"sc_core::sc_severity": {0: "CUSTOM_INFO"},
	})
	res, err := r.Resolve("sc_core::sc_severity", 0)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if res.Name != "CUSTOM_INFO" {
		t.Fatalf("expected override to win, got %+v", res)
	}
	if _, ok := r.Table("sc_core::sc_severity")[1]; ok {
		t.Fatalf("override should replace the builtin table, not merge with it")
	}
}

func TestTypes(t *testing.T) {
	r := stateResolver()
	want := []string{"State", "sc_core::sc_severity", "sc_core::sc_time_unit", "sc_dt::sc_logic_value_t"}
	if got := r.Types(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Types() = %v, want %v", got, want)
	}
}
