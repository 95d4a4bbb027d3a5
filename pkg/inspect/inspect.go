// Package inspect drives the decode pipeline against a host debugger's
// memory and type-lookup capabilities and converts failures into
// placeholder strings at the host boundary.
package inspect

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"

	"github.com/sysc-tools/scdbg/pkg/enums"
	"github.com/sysc-tools/scdbg/pkg/logflags"
	"github.com/sysc-tools/scdbg/pkg/pretty"
	"github.com/sysc-tools/scdbg/pkg/sctypes"
	"github.com/sysc-tools/scdbg/pkg/scvalue"
)

const descriptorCacheSize = 128

// FormatterFunc renders one decoded value. The host invokes it
// whenever it needs to display a value of the registered shape.
type FormatterFunc func(scvalue.DecodedValue) string

// formatterKey identifies one concrete instantiation.
type formatterKey struct {
	baseName string
	width    uint
	signed   bool
}

// Inspector decodes and formats SystemC integer objects read from a
// host debugger's memory. All operations are synchronous
// request/response; the only retained state is read-only after New.
type Inspector struct {
	mem   Memory
	types TypeLookup // nil when the host offers no static type info

	resolver   *enums.Resolver
	descCache  *lru.Cache
	formatters map[formatterKey]FormatterFunc

	logger *logrus.Entry
}

// New returns an Inspector reading through mem. types may be nil;
// resolver may be nil, in which case only the built-in enum tables are
// available.
func New(mem Memory, types TypeLookup, resolver *enums.Resolver) *Inspector {
	if resolver == nil {
		resolver = enums.NewResolver(nil)
	}
	cache, _ := lru.New(descriptorCacheSize)
	return &Inspector{
		mem:        mem,
		types:      types,
		resolver:   resolver,
		descCache:  cache,
		formatters: make(map[formatterKey]FormatterFunc),
		logger:     logflags.InspectLogger(),
	}
}

// Resolver returns the enum resolver the inspector was built with.
func (insp *Inspector) Resolver() *enums.Resolver { return insp.resolver }

// descriptor parses typeName, consulting the cache first.
func (insp *Inspector) descriptor(typeName string) (sctypes.TypeDescriptor, error) {
	if d, ok := insp.descCache.Get(typeName); ok {
		return d.(sctypes.TypeDescriptor), nil
	}
	d, err := sctypes.Parse(typeName)
	if err != nil {
		return sctypes.TypeDescriptor{}, err
	}
	insp.descCache.Add(typeName, d)
	return d, nil
}

// FormatterFor returns the formatting strategy registered for the
// instantiation named by typeName, registering it on first encounter.
func (insp *Inspector) FormatterFor(typeName string) (FormatterFunc, error) {
	desc, err := insp.descriptor(typeName)
	if err != nil {
		return nil, err
	}
	key := formatterKey{desc.BaseName, desc.Width, desc.Signed}
	if fn, ok := insp.formatters[key]; ok {
		return fn, nil
	}
	d := desc
	fn := func(v scvalue.DecodedValue) string { return pretty.Format(d, v) }
	insp.formatters[key] = fn
	return fn, nil
}

// ValidateType checks the type identity against the host's static type
// information, when the host provides any.
func (insp *Inspector) ValidateType(typeName string) error {
	if insp.types == nil {
		return nil
	}
	st, err := insp.types.LookupStaticType(typeName)
	if err != nil {
		return err
	}
	if st.Name != typeName {
		return fmt.Errorf("host resolved %q to %q", typeName, st.Name)
	}
	return nil
}

// ReadValue reads and decodes the value stored in the object at addr.
func (insp *Inspector) ReadValue(typeName string, addr uint64) (scvalue.DecodedValue, error) {
	desc, err := insp.descriptor(typeName)
	if err != nil {
		return scvalue.DecodedValue{}, err
	}
	return insp.readValue(desc, addr)
}

func (insp *Inspector) readValue(desc sctypes.TypeDescriptor, addr uint64) (scvalue.DecodedValue, error) {
	buf := make([]byte, scvalue.StorageSize(desc.Width))
	valueAddr := addr + RawValueOffset
	if _, err := insp.mem.ReadMemory(buf, valueAddr); err != nil {
		return scvalue.DecodedValue{}, &MemoryAccessError{Addr: valueAddr, Err: err}
	}
	return scvalue.Decode(buf, desc)
}

// FormatValue renders the object at addr. It never fails: parse and
// read problems become placeholder strings so that a bad inspection
// cannot take down the host's session.
func (insp *Inspector) FormatValue(typeName string, addr uint64) string {
	desc, err := insp.descriptor(typeName)
	if err != nil {
		insp.logger.WithError(err).WithField("type", typeName).Debug("type parse failed")
		return fmt.Sprintf("%s(<parse-error>)", typeName)
	}
	v, err := insp.readValue(desc, addr)
	if err != nil {
		insp.logger.WithError(err).WithField("type", typeName).Debug("value read failed")
		return fmt.Sprintf("%s<%d>(<unavailable>)", desc.BaseName, desc.Width)
	}
	return pretty.Format(desc, v)
}

// FormatEnumValue resolves value against typeName's enum table and
// renders it. A value missing from a known table gets an explicit
// unknown placeholder; a type with no table at all renders the bare
// number alongside the type name.
func (insp *Inspector) FormatEnumValue(typeName string, value int64) string {
	res, err := insp.resolver.Resolve(typeName, value)
	if err != nil {
		insp.logger.WithError(err).Debug("enum type unmapped")
		return fmt.Sprintf("%s(%d)", typeName, value)
	}
	if !res.Matched {
		return pretty.FormatEnumUnknown(typeName, value)
	}
	return pretty.FormatEnum(res.TypeName, res.Name, value)
}

// Analyze assembles the detailed report for one variable. Partial
// failures fill the affected fields with placeholders instead of
// aborting the report.
func (insp *Inspector) Analyze(name, typeName string, addr uint64) *pretty.AnalysisReport {
	report := &pretty.AnalysisReport{
		Name:        name,
		TypeName:    typeName,
		Addr:        addr,
		ValueOffset: RawValueOffset,
	}
	desc, err := insp.descriptor(typeName)
	if err != nil {
		report.Formatted = fmt.Sprintf("%s(<parse-error>)", typeName)
		report.RawValue = "<parse-error>"
		return report
	}
	if err := insp.ValidateType(typeName); err != nil {
		insp.logger.WithError(err).Debug("static type validation failed")
	}
	report.Width = desc.Width
	report.Signed = desc.Signed
	v, err := insp.readValue(desc, addr)
	if err != nil {
		report.Formatted = fmt.Sprintf("%s<%d>(<unavailable>)", desc.BaseName, desc.Width)
		report.RawValue = "<unavailable>"
	} else {
		report.Formatted = pretty.Format(desc, v)
		report.RawValue = pretty.Numeric(v)
	}
	// The dump always shows the full 8-byte value window, matching the
	// widest storage granularity, regardless of the logical width.
	window := make([]byte, 8)
	if _, err := insp.mem.ReadMemory(window, addr+RawValueOffset); err == nil {
		report.ValueBytes = window
	}
	return report
}
