package config

import (
	"os"
	"testing"

	"gopkg.in/yaml.v2"
)

const sampleConfig = `
aliases:
  decode: ["dec"]
enum-tables:
  State:
    0: IDLE
    10: PROCESSING
    20: ERROR
  sc_core::sc_severity:
    0: CUSTOM_INFO
`

func TestConfigUnmarshal(t *testing.T) {
	var c Config
	if err := yaml.Unmarshal([]byte(sampleConfig), &c); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	if len(c.Aliases["decode"]) != 1 || c.Aliases["decode"][0] != "dec" {
		t.Errorf("aliases = %v", c.Aliases)
	}
	if c.EnumTables["State"][10] != "PROCESSING" {
		t.Errorf("enum tables = %v", c.EnumTables)
	}
	if c.EnumTables["sc_core::sc_severity"][0] != "CUSTOM_INFO" {
		t.Errorf("enum tables = %v", c.EnumTables)
	}
}

func TestEnumTablesAsResolverInput(t *testing.T) {
	var c Config
	if err := yaml.Unmarshal([]byte(sampleConfig), &c); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	tables := c.EnumTablesAsResolverInput()
	if tables["State"][20] != "ERROR" {
		t.Errorf("resolver input = %v", tables)
	}

	empty := &Config{}
	if empty.EnumTablesAsResolverInput() != nil {
		t.Errorf("empty config should produce nil tables")
	}
}

func TestDefaultConfigParses(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "config*.yml")
	if err != nil {
		t.Fatal(err)
	}
	if err := writeDefaultConfig(f); err != nil {
		t.Fatalf("writeDefaultConfig error: %v", err)
	}
	f.Close()

	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		t.Fatalf("default config does not parse: %v", err)
	}
}
