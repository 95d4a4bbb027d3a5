package logflags

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestMakeLogger_disabled(t *testing.T) {
	logger := makeLogger(false, logrus.Fields{"layer": "inspect"})
	if logger.Logger.Level != logrus.PanicLevel {
		t.Fatalf("expected level %v, got %v", logrus.PanicLevel, logger.Logger.Level)
	}
	if logger.Data["layer"] != "inspect" {
		t.Fatalf("expected layer field to be set, got %v", logger.Data)
	}
}

func TestMakeLogger_enabled(t *testing.T) {
	logger := makeLogger(true, logrus.Fields{"layer": "terminal"})
	if logger.Logger.Level != logrus.DebugLevel {
		t.Fatalf("expected level %v, got %v", logrus.DebugLevel, logger.Logger.Level)
	}
}

func TestSetup(t *testing.T) {
	defer func() {
		inspect = false
		terminal = false
		enumsFlag = false
	}()

	if err := Setup(false, "inspect"); err != errLogstrWithoutLog {
		t.Fatalf("expected errLogstrWithoutLog, got %v", err)
	}
	if err := Setup(true, "inspect,terminal"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Inspect() || !Terminal() {
		t.Fatalf("expected inspect and terminal layers enabled, got inspect=%v terminal=%v", Inspect(), Terminal())
	}
	if Enums() {
		t.Fatalf("enums layer should not be enabled")
	}
}
