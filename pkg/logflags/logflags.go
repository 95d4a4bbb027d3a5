package logflags

import (
	"errors"
	"io/ioutil"
	"log"
	"strings"

	"github.com/sirupsen/logrus"
)

var inspect = false
var terminal = false
var enumsFlag = false

func makeLogger(flag bool, fields logrus.Fields) *logrus.Entry {
	logger := logrus.New().WithFields(fields)
	logger.Logger.Level = logrus.DebugLevel
	if !flag {
		logger.Logger.Level = logrus.PanicLevel
	}
	return logger
}

// Inspect returns true if the inspect package should log.
func Inspect() bool {
	return inspect
}

// InspectLogger returns a logger for the inspect package.
func InspectLogger() *logrus.Entry {
	return makeLogger(inspect, logrus.Fields{"layer": "inspect"})
}

// Terminal returns true if the terminal package should log command
// dispatch.
func Terminal() bool {
	return terminal
}

// TerminalLogger returns a logger for the terminal package.
func TerminalLogger() *logrus.Entry {
	return makeLogger(terminal, logrus.Fields{"layer": "terminal"})
}

// Enums returns true if enum resolution should log.
func Enums() bool {
	return enumsFlag
}

// EnumsLogger returns a logger for enum resolution.
func EnumsLogger() *logrus.Entry {
	return makeLogger(enumsFlag, logrus.Fields{"layer": "enums"})
}

var errLogstrWithoutLog = errors.New("--log-output specified without --log")

// Setup sets the logging flags based on the contents of logstr, a
// comma separated list of layer names.
func Setup(logFlag bool, logstr string) error {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if !logFlag {
		log.SetOutput(ioutil.Discard)
		if logstr != "" {
			return errLogstrWithoutLog
		}
		return nil
	}
	if logstr == "" {
		logstr = "inspect"
	}
	v := strings.Split(logstr, ",")
	for _, logcmd := range v {
		switch logcmd {
		case "inspect":
			inspect = true
		case "terminal":
			terminal = true
		case "enums":
			enumsFlag = true
		}
	}
	return nil
}
