// Package terminal implements the interactive shell that dispatches
// user input to the inspection commands.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/sysc-tools/scdbg/pkg/config"
	"github.com/sysc-tools/scdbg/pkg/enums"
	"github.com/sysc-tools/scdbg/pkg/logflags"
)

const historyFile string = ".scdbg_history"

// Term represents the terminal running scdbg.
type Term struct {
	conf   *config.Config
	prompt string
	line   *liner.State
	cmds   *Commands
	dumb   bool
	stdout io.Writer
}

// New returns a new Term.
func New(resolver *enums.Resolver, conf *config.Config) *Term {
	cmds := DebugCommands(resolver)
	if conf != nil && conf.Aliases != nil {
		cmds.Merge(conf.Aliases)
	}

	if conf == nil {
		conf = &config.Config{}
	}

	dumb := strings.ToLower(os.Getenv("TERM")) == "dumb" ||
		(!isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()))

	return &Term{
		conf:   conf,
		prompt: "(scdbg) ",
		line:   liner.NewLiner(),
		cmds:   cmds,
		dumb:   dumb,
		stdout: os.Stdout,
	}
}

// Close returns the terminal to its previous mode.
func (t *Term) Close() {
	t.line.Close()
}

// Run begins the read-eval loop and returns when the user exits.
func (t *Term) Run() error {
	defer t.Close()

	logger := logflags.TerminalLogger()

	if !t.dumb {
		t.line.SetCompleter(func(line string) (c []string) {
			for _, cmd := range t.cmds.cmds {
				for _, alias := range cmd.aliases {
					if strings.HasPrefix(alias, strings.ToLower(line)) {
						c = append(c, alias)
					}
				}
			}
			return
		})
	}

	fullHistoryFile, err := config.GetConfigFilePath(historyFile)
	if err != nil {
		fmt.Printf("Unable to load history file: %v.", err)
	}

	f, err := os.Open(fullHistoryFile)
	if err != nil {
		f, err = os.Create(fullHistoryFile)
		if err != nil {
			fmt.Printf("Unable to open history file: %v. History will not be saved for this session.", err)
		}
	}
	if f != nil {
		t.line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		f, err := os.Create(fullHistoryFile)
		if err == nil {
			t.line.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		cmdstr, err := t.promptForInput()
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				fmt.Fprintln(t.stdout, "exit")
				return nil
			}
			return fmt.Errorf("prompt for input failed.\n%v", err)
		}

		logger.WithField("cmd", cmdstr).Debug("dispatching")
		if err := t.cmds.Call(cmdstr, t); err != nil {
			if _, ok := err.(ExitRequestError); ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Command failed: %v\n", err)
		}
	}
}

func (t *Term) promptForInput() (string, error) {
	l, err := t.line.Prompt(t.prompt)
	if err != nil {
		return "", err
	}

	l = strings.TrimSuffix(l, "\n")
	if l != "" {
		t.line.AppendHistory(l)
	}

	return l, nil
}
