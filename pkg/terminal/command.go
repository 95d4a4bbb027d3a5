package terminal

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cosiner/argv"

	"github.com/sysc-tools/scdbg/pkg/enums"
	"github.com/sysc-tools/scdbg/pkg/inspect"
	"github.com/sysc-tools/scdbg/pkg/pretty"
	"github.com/sysc-tools/scdbg/pkg/sctypes"
	"github.com/sysc-tools/scdbg/pkg/scvalue"
	"github.com/sysc-tools/scdbg/pkg/version"
)

type cmdfunc func(t *Term, args string) error

type command struct {
	aliases        []string
	builtinAliases []string
	helpMsg        string
	cmdFn          cmdfunc
}

// Returns true if the command string matches one of the aliases for this command
func (c command) match(cmdstr string) bool {
	for _, v := range c.aliases {
		if v == cmdstr {
			return true
		}
	}
	return false
}

// Commands represents the commands for the scdbg terminal process.
type Commands struct {
	cmds     []command
	resolver *enums.Resolver
}

// byFirstAlias will sort by the first
// alias of a command.
type byFirstAlias []command

func (a byFirstAlias) Len() int           { return len(a) }
func (a byFirstAlias) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byFirstAlias) Less(i, j int) bool { return a[i].aliases[0] < a[j].aliases[0] }

// DebugCommands returns a Commands struct with default commands defined.
func DebugCommands(resolver *enums.Resolver) *Commands {
	if resolver == nil {
		resolver = enums.NewResolver(nil)
	}
	c := &Commands{resolver: resolver}

	c.cmds = []command{
		{aliases: []string{"help", "h"}, cmdFn: c.help, helpMsg: `Prints the help message.

	help [command]

Type "help" followed by the name of a command for more information about it.`},
		{aliases: []string{"decode", "d"}, cmdFn: c.decode, helpMsg: `Decodes raw storage bytes as a SystemC integer.

	decode <type> <hex bytes...>

The bytes are the little-endian storage word of the value, one or more
hex tokens ("d6" or "0xd6" or "3412").

	decode "sc_uint<8>" 42
	decode "sc_dt::sc_int<16>" 34 12`},
		{aliases: []string{"analyze", "sc_debug"}, cmdFn: c.analyze, helpMsg: `Prints the detailed analysis block for an object image.

	analyze <name> <type> <address> <hex bytes...>

The hex bytes are the object's memory starting at <address>. The value
itself is read from the raw value offset inside the object, so the
image must cover at least offset+8 bytes.`},
		{aliases: []string{"enum", "e"}, cmdFn: c.enumCmd, helpMsg: `Resolves a numeric enum value to its symbolic name.

	enum <type> <value>

	enum sc_core::sc_time_unit 2`},
		{aliases: []string{"enums"}, cmdFn: c.enums, helpMsg: `Lists the known enum types, or the value table of one type.

	enums [type]`},
		{aliases: []string{"status"}, cmdFn: c.status, helpMsg: `Reports version and the size of the enum configuration.`},
		{aliases: []string{"exit", "quit", "q"}, cmdFn: exitCommand, helpMsg: `Exit the inspector.`},
	}

	sort.Sort(byFirstAlias(c.cmds))
	return c
}

// Find will look up the command function for the given command input.
// If it cannot find the command it will default to noCmdAvailable().
// If the command is an empty string it will replay the last command.
func (c *Commands) Find(cmdstr string) cmdfunc {
	// If <enter> use last command, if there was one.
	if cmdstr == "" {
		return nullCommand
	}

	for _, v := range c.cmds {
		if v.match(cmdstr) {
			return v.cmdFn
		}
	}

	return noCmdAvailable
}

// Call takes a command to execute.
func (c *Commands) Call(cmdstr string, t *Term) error {
	vals := strings.SplitN(strings.TrimSpace(cmdstr), " ", 2)
	cmdname := vals[0]
	var args string
	if len(vals) > 1 {
		args = strings.TrimSpace(vals[1])
	}
	return c.Find(cmdname)(t, args)
}

// Merge takes aliases defined in the config struct and merges them with the default aliases.
func (c *Commands) Merge(allAliases map[string][]string) {
	for i := range c.cmds {
		if c.cmds[i].builtinAliases != nil {
			c.cmds[i].aliases = append(c.cmds[i].aliases[:0], c.cmds[i].builtinAliases...)
		}
	}
	for i := range c.cmds {
		if aliases, ok := allAliases[c.cmds[i].aliases[0]]; ok {
			if c.cmds[i].builtinAliases == nil {
				c.cmds[i].builtinAliases = make([]string, len(c.cmds[i].aliases))
				copy(c.cmds[i].builtinAliases, c.cmds[i].aliases)
			}
			c.cmds[i].aliases = append(c.cmds[i].aliases, aliases...)
		}
	}
}

var errNoCmd = errors.New("command not available")

func noCmdAvailable(t *Term, args string) error {
	return errNoCmd
}

func nullCommand(t *Term, args string) error {
	return nil
}

func (c *Commands) help(t *Term, args string) error {
	if args != "" {
		for _, cmd := range c.cmds {
			for _, alias := range cmd.aliases {
				if alias == args {
					fmt.Fprintln(t.stdout, cmd.helpMsg)
					return nil
				}
			}
		}
		return errNoCmd
	}

	fmt.Fprintln(t.stdout, "The following commands are available:")
	w := new(tabwriter.Writer)
	w.Init(t.stdout, 0, 8, 0, '\t', 0)
	for _, cmd := range c.cmds {
		h := cmd.helpMsg
		if idx := strings.Index(h, "\n"); idx >= 0 {
			h = h[:idx]
		}
		if len(cmd.aliases) > 1 {
			fmt.Fprintf(w, "    %s (alias: %s) \t %s\n", cmd.aliases[0], strings.Join(cmd.aliases[1:], " | "), h)
		} else {
			fmt.Fprintf(w, "    %s \t %s\n", cmd.aliases[0], h)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(t.stdout, "Type help followed by a command for full documentation.")
	return nil
}

func (c *Commands) decode(t *Term, args string) error {
	vals, err := splitArgs(args)
	if err != nil {
		return err
	}
	if len(vals) < 2 {
		return errors.New("not enough arguments. Usage: decode <type> <hex bytes...>")
	}
	desc, err := sctypes.Parse(vals[0])
	if err != nil {
		return err
	}
	raw, err := scvalue.ParseHexBytes(vals[1:])
	if err != nil {
		return err
	}
	v, err := scvalue.Decode(raw, desc)
	if err != nil {
		return err
	}
	fmt.Fprintln(t.stdout, pretty.Format(desc, v))
	return nil
}

func (c *Commands) analyze(t *Term, args string) error {
	vals, err := splitArgs(args)
	if err != nil {
		return err
	}
	if len(vals) < 4 {
		return errors.New("not enough arguments. Usage: analyze <name> <type> <address> <hex bytes...>")
	}
	name, typeName := vals[0], vals[1]
	addr, err := strconv.ParseUint(vals[2], 0, 64)
	if err != nil {
		return fmt.Errorf("invalid address %q: %v", vals[2], err)
	}
	image, err := scvalue.ParseHexBytes(vals[3:])
	if err != nil {
		return err
	}
	insp := inspect.New(inspect.NewBufferMemory(addr, image), nil, c.resolver)
	fmt.Fprint(t.stdout, insp.Analyze(name, typeName, addr).String())
	return nil
}

func (c *Commands) enumCmd(t *Term, args string) error {
	vals, err := splitArgs(args)
	if err != nil {
		return err
	}
	if len(vals) != 2 {
		return errors.New("wrong number of arguments. Usage: enum <type> <value>")
	}
	value, err := strconv.ParseInt(vals[1], 0, 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %v", vals[1], err)
	}
	res, err := c.resolver.Resolve(vals[0], value)
	if err != nil {
		return err
	}
	if res.Matched {
		fmt.Fprintln(t.stdout, pretty.FormatEnum(res.TypeName, res.Name, value))
	} else {
		fmt.Fprintln(t.stdout, pretty.FormatEnumUnknown(vals[0], value))
	}
	return nil
}

func (c *Commands) enums(t *Term, args string) error {
	args = strings.TrimSpace(args)
	if args == "" {
		for _, name := range c.resolver.Types() {
			fmt.Fprintf(t.stdout, "%s (%d values)\n", name, len(c.resolver.Table(name)))
		}
		return nil
	}
	tbl := c.resolver.Table(args)
	if tbl == nil {
		return &enums.UnmappedTypeError{TypeName: args}
	}
	values := make([]int64, 0, len(tbl))
	for v := range tbl {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	w := new(tabwriter.Writer)
	w.Init(t.stdout, 0, 8, 1, '\t', 0)
	for _, v := range values {
		fmt.Fprintf(w, "%d\t%s\n", v, tbl[v])
	}
	return w.Flush()
}

func (c *Commands) status(t *Term, args string) error {
	types := c.resolver.Types()
	entries := 0
	for _, name := range types {
		entries += len(c.resolver.Table(name))
	}
	fmt.Fprintf(t.stdout, "scdbg %s\n", strings.ReplaceAll(version.ScdbgVersion.String(), "\n", " "))
	fmt.Fprintf(t.stdout, "Enum types: %d (%d values)\n", len(types), entries)
	fmt.Fprintf(t.stdout, "Raw value offset: +%d\n", inspect.RawValueOffset)
	return nil
}

// ExitRequestError is returned when the user exits the terminal.
type ExitRequestError struct{}

func (ere ExitRequestError) Error() string {
	return ""
}

func exitCommand(t *Term, args string) error {
	return ExitRequestError{}
}

func splitArgs(args string) ([]string, error) {
	if args == "" {
		return nil, nil
	}
	v, err := argv.Argv(args,
		func(s string) (string, error) {
			return "", fmt.Errorf("backtick not supported in '%s'", s)
		},
		nil)
	if err != nil {
		return nil, err
	}
	if len(v) != 1 {
		return nil, fmt.Errorf("illegal commandline '%s'", args)
	}
	return v[0], nil
}
