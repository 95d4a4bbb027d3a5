// Package cmds implements the scdbg command line interface.
package cmds

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sysc-tools/scdbg/pkg/config"
	"github.com/sysc-tools/scdbg/pkg/enums"
	"github.com/sysc-tools/scdbg/pkg/inspect"
	"github.com/sysc-tools/scdbg/pkg/logflags"
	"github.com/sysc-tools/scdbg/pkg/pretty"
	"github.com/sysc-tools/scdbg/pkg/sctypes"
	"github.com/sysc-tools/scdbg/pkg/scvalue"
	"github.com/sysc-tools/scdbg/pkg/terminal"
	"github.com/sysc-tools/scdbg/pkg/version"
)

var (
	// log is whether to log debug statements.
	log bool
	// logOutput is a comma separated list of components that should produce debug output.
	logOutput string

	// conf is the loaded configuration.
	conf *config.Config

	// rootCommand is the root of the command tree.
	rootCommand *cobra.Command
)

const scdbgCommandLongDesc = `scdbg inspects SystemC fixed-width integer values.

It decodes sc_uint<W> and sc_int<W> objects from raw memory images and
resolves SystemC enumeration values to their symbolic names. Pass the
"--log" flag with a "--log-output" list to get debug logging.`

// New returns an initialized command tree.
func New() *cobra.Command {
	conf = config.LoadConfig()

	rootCommand = &cobra.Command{
		Use:   "scdbg",
		Short: "scdbg is an inspector for SystemC fixed-width integer values.",
		Long:  scdbgCommandLongDesc,
	}
	attachLogFlags(rootCommand.PersistentFlags())
	rootCommand.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return logflags.Setup(log, logOutput)
	}

	// 'version' subcommand.
	versionCommand := &cobra.Command{
		Use:   "version",
		Short: "Prints version.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("scdbg %s\n%s\n", version.ScdbgVersion.String(), version.BuildInfo())
		},
	}
	rootCommand.AddCommand(versionCommand)

	// 'repl' subcommand.
	replCommand := &cobra.Command{
		Use:   "repl",
		Short: "Starts the interactive inspector shell.",
		Run:   replCmd,
	}
	rootCommand.AddCommand(replCommand)

	// 'decode' subcommand.
	decodeCommand := &cobra.Command{
		Use:   "decode <type> <hex bytes...>",
		Short: "Decodes raw storage bytes as a SystemC integer.",
		Long: `Decodes raw storage bytes as a SystemC integer.

The bytes are the little-endian storage word of the value, one or more
hex tokens:

	scdbg decode "sc_uint<8>" 42
	scdbg decode "sc_dt::sc_int<16>" 34 12`,
		Args: cobra.MinimumNArgs(2),
		Run:  decodeCmd,
	}
	rootCommand.AddCommand(decodeCommand)

	// 'analyze' subcommand.
	analyzeCommand := &cobra.Command{
		Use:   "analyze <name> <type> <address> <hex bytes...>",
		Short: "Prints the detailed analysis block for an object image.",
		Long: `Prints the detailed analysis block for an object image.

The hex bytes are the object's memory starting at the given address.
The value itself is read from the raw value offset inside the object.`,
		Args: cobra.MinimumNArgs(4),
		Run:  analyzeCmd,
	}
	rootCommand.AddCommand(analyzeCommand)

	// 'enum' subcommand.
	enumCommand := &cobra.Command{
		Use:   "enum <type> <value>",
		Short: "Resolves a numeric enum value to its symbolic name.",
		Args:  cobra.ExactArgs(2),
		Run:   enumCmd,
	}
	rootCommand.AddCommand(enumCommand)

	return rootCommand
}

func attachLogFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&log, "log", "", false, "Enable debug logging.")
	fs.StringVarP(&logOutput, "log-output", "", "", "Comma separated list of components that should produce debug output (inspect, terminal, enums).")
}

func buildResolver() *enums.Resolver {
	return enums.NewResolver(conf.EnumTablesAsResolverInput())
}

func replCmd(cmd *cobra.Command, args []string) {
	t := terminal.New(buildResolver(), conf)
	if err := t.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func decodeCmd(cmd *cobra.Command, args []string) {
	desc, err := sctypes.Parse(args[0])
	if err != nil {
		fatal(err)
	}
	raw, err := scvalue.ParseHexBytes(args[1:])
	if err != nil {
		fatal(err)
	}
	v, err := scvalue.Decode(raw, desc)
	if err != nil {
		fatal(err)
	}
	fmt.Println(pretty.Format(desc, v))
}

func analyzeCmd(cmd *cobra.Command, args []string) {
	name, typeName := args[0], args[1]
	addr, err := strconv.ParseUint(args[2], 0, 64)
	if err != nil {
		fatal(fmt.Errorf("invalid address %q: %v", args[2], err))
	}
	image, err := scvalue.ParseHexBytes(args[3:])
	if err != nil {
		fatal(err)
	}
	insp := inspect.New(inspect.NewBufferMemory(addr, image), nil, buildResolver())
	fmt.Print(insp.Analyze(name, typeName, addr).String())
}

func enumCmd(cmd *cobra.Command, args []string) {
	value, err := strconv.ParseInt(args[1], 0, 64)
	if err != nil {
		fatal(fmt.Errorf("invalid value %q: %v", args[1], err))
	}
	res, err := buildResolver().Resolve(args[0], value)
	if err != nil {
		fatal(err)
	}
	if res.Matched {
		fmt.Println(pretty.FormatEnum(res.TypeName, res.Name, value))
	} else {
		fmt.Println(pretty.FormatEnumUnknown(args[0], value))
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
