package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/dutree/internal/dirstat"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
	stdout  io.Writer
	stderr  io.Writer
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version, stdout: os.Stdout, stderr: os.Stderr}
}

// modeValue adapts dirstat.Mode to a pflag.Value.
type modeValue struct {
	mode *dirstat.Mode
}

var _ pflag.Value = modeValue{}

func (v modeValue) String() string {
	if v.mode == nil {
		return dirstat.Size.String()
	}

	return v.mode.String()
}

func (v modeValue) Set(name string) error {
	mode, err := dirstat.ParseMode(name)
	if err != nil {
		return err
	}

	*v.mode = mode

	return nil
}

func (v modeValue) Type() string {
	return "mode"
}

func description() string {
	return heredoc.Docf(`
		dutree reports disk usage per directory as a tree sorted by size.

		Directories holding less than the cutoff fraction of the grand total are
		left out, together with all smaller siblings. By default the walk stays on
		the filesystem each path lives on.

		Modes:
		  size            storage allocated on disk (default)
		  apparent-size   sum of file sizes
		  files           number of regular files

		Unreadable directories and files are reported on stderr and skipped;
		the report is always printed.

		Supported modes: %s
	`, strings.Join(dirstat.ModeNames(), ", "))
}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	var (
		options dirstat.Options
		noXdev  bool
	)

	options.Mode = dirstat.Size

	allowedOutputs := []string{"tree", "json"}

	cmd := &cobra.Command{
		Use:           "dutree [flags] [path...]",
		Short:         "Directory tree disk usage statistics",
		Long:          description(),
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			if math.IsNaN(options.Cutoff) || options.Cutoff < 0 || options.Cutoff > 1 {
				return fmt.Errorf("invalid cutoff %v: must be between 0 and 1", options.Cutoff)
			}

			if options.Depth < 0 {
				return errors.New("depth cannot be negative")
			}

			options.CrossDevices = noXdev
			options.Paths = args

			if len(options.Paths) == 0 {
				options.Paths = []string{"."}
			}

			return logic(options, c.stdout, c.stderr)
		},
	}

	cmd.SetOut(c.stdout)
	cmd.SetErr(c.stderr)

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.VarP(modeValue{mode: &options.Mode}, "mode", "m", "Mode: one of "+strings.Join(dirstat.ModeNames(), ", "))
	flags.Float64VarP(&options.Cutoff, "cutoff", "c", dirstat.DefaultCutoff,
		"Fraction of the grand total below which a directory and its smaller siblings are omitted")
	flags.BoolVar(&noXdev, "no-xdev", false, "Cross filesystem boundaries")
	flags.IntVarP(&options.Depth, "depth", "d", 0, "Maximum depth shown (0=unlimited)")
	flags.StringSliceVarP(&options.Excludes, "exclude", "e", []string{}, "Regex patterns to exclude")
	flags.StringVarP(&options.Output, "output", "o", "tree", "Output format: tree or json")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")

	return cmd
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}
