package terminal

import (
	"io"
	"os"

	"github.com/fin-tools/tax-atlas/pkg/runtime/terminal/commands"
	"github.com/fin-tools/tax-atlas/pkg/runtime/terminal/export"

	"github.com/fin-tools/tax-atlas/pkg/services/tax"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	planner  tax.Planner
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Planner tax.Planner
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		planner:  opts.Planner,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Income tax planning tool",
	}

	cmd.AddCommand(commands.NewCalculateCmd(cli.planner, cli.reporter))
	cmd.AddCommand(commands.NewCompareCmd(cli.planner, cli.reporter))
	cmd.AddCommand(commands.NewRecommendCmd(cli.planner, cli.reporter))

	return cmd
}
