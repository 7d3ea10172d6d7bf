package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mrasyid-dev/pos-system/pkg/runtime/terminal/commands"
	terminalexport "github.com/Mrasyid-dev/pos-system/pkg/runtime/terminal/export"
	"github.com/Mrasyid-dev/pos-system/pkg/services/export"
)

// CLI represents the command-line interface
type CLI struct {
	exporter *export.Exporter
	reporter *terminalexport.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		exporter: export.NewExporter(),
		reporter: terminalexport.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Sales report export tool",
	}

	cmd.AddCommand(commands.NewExportCmd(cli.exporter, cli.reporter))
	cmd.AddCommand(commands.NewTemplateCmd(cli.exporter))

	return cmd
}
