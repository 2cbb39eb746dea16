// Package cli wires the portfolio commands.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X tidepool.dev/internal/cli.Version=..."
var Version = "dev"

// env bundles what commands need from the process so tests can swap it out
type env struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(env{fs: afero.NewOsFs(), stdout: os.Stdout, stderr: os.Stderr})
}

func newRootCmd(e env) *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Serve the portfolio site",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(e.stdout)
	root.SetErr(e.stderr)

	root.AddCommand(
		newServeCmd(e),
		newValidateCmd(e),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command with ctx
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(Version)
		},
	}
}
