// Command mdrender renders Markdown for HTML5, HTML4, Gopher and WML clients.
//
// Usage:
//
//	mdrender render [file] [--target html5]   render one document to stdout
//	mdrender tree [file]                      print the parsed node tree as JSON
//	mdrender build                            render a content tree for every target
//	mdrender targets                          list available targets
//
// Settings are read from .mdrender.yaml (or --config) and overridden by flags.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "mdrender: %v\n", err)
		os.Exit(1)
	}
}

// app carries the state shared by every subcommand.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	log    *logrus.Logger
	flags  globalFlags
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		log:    logrus.New(),
	}
	a.log.SetOutput(stderr)

	cmd := &cobra.Command{
		Use:           "mdrender",
		Short:         "Render Markdown for HTML5, HTML4, Gopher and WML",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(a.flags.logLevel)
			if err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			a.log.SetLevel(level)
			return nil
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	a.flags.register(cmd.PersistentFlags())

	cmd.AddCommand(
		newRenderCmd(a),
		newTreeCmd(a),
		newBuildCmd(a),
		newTargetsCmd(a),
	)
	return cmd
}
