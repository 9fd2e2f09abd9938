package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/mdrender"
	"github.com/fwojciec/mdrender/engine"
	mdjson "github.com/fwojciec/mdrender/json"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		target string
		tree   bool
	)
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render one document to stdout",
		Long: "Render one Markdown document for a single target. The document is read\n" +
			"from file, or from stdin when no file is given. With --tree the input is\n" +
			"a JSON node tree as printed by the tree command.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.flags.configPath, a.flags.overrides())
			if err != nil {
				return err
			}
			id, err := mdrender.ParseTargetID(target)
			if err != nil {
				return err
			}
			source, err := readSource(a.stdin, args)
			if err != nil {
				return err
			}
			out, err := renderSource(engine.Default(), id, source, tree, cfg.RenderContext())
			if err != nil {
				return err
			}
			_, err = io.WriteString(a.stdout, out)
			return err
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", string(mdrender.TargetHTML5), "Target: html5, html4, gopher, wml")
	cmd.Flags().BoolVar(&tree, "tree", false, "Read a JSON node tree instead of Markdown")
	return cmd
}

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree [file]",
		Short: "Print the parsed node tree as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(a.stdin, args)
			if err != nil {
				return err
			}
			tree, err := engine.Default().Parse(string(source))
			if err != nil {
				return err
			}
			data, err := mdjson.MarshalTree(tree)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.stdout, "%s\n", data)
			return err
		},
	}
}

// renderSource renders source for target. When tree is set, source is a JSON
// node tree rather than Markdown.
func renderSource(e *engine.Engine, target mdrender.TargetID, source []byte, tree bool, ctx mdrender.RenderContext) (string, error) {
	if !tree {
		return e.Render(target, string(source), ctx)
	}
	root, err := mdjson.Parser{}.Parse(source)
	if err != nil {
		return "", err
	}
	return e.RenderTree(target, root, ctx)
}

// readSource reads the file named by args, or stdin when args is empty.
func readSource(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return data, nil
}
