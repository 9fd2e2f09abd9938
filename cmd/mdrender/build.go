package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/fwojciec/mdrender"
	"github.com/fwojciec/mdrender/engine"
	"github.com/fwojciec/mdrender/fs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newBuildCmd(a *app) *cobra.Command {
	var (
		root      string
		pattern   string
		out       string
		targets   []string
		keepGoing bool
		jobs      int
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render every matching document for every configured target",
		Long: "Render every document under the content root that matches the pattern.\n" +
			"Each document is parsed once and rendered for all configured targets;\n" +
			"output goes to <out>/<target>/<path>.<ext>.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := a.flags.overrides()
			if cmd.Flags().Changed("root") {
				o.root = &root
			}
			if cmd.Flags().Changed("pattern") {
				o.pattern = &pattern
			}
			if cmd.Flags().Changed("out") {
				o.out = &out
			}
			o.targets = targets
			cfg, err := loadConfig(a.flags.configPath, o)
			if err != nil {
				return err
			}
			res, err := build(cmd.Context(), engine.Default(), cfg, buildOptions{
				keepGoing: keepGoing,
				jobs:      jobs,
				log:       a.log,
			})
			a.log.WithFields(logrus.Fields{
				"documents": res.documents,
				"written":   res.written,
				"skipped":   res.skipped,
			}).Info("build finished")
			return err
		},
	}
	cmd.Flags().StringVar(&root, "root", "", "Content root directory")
	cmd.Flags().StringVar(&pattern, "pattern", "", "Glob pattern for sources, relative to root")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output directory")
	cmd.Flags().StringSliceVar(&targets, "targets", nil, "Targets to render (default: all)")
	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "Skip outputs a target cannot represent instead of failing")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "Maximum concurrent renders")
	return cmd
}

type buildOptions struct {
	keepGoing bool
	jobs      int
	log       logrus.FieldLogger
}

type buildResult struct {
	documents int
	written   int
	skipped   int
}

// build parses each source under cfg.Root once and renders it for every
// configured target concurrently. With keepGoing, outputs that fail with
// mdrender.ErrNotSupported are logged and skipped.
func build(ctx context.Context, e *engine.Engine, cfg mdrender.Config, opts buildOptions) (buildResult, error) {
	var res buildResult
	files, err := fs.Glob(cfg.Root, cfg.Pattern)
	if err != nil {
		return res, err
	}
	log := opts.log
	if log == nil {
		log = logrus.StandardLogger()
	}
	rctx := cfg.RenderContext()

	g, gctx := errgroup.WithContext(ctx)
	if opts.jobs > 0 {
		g.SetLimit(opts.jobs)
	}
	var mu sync.Mutex
	for _, rel := range files {
		if gctx.Err() != nil {
			break
		}
		source, err := os.ReadFile(filepath.Join(cfg.Root, rel))
		if err != nil {
			g.Wait()
			return res, fmt.Errorf("read %s: %w", rel, err)
		}
		tree, err := e.Parse(string(source))
		if err != nil {
			g.Wait()
			return res, fmt.Errorf("%s: %w", rel, err)
		}
		res.documents++

		for _, target := range cfg.Targets {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				entry := log.WithFields(logrus.Fields{"file": rel, "target": target})
				out, err := e.RenderTree(target, tree, rctx)
				if err != nil {
					if opts.keepGoing && errors.Is(err, mdrender.ErrNotSupported) {
						entry.WithError(err).Warn("skipping output")
						mu.Lock()
						res.skipped++
						mu.Unlock()
						return nil
					}
					return fmt.Errorf("%s (%s): %w", rel, target, err)
				}
				path := fs.OutputPath(cfg.Out, target, rel)
				if err := fs.WriteFile(path, []byte(out)); err != nil {
					return fmt.Errorf("%s (%s): %w", rel, target, err)
				}
				entry.WithField("out", path).Debug("rendered")
				mu.Lock()
				res.written++
				mu.Unlock()
				return nil
			})
		}
	}
	err = g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	return res, err
}
