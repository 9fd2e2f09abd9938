package main

import (
	"fmt"

	"github.com/fwojciec/mdrender"
	"github.com/fwojciec/mdrender/yaml"
	"github.com/spf13/pflag"
)

// globalFlags are the persistent flags that override the config file.
type globalFlags struct {
	configPath string
	logLevel   string
	hostname   string
	basePath   string
	scheme     string
	port       int
	set        *pflag.FlagSet
}

func (g *globalFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&g.configPath, "config", yaml.DefaultPath, "Path to config file")
	fs.StringVar(&g.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&g.hostname, "hostname", "", "Host advertised in Gopher item lines")
	fs.StringVar(&g.basePath, "base-path", "", "Document path relative links resolve against")
	fs.StringVar(&g.scheme, "scheme", "", "Scheme for building absolute URLs: http or https")
	fs.IntVar(&g.port, "port", mdrender.DefaultGopherPort, "Port advertised in Gopher item lines")
	g.set = fs
}

// overrides reports the flag values that were set explicitly.
func (g *globalFlags) overrides() configOverrides {
	var o configOverrides
	if g.set == nil {
		return o
	}
	if g.set.Changed("hostname") {
		o.hostname = &g.hostname
	}
	if g.set.Changed("base-path") {
		o.basePath = &g.basePath
	}
	if g.set.Changed("scheme") {
		o.scheme = &g.scheme
	}
	if g.set.Changed("port") {
		o.port = &g.port
	}
	return o
}

// configOverrides holds command-line values that take precedence over the
// config file. Nil fields leave the file value in place.
type configOverrides struct {
	hostname *string
	basePath *string
	scheme   *string
	port     *int
	root     *string
	pattern  *string
	out      *string
	targets  []string
}

// loadConfig reads the config file at path and applies overrides.
func loadConfig(path string, o configOverrides) (mdrender.Config, error) {
	cfg, err := yaml.LoadConfig(path)
	if err != nil {
		return mdrender.Config{}, err
	}
	return applyOverrides(cfg, o)
}

// applyOverrides layers o over cfg and validates the result.
func applyOverrides(cfg mdrender.Config, o configOverrides) (mdrender.Config, error) {
	override(&cfg.Hostname, o.hostname)
	override(&cfg.BasePath, o.basePath)
	override(&cfg.Scheme, o.scheme)
	override(&cfg.Port, o.port)
	override(&cfg.Root, o.root)
	override(&cfg.Pattern, o.pattern)
	override(&cfg.Out, o.out)
	if len(o.targets) > 0 {
		cfg.Targets = make([]mdrender.TargetID, 0, len(o.targets))
		for _, name := range o.targets {
			id, err := mdrender.ParseTargetID(name)
			if err != nil {
				return mdrender.Config{}, fmt.Errorf("targets: %w", err)
			}
			cfg.Targets = append(cfg.Targets, id)
		}
	}
	if err := cfg.Validate(); err != nil {
		return mdrender.Config{}, err
	}
	return cfg, nil
}

func override[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
