// Package yaml loads mdrender configuration files.
package yaml

import (
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/mdrender"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".mdrender.yaml"

// configDTO is the on-disk layout. Pointers distinguish absent keys from
// zero values so that defaults survive partial files.
type configDTO struct {
	Hostname *string  `yaml:"hostname"`
	BasePath *string  `yaml:"basePath"`
	Scheme   *string  `yaml:"scheme"`
	Port     *int     `yaml:"gopherPort"`
	Targets  []string `yaml:"targets"`
	Root     *string  `yaml:"rootDir"`
	Pattern  *string  `yaml:"pattern"`
	Out      *string  `yaml:"outDir"`
}

// ParseConfig decodes data over mdrender.DefaultConfig and validates the result.
func ParseConfig(data []byte) (mdrender.Config, error) {
	var dto configDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return mdrender.Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg := mdrender.DefaultConfig()
	set(&cfg.Hostname, dto.Hostname)
	set(&cfg.BasePath, dto.BasePath)
	set(&cfg.Scheme, dto.Scheme)
	set(&cfg.Port, dto.Port)
	set(&cfg.Root, dto.Root)
	set(&cfg.Pattern, dto.Pattern)
	set(&cfg.Out, dto.Out)
	if dto.Targets != nil {
		cfg.Targets = make([]mdrender.TargetID, 0, len(dto.Targets))
		for _, name := range dto.Targets {
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

// LoadConfig reads the config file at path. A missing file at DefaultPath
// yields mdrender.DefaultConfig; any other read failure is an error.
func LoadConfig(path string) (mdrender.Config, error) {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		return ParseConfig(data)
	case errors.Is(err, os.ErrNotExist) && path == DefaultPath:
		return mdrender.DefaultConfig(), nil
	default:
		return mdrender.Config{}, fmt.Errorf("read config: %w", err)
	}
}

// MarshalConfig encodes cfg in the on-disk layout.
func MarshalConfig(cfg mdrender.Config) ([]byte, error) {
	targets := make([]string, len(cfg.Targets))
	for i, t := range cfg.Targets {
		targets[i] = string(t)
	}
	return yaml.Marshal(configDTO{
		Hostname: &cfg.Hostname,
		BasePath: &cfg.BasePath,
		Scheme:   &cfg.Scheme,
		Port:     &cfg.Port,
		Targets:  targets,
		Root:     &cfg.Root,
		Pattern:  &cfg.Pattern,
		Out:      &cfg.Out,
	})
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
