package mdrender

// Config describes a site render: addressing for links and media, the
// targets to produce and where content is read from and written to.
type Config struct {
	Hostname string
	BasePath string
	Scheme   string
	Port     int
	Targets  []TargetID
	Root     string
	Pattern  string
	Out      string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Hostname: "localhost",
		Scheme:   "http",
		Port:     DefaultGopherPort,
		Targets:  AllTargets(),
		Root:     ".",
		Pattern:  "**/*.md",
		Out:      "public",
	}
}

// RenderContext derives the per-call render context.
func (c Config) RenderContext() RenderContext {
	return RenderContext{
		Hostname: c.Hostname,
		BasePath: c.BasePath,
		Scheme:   c.Scheme,
		Port:     c.Port,
	}
}
