// Package fs discovers Markdown sources and writes rendered output files.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/mdrender"
)

var extensions = map[mdrender.TargetID]string{
	mdrender.TargetHTML5:  ".html",
	mdrender.TargetHTML4:  ".htm",
	mdrender.TargetGopher: ".gph",
	mdrender.TargetWML:    ".wml",
}

// Extension returns the output file extension for target.
func Extension(target mdrender.TargetID) string {
	if ext, ok := extensions[target]; ok {
		return ext
	}
	return "." + string(target)
}

// OutputPath maps a source path relative to the content root to its output
// file: out/<target>/<rel without extension><target extension>.
func OutputPath(out string, target mdrender.TargetID, rel string) string {
	base := strings.TrimSuffix(rel, filepath.Ext(rel))
	return filepath.Join(out, string(target), base+Extension(target))
}

// WriteFile writes data to path atomically, creating parent directories as
// needed.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
