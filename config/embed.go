package config

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var SpecsFS embed.FS

// Load returns the spec file name, preferring a copy under dir on disk over
// the embedded default. An empty dir only consults the embedded files.
func Load(dir, name string) ([]byte, error) {
	clean := cleanSpecPath(name)
	if dir != "" {
		if data, err := os.ReadFile(diskSpecPath(dir, clean)); err == nil {
			return data, nil
		}
	}
	return SpecsFS.ReadFile(clean)
}

func cleanSpecPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "config/"); ok {
		s = after
	}
	return s
}

func diskSpecPath(dir, clean string) string {
	return filepath.Join(dir, filepath.FromSlash(clean))
}
