package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// LoadLevelFromFS decodes a level bundled with the binary. The .json suffix is optional.
func LoadLevelFromFS(name string, w, h int) (*Grid, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	f, err := LevelsFS.Open(path.Clean(name))
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	defer f.Close()

	g, err := Decode(f, w, h)
	if err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	return g, nil
}

// Embedded lists the bundled level names without extension.
func Embedded() []string {
	matches, err := fs.Glob(LevelsFS, "*.json")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.TrimSuffix(m, ".json"))
	}
	return out
}
