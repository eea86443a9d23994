package levels

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrShape is returned when a decoded grid does not match the expected size.
var ErrShape = errors.New("grid dimensions mismatch")

var errTrailingData = errors.New("unexpected data after grid")

// Decode reads a JSON grid from r. When w and h are positive the decoded grid
// must be exactly w x h.
func Decode(r io.Reader, w, h int) (*Grid, error) {
	var g Grid
	dec := json.NewDecoder(r)
	if err := dec.Decode(&g); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailingData
	}
	if w > 0 && h > 0 && (g.Width != w || g.Height != h) {
		return nil, fmt.Errorf("%w: got %dx%d, want %dx%d", ErrShape, g.Width, g.Height, w, h)
	}
	return &g, nil
}

// Encode writes g to wr as a JSON array of rows.
func Encode(wr io.Writer, g *Grid) error {
	return json.NewEncoder(wr).Encode(g)
}

// Load reads the grid stored at path. A missing file yields an error matching
// fs.ErrNotExist.
func Load(path string, w, h int) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Decode(f, w, h)
	if err != nil {
		return nil, fmt.Errorf("levels: decode %s: %w", path, err)
	}
	return g, nil
}

// Save writes g to path, creating the parent directory if needed.
func Save(path string, g *Grid) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, g); err != nil {
		f.Close()
		return fmt.Errorf("levels: encode %s: %w", path, err)
	}
	return f.Close()
}
