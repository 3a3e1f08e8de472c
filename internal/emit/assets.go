// Package emit writes the run's artifacts: PNG layer assets, YAML/JSON
// manifests and the HTML preview page. All output goes through a billy
// filesystem so tests can run against an in-memory sink.
package emit

import (
	"fmt"
	"image/png"
	"log/slog"

	billy "github.com/go-git/go-billy/v5"

	"github.com/panelworks/lcdgen/internal/project"
)

// WriteAssets encodes one PNG per placed layer that carries pixels and
// returns how many were written. Records without decoded pixels (structure
// only runs) are skipped, not an error.
func WriteAssets(fs billy.Filesystem, placed []project.Placed, log *slog.Logger) (int, error) {
	written := 0
	for _, p := range placed {
		if p.Node.Picture == nil {
			continue
		}
		if err := writePNG(fs, p.Record.Filename, p); err != nil {
			return written, err
		}
		log.Debug("wrote layer asset",
			"file", p.Record.Filename,
			"x", p.Record.X, "y", p.Record.Y,
			"w", p.Record.Width, "h", p.Record.Height)
		written++
	}
	return written, nil
}

func writePNG(fs billy.Filesystem, name string, p project.Placed) error {
	f, err := fs.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if err := png.Encode(f, p.Node.Picture); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	return nil
}
