package geobuffer

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// Write serializes entries to path, one "x,y,z" line each, replacing any
// existing file. A failed write may leave partial output behind; there is
// no atomic-rename step.
func Write(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%d,%d,%d\n", e.X, e.Y, e.Count); err != nil {
			f.Close()
			return fmt.Errorf("write output file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	log.Debug().Int("entries", len(entries)).Str("path", path).Msg("GeoBuffer list written")
	return nil
}
