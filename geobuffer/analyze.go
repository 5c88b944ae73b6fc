package geobuffer

import (
	"errors"
	"fmt"

	"github.com/lvltools/geobufgen/levelfile"
	"github.com/lvltools/geobufgen/mapping"
	"github.com/rs/zerolog/log"
)

// ErrWindowSize reports a window size the analyzer cannot run with.
var ErrWindowSize = errors.New("window size must be a positive integer")

// Analyze computes MaxCounts over every contiguous window of `window` rows
// in the grid. Every id in the table gets an entry, seeded with 0. A grid
// shorter than the window has no windows at all and every count stays 0.
//
// Each window is recounted from scratch. Intended operating range is
// hundreds to low thousands of rows with windows around 200.
func Analyze(grid *levelfile.LevelGrid, window int, table *mapping.Table) (MaxCounts, error) {
	if window < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrWindowSize, window)
	}

	counts := make(MaxCounts, table.Len())
	for _, id := range table.IDs() {
		counts[id] = 0
	}

	total := grid.Len()
	for start := 0; start+window <= total; start++ {
		freq := make(map[int]int)
		for r := start; r < start+window; r++ {
			row := grid.Row(r)
			for _, id := range row {
				if _, ok := table.Category(id); ok {
					freq[id]++
				}
			}
		}
		for id, n := range freq {
			if n > counts[id] {
				counts[id] = n
			}
		}
	}

	log.Debug().Int("rows", total).Int("window", window).Int("ids", len(counts)).Msg("Window analysis finished")
	return counts, nil
}
