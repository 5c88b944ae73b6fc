package geobuffer

import (
	"sort"

	"github.com/lvltools/geobufgen/mapping"
	"github.com/rs/zerolog/log"
)

// Aggregate folds nonzero max counts into per-category totals and emits one
// entry per distinct category, sorted ascending by X. Ids sharing a category
// add their counts; zero counts contribute nothing. Fold order follows table
// id order, and entries with equal X keep that fold order.
func Aggregate(table *mapping.Table, counts MaxCounts) []Entry {
	totals := make(map[mapping.Category]int)
	var order []mapping.Category
	for _, id := range table.IDs() {
		n := counts[id]
		if n == 0 {
			continue
		}
		c, ok := table.Category(id)
		if !ok {
			continue
		}
		if _, seen := totals[c]; !seen {
			order = append(order, c)
		}
		totals[c] += n
	}

	entries := make([]Entry, 0, len(order))
	for _, c := range order {
		entries = append(entries, Entry{X: c.X, Y: c.Y, Count: totals[c]})
	}
	// 只按 X 排序，相同 X 保持折叠顺序
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].X < entries[j].X })

	log.Debug().Int("entries", len(entries)).Msg("Aggregated category totals")
	return entries
}
