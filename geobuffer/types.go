// Package geobuffer turns parsed level grids into the ordered geoBuffer
// entry list: windowed max counts per item id, folded into category totals.
package geobuffer

// Entry is one output triple: the category pair and its summed count.
type Entry struct {
	X     int
	Y     int
	Count int
}

// MaxCounts records, per mapped item id, the highest occurrence count seen
// in any analysis window. Ids that never occur stay at 0.
type MaxCounts map[int]int
