// Package mapping holds the item id to output category conversion table.
package mapping

import (
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

// Category is the output key an item id converts to.
type Category struct {
	X int
	Y int
}

// Group is one conversion map entry: every listed id maps to To.
// File format: [{"ids": [...], "to": [x, y]}, ...]
type Group struct {
	IDs []int  `json:"ids"`
	To  [2]int `json:"to"`
}

// overrideEntry is one roller override config entry.
// File format: [{"name": "...", "to": [x, y]}, ...]
type overrideEntry struct {
	Name string `json:"name"`
	To   []int  `json:"to"`
}

// RollerIDs are the item ids a roller override reassigns as a group.
var RollerIDs = [...]int{41, 42, 43, 44, 579, 580, 587, 588}

// rollerFallback applies when overrides are configured but neither the
// selected name nor "Default" exists.
var rollerFallback = Category{X: 24, Y: 4}

// Table maps item ids to categories and remembers first-seen id order so
// downstream aggregation is deterministic. It is not safe for concurrent
// use: callers mixing ApplyRollerOverride with reads must serialize both
// behind a single lock.
type Table struct {
	cats      map[int]Category
	order     []int
	overrides map[string]Category
	ovNames   []string // 覆盖项名称，保持配置顺序
}

// NewTable builds a Table from ordered groups. A duplicate id keeps its
// first position in table order but takes the last group's category.
func NewTable(groups []Group) *Table {
	t := &Table{cats: make(map[int]Category)}
	for _, g := range groups {
		c := Category{X: g.To[0], Y: g.To[1]}
		for _, id := range g.IDs {
			t.set(id, c)
		}
	}
	return t
}

func (t *Table) set(id int, c Category) {
	if _, seen := t.cats[id]; !seen {
		t.order = append(t.order, id)
	}
	t.cats[id] = c
}

// Load reads a conversion map config file and builds the Table.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read conversion map: %w", err)
	}
	var groups []Group
	if err := sonic.Unmarshal(raw, &groups); err != nil {
		return nil, fmt.Errorf("decode conversion map %s: %w", path, err)
	}
	t := NewTable(groups)
	log.Debug().Int("groups", len(groups)).Int("ids", t.Len()).Str("path", path).Msg("Conversion map loaded")
	return t, nil
}

// Category returns the category mapped to id, if any.
func (t *Table) Category(id int) (Category, bool) {
	c, ok := t.cats[id]
	return c, ok
}

// IDs returns the mapped ids in table order.
func (t *Table) IDs() []int {
	ids := make([]int, len(t.order))
	copy(ids, t.order)
	return ids
}

// Len returns the number of mapped ids.
func (t *Table) Len() int { return len(t.order) }

// LoadRollerOverrides attaches roller override entries from the first
// readable path. Missing or undecodable files are skipped; when nothing
// usable is found the table keeps no overrides and ApplyRollerOverride
// becomes a no-op.
func (t *Table) LoadRollerOverrides(paths ...string) {
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var entries []overrideEntry
		if err := sonic.Unmarshal(raw, &entries); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Ignoring undecodable roller override config")
			continue
		}
		t.setOverrides(entries)
		log.Debug().Int("entries", len(t.ovNames)).Str("path", path).Msg("Roller overrides loaded")
		return
	}
}

// setOverrides keeps usable entries in config order. Entries missing a
// name or a 2-int category are skipped.
func (t *Table) setOverrides(entries []overrideEntry) {
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" || len(e.To) < 2 {
			continue
		}
		if t.overrides == nil {
			t.overrides = make(map[string]Category)
		}
		if _, dup := t.overrides[name]; !dup {
			t.ovNames = append(t.ovNames, name)
		}
		t.overrides[name] = Category{X: e.To[0], Y: e.To[1]}
	}
}

// OverrideNames lists the usable override entries in config order.
func (t *Table) OverrideNames() []string {
	names := make([]string, len(t.ovNames))
	copy(names, t.ovNames)
	return names
}

// ApplyRollerOverride reassigns all roller ids to the category selected by
// name, falling back to the "Default" entry and then to (24, 4). Without
// configured overrides it does nothing and the rollers keep whatever the
// primary groups assigned. Idempotent: reapplying a name changes nothing.
func (t *Table) ApplyRollerOverride(name string) {
	if len(t.overrides) == 0 {
		return
	}
	c, ok := t.overrides[name]
	if !ok {
		c, ok = t.overrides["Default"]
	}
	if !ok {
		c = rollerFallback
	}
	for _, id := range RollerIDs {
		t.set(id, c)
	}
	log.Debug().Str("roller", name).Int("x", c.X).Int("y", c.Y).Msg("Roller override applied")
}
