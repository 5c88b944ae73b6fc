// Package levelfile parses tile placement level files into row grids.
package levelfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// RowWidth is the fixed number of values per level data row.
const RowWidth = 5

// Row is one line of level data.
type Row [RowWidth]int

// LevelGrid holds the parsed rows in file order. Immutable once Parse
// returns; Row hands out copies.
type LevelGrid struct {
	rows []Row
}

// Len returns the number of rows in the grid.
func (g *LevelGrid) Len() int { return len(g.rows) }

// Row returns a copy of the row at index i.
func (g *LevelGrid) Row(i int) Row { return g.rows[i] }

// Empty reports whether no data rows were accepted.
func (g *LevelGrid) Empty() bool { return len(g.rows) == 0 }

// Policy controls how malformed data candidate lines are handled.
type Policy int

const (
	// PolicyLenient drops malformed candidate lines and keeps going.
	PolicyLenient Policy = iota
	// PolicyStrict fails on the first malformed candidate line.
	PolicyStrict
)

// Parse reads a level file into a LevelGrid under the lenient policy.
func Parse(path string) (*LevelGrid, error) {
	return ParseWith(path, PolicyLenient)
}

// ParseWith reads a level file under the given policy.
//
// Blank lines are skipped. A line whose trimmed content starts with "data="
// (any case) marks the start of the data section and is itself skipped.
// A line counts as a data candidate once the marker has been seen, or when
// it contains a comma. Candidates must yield exactly RowWidth integers.
func ParseWith(path string, policy Policy) (*LevelGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level file: %w", err)
	}
	defer f.Close()

	grid := &LevelGrid{}
	sc := bufio.NewScanner(f)
	// junk lines can exceed the default 64KiB token cap
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	dataStarted := false
	lineNo := 0
	dropped := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(line), "data=") {
			dataStarted = true
			continue
		}
		if !dataStarted && !strings.Contains(line, ",") {
			continue
		}
		row, ok := parseRow(line)
		if !ok {
			if policy == PolicyStrict {
				return nil, fmt.Errorf("malformed data line %d: %q", lineNo, line)
			}
			dropped++
			continue
		}
		grid.rows = append(grid.rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read level file: %w", err)
	}
	if dropped > 0 {
		log.Debug().Int("dropped", dropped).Int("rows", grid.Len()).Msg("Dropped malformed level lines")
	}
	return grid, nil
}

// parseRow splits a candidate line into exactly RowWidth integers.
// Empty tokens from trailing or doubled commas are ignored.
func parseRow(line string) (Row, bool) {
	var row Row
	fields := make([]string, 0, RowWidth)
	for _, p := range strings.Split(strings.TrimSuffix(line, ","), ",") {
		// 只跳过空字段，空白字段计入宽度
		if p == "" {
			continue
		}
		fields = append(fields, p)
	}
	if len(fields) != RowWidth {
		return row, false
	}
	for i, p := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return row, false
		}
		row[i] = v
	}
	return row, true
}
