package geobuffer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lvltools/geobufgen/levelfile"
	"github.com/lvltools/geobufgen/mapping"
)

func parseFixture(t *testing.T, lines ...string) *levelfile.LevelGrid {
	t.Helper()
	path := filepath.Join(t.TempDir(), "level.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	grid, err := levelfile.Parse(path)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return grid
}

func TestAnalyzeTwoRowWindow(t *testing.T) {
	grid := parseFixture(t,
		"1,1,1,1,1",
		"2,2,2,2,2",
		"1,1,1,1,1",
	)
	table := mapping.NewTable([]mapping.Group{
		{IDs: []int{1}, To: [2]int{0, 0}},
		{IDs: []int{2}, To: [2]int{1, 0}},
	})

	counts, err := Analyze(grid, 2, table)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if counts[1] != 5 || counts[2] != 5 {
		t.Fatalf("counts = %v", counts)
	}
}

func TestAnalyzeWindowLargerThanGrid(t *testing.T) {
	grid := parseFixture(t, "1,1,1,1,1")
	table := mapping.NewTable([]mapping.Group{
		{IDs: []int{1, 2}, To: [2]int{0, 0}},
	})

	counts, err := Analyze(grid, 5, table)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("expect every mapped id seeded, got %v", counts)
	}
	if counts[1] != 0 || counts[2] != 0 {
		t.Fatalf("counts = %v", counts)
	}
}

func TestAnalyzeWindowEqualsGridLength(t *testing.T) {
	grid := parseFixture(t,
		"1,2,1,2,1",
		"2,2,0,0,1",
	)
	table := mapping.NewTable([]mapping.Group{
		{IDs: []int{1}, To: [2]int{0, 0}},
		{IDs: []int{2}, To: [2]int{1, 0}},
	})

	counts, err := Analyze(grid, 2, table)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	// 单窗口等于全局计数
	if counts[1] != 4 || counts[2] != 4 {
		t.Fatalf("counts = %v", counts)
	}
}

func TestAnalyzeMaxAcrossWindows(t *testing.T) {
	grid := parseFixture(t,
		"1,0,0,0,0",
		"1,1,0,0,0",
		"1,1,1,1,0",
	)
	table := mapping.NewTable([]mapping.Group{
		{IDs: []int{1}, To: [2]int{0, 0}},
	})

	counts, err := Analyze(grid, 2, table)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	// windows: rows 0-1 count 3, rows 1-2 count 6
	if counts[1] != 6 {
		t.Fatalf("counts[1] = %d, want 6", counts[1])
	}
}

func TestAnalyzeIgnoresUnmappedIDs(t *testing.T) {
	grid := parseFixture(t, "9,9,9,9,1")
	table := mapping.NewTable([]mapping.Group{
		{IDs: []int{1}, To: [2]int{0, 0}},
	})

	counts, err := Analyze(grid, 1, table)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if _, ok := counts[9]; ok {
		t.Fatalf("unmapped id 9 should not appear, got %v", counts)
	}
	if counts[1] != 1 {
		t.Fatalf("counts[1] = %d", counts[1])
	}
}

func TestAnalyzeSeedsAbsentIDs(t *testing.T) {
	grid := parseFixture(t, "1,1,1,1,1")
	table := mapping.NewTable([]mapping.Group{
		{IDs: []int{1}, To: [2]int{0, 0}},
		{IDs: []int{7}, To: [2]int{2, 4}},
	})

	counts, err := Analyze(grid, 1, table)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	got, ok := counts[7]
	if !ok {
		t.Fatalf("expect id 7 seeded with 0")
	}
	if got != 0 {
		t.Fatalf("counts[7] = %d, want 0", got)
	}
}

func TestAnalyzeRejectsBadWindowSize(t *testing.T) {
	grid := parseFixture(t, "1,1,1,1,1")
	table := mapping.NewTable([]mapping.Group{
		{IDs: []int{1}, To: [2]int{0, 0}},
	})

	for _, w := range []int{0, -3} {
		if _, err := Analyze(grid, w, table); !errors.Is(err, ErrWindowSize) {
			t.Fatalf("window %d: err = %v, want ErrWindowSize", w, err)
		}
	}
}
