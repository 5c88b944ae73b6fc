package geobuffer

// geoBuffer0 is the fixed base-loadout list optionally prepended to the
// computed entries. The triples are independent literals with no relation
// to the conversion table.
var geoBuffer0 = []Entry{
	{0, 0, 100}, {1, 0, 20}, {2, 0, 15}, {3, 0, 12}, {4, 0, 5}, {5, 0, 10},
	{6, 0, 80}, {7, 0, 15}, {8, 0, 10}, {9, 0, 15}, {10, 0, 45}, {11, 0, 30},
	{12, 0, 90}, {13, 0, 70}, {14, 0, 120}, {30, 4, 10}, {44, 4, 20}, {62, 4, 5},
	{64, 4, 10}, {70, 2, 10}, {71, 2, 2}, {72, 2, 10}, {73, 2, 15}, {77, 5, 40},
	{78, 5, 50}, {80, 9, 60}, {81, 9, 60}, {82, 9, 45}, {83, 9, 45}, {84, 9, 20},
	{85, 9, 20}, {86, 9, 60}, {87, 9, 40}, {88, 9, 10}, {89, 9, 40}, {90, 9, 40},
	{91, 9, 40}, {92, 9, 40}, {93, 9, 40}, {94, 9, 40}, {95, 9, 40}, {96, 9, 40},
	{97, 9, 40}, {98, 9, 40}, {99, 9, 40}, {100, 9, 40}, {101, 8, 650}, {103, 10, 1},
	{104, 10, 2}, {105, 6, 1}, {107, 10, 1}, {108, 6, 1}, {109, 6, 1}, {112, 1, 60},
	{114, 10, 50}, {217, 6, 10}, {218, 6, 3}, {233, 9, 40}, {364, 10, 1},
}

// InjectPreset prepends the GeoBuffer0 preset when enabled. The preset is
// never deduplicated or merged against the computed entries; categories may
// repeat between the two sections. Disabled, the input comes back unchanged.
func InjectPreset(entries []Entry, enabled bool) []Entry {
	if !enabled {
		return entries
	}
	out := make([]Entry, 0, len(geoBuffer0)+len(entries))
	out = append(out, geoBuffer0...)
	return append(out, entries...)
}
