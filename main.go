package main

import (
	"flag"
	"os"

	"github.com/lvltools/geobufgen/geobuffer"
	"github.com/lvltools/geobufgen/levelfile"
	"github.com/lvltools/geobufgen/mapping"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		configPath = flag.String("config", "geobufgen.yaml", "settings file path")
		inPath     = flag.String("in", "", "input level file")
		outPath    = flag.String("out", "", "output geoBuffer file")
		window     = flag.Int("window", 0, "sliding window size in rows")
		roller     = flag.String("roller", "", "roller override name")
		preset     = flag.Bool("geobuffer0", true, "prepend the GeoBuffer0 preset")
		strict     = flag.Bool("strict", false, "reject malformed data lines instead of dropping them")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	logFile, err := initLogger(*debug)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}
	defer logFile.Close()

	log.Info().Str("version", Version).Msg("GeoBuffer Generator")

	set, err := readSettings(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load settings")
	}
	applyFlags(&set, *outPath, *window, *roller, *preset)

	if *inPath == "" {
		log.Fatal().Msg("Usage: geobufgen -in <level file> [-out <file>] [-window <rows>] [-roller <name>]")
	}

	table, err := mapping.Load(set.ConversionMap)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load conversion map")
	}
	table.LoadRollerOverrides(set.RollerConfigs...)
	table.ApplyRollerOverride(set.Roller)
	log.Info().Int("ids", table.Len()).Str("roller", set.Roller).Msg("Conversion table ready")

	policy := levelfile.PolicyLenient
	if *strict {
		policy = levelfile.PolicyStrict
	}
	grid, err := levelfile.ParseWith(*inPath, policy)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse level file")
	}
	if grid.Empty() {
		log.Fatal().Str("path", *inPath).Msg("No valid level data found in the file.")
	}
	log.Info().Int("rows", grid.Len()).Str("path", *inPath).Msg("Level file parsed")

	counts, err := geobuffer.Analyze(grid, set.Window, table)
	if err != nil {
		log.Fatal().Err(err).Msg("Window analysis failed")
	}

	entries := geobuffer.Aggregate(table, counts)
	entries = geobuffer.InjectPreset(entries, set.GeoBuffer0)
	if len(entries) == 0 {
		log.Info().Msg("No matching item IDs were found in the level data.")
		return
	}

	if err := geobuffer.Write(set.Output, entries); err != nil {
		log.Fatal().Err(err).Msg("Failed to write output file")
	}
	log.Info().Int("entries", len(entries)).Str("path", set.Output).Msg("GeoBuffer information written")
}

// applyFlags lets explicitly set flags win over settings-file values.
func applyFlags(set *Settings, outPath string, window int, roller string, preset bool) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			set.Output = outPath
		case "window":
			set.Window = window
		case "roller":
			set.Roller = roller
		case "geobuffer0":
			set.GeoBuffer0 = preset
		}
	})
}

// initLogger routes zerolog to the console and a log file next to the tool.
func initLogger(debug bool) (*os.File, error) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	logFile, err := os.OpenFile("geobufgen.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	log.Logger = log.Output(zerolog.MultiLevelWriter(console, logFile))
	return logFile, nil
}
