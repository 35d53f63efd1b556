package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Configuration keys.
const (
	MazeWidthKey    = "MAZE_WIDTH"
	MazeHeightKey   = "MAZE_HEIGHT"
	MonsterCountKey = "MONSTER_COUNT"
	CellSizeKey     = "CELL_SIZE"
)

// Built-in defaults, used whole whenever any configured value is unusable.
const (
	DefaultMazeWidth    = 21
	DefaultMazeHeight   = 11
	DefaultMonsterCount = 10
	DefaultCellSize     = 75
)

// Config holds the game's configuration values.
type Config struct {
	MazeWidth    int // Number of grid columns
	MazeHeight   int // Number of grid rows
	MonsterCount int // Number of monsters placed each round
	CellSize     int // Pixel size of a cell, for the display only
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		MazeWidth:    DefaultMazeWidth,
		MazeHeight:   DefaultMazeHeight,
		MonsterCount: DefaultMonsterCount,
		CellSize:     DefaultCellSize,
	}
}

// Load reads the configuration from the given dotenv files (".env" when none
// are given), or from the process environment when they cannot be read.
// If any of the four values is missing, not an integer, or not positive the
// whole configuration is discarded and Defaults is returned.
func Load(filenames ...string) Config {
	lookup := os.LookupEnv
	if values, err := godotenv.Read(filenames...); err == nil {
		lookup = func(key string) (string, bool) {
			v, ok := values[key]
			return v, ok
		}
	} else {
		log.Printf("[APP] [INFO] config file not found or could not be loaded, using environment: %v", err)
	}

	c, err := parse(lookup)
	if err != nil {
		log.Printf("[APP] [INFO] invalid configuration, using defaults: %v", err)
		return Defaults()
	}
	return c
}

// parse reads all four values, failing on the first unusable one.
func parse(lookup func(string) (string, bool)) (Config, error) {
	var c Config
	fields := []struct {
		key string
		dst *int
	}{
		{MazeWidthKey, &c.MazeWidth},
		{MazeHeightKey, &c.MazeHeight},
		{MonsterCountKey, &c.MonsterCount},
		{CellSizeKey, &c.CellSize},
	}

	for _, f := range fields {
		v, err := getPositiveInt(lookup, f.key)
		if err != nil {
			return Config{}, err
		}
		*f.dst = v
	}
	return c, nil
}

// getPositiveInt retrieves a value as a positive integer.
func getPositiveInt(lookup func(string) (string, bool), key string) (int, error) {
	raw, ok := lookup(key)
	if !ok {
		return 0, fmt.Errorf("%s is not set", key)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, value)
	}
	return value, nil
}
