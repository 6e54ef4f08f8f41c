// Package config holds all runtime settings, bound from command-line
// flags and CUBERO_* environment variables.
package config

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Known configuration keys.
const (
	DataPath       = "data-path"
	DefaultLexicon = "default-lexicon"
	DefaultCubeSet = "default-cube-set"
	BoardSize      = "board-size"
	NumPlayers     = "num-players"
	MinWordLength  = "min-word-length"
	SearchTactic   = "search-tactic"
	Debug          = "debug"
	Seed           = "seed"
)

// Config wraps a viper instance. The zero Config is usable but empty;
// call Load to bind flags, defaults and the environment.
type Config struct {
	v    *viper.Viper
	args []string
}

// Load parses args (without the program name) and binds every known
// key. Environment variables override defaults and flags override
// both: --board-size 5 or CUBERO_BOARD_SIZE=5.
func (c *Config) Load(args []string) error {
	c.v = viper.New()

	fs := pflag.NewFlagSet("cubero", pflag.ContinueOnError)
	fs.String(DataPath, "./data", "directory holding word lists and cube files")
	fs.String(DefaultLexicon, "NWL23", "name of the default word list (.txt under <data>/lexica)")
	fs.String(DefaultCubeSet, "classic16", "name of the default cube set (.cubes under <data>/cubes)")
	fs.Int(BoardSize, 4, "side length of rolled boards")
	fs.Int(NumPlayers, 1, "players per game")
	fs.Int(MinWordLength, 4, "minimum acceptable word length")
	fs.String(SearchTactic, "board", "search tactic for finding all words: board or dictionary")
	fs.Bool(Debug, false, "debug logging")
	fs.Int(Seed, 0, "fix the dice with a nonzero seed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}

	c.v.SetEnvPrefix("cubero")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	return nil
}

// Args returns the non-flag arguments left over after Load, so a
// command line can mix settings with a one-shot shell command.
func (c *Config) Args() []string {
	return c.args
}

// AdjustRelativePaths anchors a relative data-path at basepath, so the
// binary finds its data no matter where it is launched from.
func (c *Config) AdjustRelativePaths(basepath string) {
	if c.v == nil {
		return
	}
	dp := c.v.GetString(DataPath)
	if !filepath.IsAbs(dp) {
		adjusted := filepath.Join(basepath, dp)
		c.v.Set(DataPath, adjusted)
		log.Debug().Str(DataPath, adjusted).Msg("adjusted data path")
	}
}

func (c *Config) GetString(key string) string {
	if c.v == nil {
		return ""
	}
	return c.v.GetString(key)
}

func (c *Config) GetInt(key string) int {
	if c.v == nil {
		return 0
	}
	return c.v.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	if c.v == nil {
		return false
	}
	return c.v.GetBool(key)
}

// Set overrides a single key at runtime.
func (c *Config) Set(key string, value any) {
	if c.v == nil {
		c.v = viper.New()
	}
	c.v.Set(key, value)
}

// AllSettings returns every bound key and value, for logging at
// startup.
func (c *Config) AllSettings() map[string]any {
	if c.v == nil {
		return nil
	}
	return c.v.AllSettings()
}

// WordListPath locates a word list by lexicon name.
func (c *Config) WordListPath(lexicon string) string {
	return filepath.Join(c.GetString(DataPath), "lexica", lexicon+".txt")
}

// CubeSetPath locates a cube file by set name.
func (c *Config) CubeSetPath(name string) string {
	return filepath.Join(c.GetString(DataPath), "cubes", name+".cubes")
}
