package config

import (
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.GetInt(BoardSize), 4)
	is.Equal(c.GetInt(NumPlayers), 1)
	is.Equal(c.GetInt(MinWordLength), 4)
	is.Equal(c.GetString(SearchTactic), "board")
	is.Equal(c.GetBool(Debug), false)
	is.Equal(c.GetInt(Seed), 0)
}

func TestFlagsOverride(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{
		"--board-size", "5",
		"--debug",
		"--default-lexicon", "CSW24",
	}))
	is.Equal(c.GetInt(BoardSize), 5)
	is.Equal(c.GetBool(Debug), true)
	is.Equal(c.GetString(DefaultLexicon), "CSW24")
}

func TestEnvOverride(t *testing.T) {
	is := is.New(t)
	t.Setenv("CUBERO_NUM_PLAYERS", "3")
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.GetInt(NumPlayers), 3)
}

func TestArgsAfterFlags(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"--seed", "7", "solve"}))
	is.Equal(c.Args(), []string{"solve"})
}

func TestZeroConfigIsSafe(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.Equal(c.GetString(DataPath), "")
	is.Equal(c.GetInt(BoardSize), 0)
	is.Equal(c.GetBool(Debug), false)
}

func TestDataPaths(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"--data-path", "/tmp/data"}))
	is.Equal(c.WordListPath("NWL23"), filepath.Join("/tmp/data", "lexica", "NWL23.txt"))
	is.Equal(c.CubeSetPath("classic16"), filepath.Join("/tmp/data", "cubes", "classic16.cubes"))
}

func TestAdjustRelativePaths(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load(nil))
	c.AdjustRelativePaths("/opt/cubero")
	is.Equal(c.GetString(DataPath), filepath.Join("/opt/cubero", "data"))

	// Absolute paths stay put.
	c2 := &Config{}
	is.NoErr(c2.Load([]string{"--data-path", "/var/lib/cubero"}))
	c2.AdjustRelativePaths("/opt/cubero")
	is.Equal(c2.GetString(DataPath), "/var/lib/cubero")
}
