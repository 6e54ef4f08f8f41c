package board

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

var (
	// ErrWrongDiceCount is returned when a cube set cannot fill the
	// requested board exactly.
	ErrWrongDiceCount = errors.New("cube set does not match board size")
	// ErrBadCubeFile is returned for unusable cube file contents.
	ErrBadCubeFile = errors.New("bad cube file")
)

// CubeSet is a bag of letter dice. Rolling one die per cell produces a
// board; the set must therefore hold exactly size*size dice for a
// size x size game.
type CubeSet struct {
	Name string
	Dice [][]string
}

// classicDice is the standard 16-die English set. A lowercase letter
// extends the previous face, so HIMNQuU is the six faces H I M N Qu U.
var classicDice = []string{
	"AAEEGN", "ABBJOO", "ACHOPS", "AFFKPS",
	"AOOTTW", "CIMOTU", "DEILRX", "DELRVY",
	"DISTTY", "EEGHNW", "EEINSU", "EHRTVW",
	"EIOSST", "ELRTTY", "HIMNQuU", "HLNNRZ",
}

// ClassicCubes returns the built-in 16-die set for 4x4 games.
func ClassicCubes() *CubeSet {
	cs := &CubeSet{Name: "classic16"}
	for _, block := range classicDice {
		cs.Dice = append(cs.Dice, splitFaces(block))
	}
	return cs
}

// splitFaces cuts a contiguous block like "HIMNQu" into faces. Each
// uppercase rune starts a face; lowercase runes extend the previous
// one. Faces come back uppercased.
func splitFaces(block string) []string {
	var faces []string
	for _, r := range block {
		if unicode.IsLower(r) && len(faces) > 0 {
			faces[len(faces)-1] += strings.ToUpper(string(r))
		} else {
			faces = append(faces, strings.ToUpper(string(r)))
		}
	}
	return faces
}

// fields splits a line on whitespace and commas.
func fields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}

// ScanCubes reads a cube set, one die per line. A die may be written
// as separated faces ("A A E E G N" or "Th,He,Qu,...") or as one
// contiguous block ("AAEEGN", "HIMNQu"). Blank lines and lines
// starting with # are skipped.
func ScanCubes(r io.Reader) (*CubeSet, error) {
	cs := &CubeSet{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var faces []string
		if strings.ContainsAny(line, " \t,") {
			for _, f := range fields(line) {
				faces = append(faces, strings.ToUpper(f))
			}
		} else {
			faces = splitFaces(line)
		}
		if len(faces) == 0 {
			return nil, fmt.Errorf("%w: die with no faces", ErrBadCubeFile)
		}
		cs.Dice = append(cs.Dice, faces)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(cs.Dice) == 0 {
		return nil, fmt.Errorf("%w: no dice", ErrBadCubeFile)
	}
	return cs, nil
}

// LoadCubes reads the cube file at path. The set is named after the
// file, without its extension.
func LoadCubes(path string) (*CubeSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open cube file: %w", err)
	}
	defer f.Close()
	cs, err := ScanCubes(f)
	if err != nil {
		return nil, fmt.Errorf("cube file %v: %w", path, err)
	}
	base := filepath.Base(path)
	cs.Name = strings.TrimSuffix(base, filepath.Ext(base))
	log.Debug().Str("name", cs.Name).Int("dice", len(cs.Dice)).Msg("loaded cube set")
	return cs, nil
}

// Roll shakes the cube set into a dim x dim board: the dice are
// shuffled across the cells and each lands with a uniformly random
// face up. A nil rng uses the shared system source.
func Roll(cs *CubeSet, dim int, rng *frand.RNG) (*Board, error) {
	if len(cs.Dice) != dim*dim {
		return nil, fmt.Errorf("%w: %d dice for a %dx%d board",
			ErrWrongDiceCount, len(cs.Dice), dim, dim)
	}
	if rng == nil {
		rng = frand.New()
	}
	order := rng.Perm(len(cs.Dice))
	grid := make([][]string, dim)
	k := 0
	for r := 0; r < dim; r++ {
		grid[r] = make([]string, dim)
		for c := 0; c < dim; c++ {
			die := cs.Dice[order[k]]
			grid[r][c] = die[rng.Intn(len(die))]
			k++
		}
	}
	return New(grid)
}

// SeededRNG returns a deterministic dice source for the given seed.
func SeededRNG(seed uint64) *frand.RNG {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	return frand.NewCustom(key, 1024, 12)
}

// ScanGrid reads a literal board, one row per line, in the same face
// syntax as cube files. The grid is returned as-is; squareness is the
// caller's check.
func ScanGrid(r io.Reader) ([][]string, error) {
	var grid [][]string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var row []string
		if strings.ContainsAny(line, " \t,") {
			for _, f := range fields(line) {
				row = append(row, strings.ToUpper(f))
			}
		} else {
			row = splitFaces(line)
		}
		grid = append(grid, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return grid, nil
}

// LoadGrid reads the board file at path.
func LoadGrid(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open board file: %w", err)
	}
	defer f.Close()
	return ScanGrid(f)
}
