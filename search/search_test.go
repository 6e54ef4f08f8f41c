package search

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/domino14/cubero/board"
	"github.com/domino14/cubero/wordset"
)

func setOf(words ...string) *wordset.WordSet {
	ws := wordset.New()
	for _, w := range words {
		ws.Insert(w)
	}
	return ws
}

func TestTacticFromString(t *testing.T) {
	tac, err := TacticFromString("board")
	require.NoError(t, err)
	assert.Equal(t, BoardDriven, tac)

	tac, err = TacticFromString(" Dictionary ")
	require.NoError(t, err)
	assert.Equal(t, DictionaryDriven, tac)

	_, err = TacticFromString("breadth-first")
	assert.Error(t, err)
}

// On a 2x2 grid diagonal adjacency makes both AB and ABD trace.
func TestSearchTinyBoard(t *testing.T) {
	b := board.MustNew([][]string{
		{"A", "B"},
		{"C", "D"},
	})
	ws := setOf("AB", "ABD")
	s := NewSolver(b, ws, 2)

	assert.Equal(t, []string{"AB", "ABD"}, s.Search(BoardDriven))
	assert.Equal(t, []string{"AB", "ABD"}, s.Search(DictionaryDriven))
}

// On a 2x2 board every cell touches every other, so ACT traces right
// alongside CAT and CATS.
func TestSearchCatsBoard(t *testing.T) {
	b := board.MustNew(board.CatsBoard)
	ws := setOf("CAT", "CATS", "ACT")
	s := NewSolver(b, ws, 3)

	want := []string{"ACT", "CAT", "CATS"}
	assert.Equal(t, want, s.Search(BoardDriven))
	assert.Equal(t, want, s.Search(DictionaryDriven))
}

// The 3x3 split board keeps C and T apart: CAT and CATS survive, ACT
// does not.
func TestSearchSplitCatsBoard(t *testing.T) {
	b := board.MustNew(board.SplitCatsBoard)
	ws := setOf("CAT", "CATS", "ACT")
	s := NewSolver(b, ws, 3)

	want := []string{"CAT", "CATS"}
	assert.Equal(t, want, s.Search(BoardDriven))
	assert.Equal(t, want, s.Search(DictionaryDriven))
}

func TestSearchMinLength(t *testing.T) {
	b := board.MustNew(board.CatsBoard)
	ws := setOf("CAT", "CATS", "AT", "A")

	assert.Equal(t, []string{"CATS"}, NewSolver(b, ws, 4).Search(BoardDriven))
	assert.Equal(t, []string{"CATS"}, NewSolver(b, ws, 4).Search(DictionaryDriven))
	assert.Equal(t,
		[]string{"A", "AT", "CAT", "CATS"},
		NewSolver(b, ws, 1).Search(BoardDriven))
}

func TestSearchMultiLetterFace(t *testing.T) {
	b := board.MustNew(board.QueensBoard)
	// Q alone can never match the QU face; QUEEN spends it in one step.
	ws := setOf("QUEEN", "QUEENS", "Q", "QUE")
	s := NewSolver(b, ws, 1)

	want := []string{"QUE", "QUEEN", "QUEENS"}
	assert.Equal(t, want, s.Search(BoardDriven))
	assert.Equal(t, want, s.Search(DictionaryDriven))
}

func TestSearchNoCellReuse(t *testing.T) {
	b := board.MustNew(board.CatsBoard)
	// TAT would need the lone T twice.
	ws := setOf("TAT", "CATC")
	s := NewSolver(b, ws, 3)

	assert.Empty(t, s.Search(BoardDriven))
	assert.Empty(t, s.Search(DictionaryDriven))
}

func TestSearchEmptyDictionary(t *testing.T) {
	b := board.MustNew(board.CatsBoard)
	s := NewSolver(b, wordset.New(), 3)
	assert.Empty(t, s.Search(BoardDriven))
	assert.Empty(t, s.Search(DictionaryDriven))
}

// Searching twice must give identical results; the visited scratch is
// fully unwound even on pruned paths.
func TestSearchRepeatable(t *testing.T) {
	b := board.MustNew(board.DogsBoard)
	ws := setOf("DOG", "DOGS", "ANTE", "RIPS", "TONE", "ANTS", "GOAD", "PANTS", "ZZZQ")
	s := NewSolver(b, ws, 3)

	first := s.Search(BoardDriven)
	second := s.Search(BoardDriven)
	assert.Equal(t, first, second)
	assert.True(t, sort.StringsAreSorted(first))

	assert.Equal(t, first, s.Search(DictionaryDriven))
}

func TestPlaceWord(t *testing.T) {
	b := board.MustNew(board.CatsBoard)
	s := NewSolver(b, setOf("CAT"), 3)

	path, ok := s.PlaceWord("cat")
	require.True(t, ok)
	assert.Equal(t, []board.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}, path)

	// Placement does not consult the dictionary.
	path, ok = s.PlaceWord("TSAC")
	require.True(t, ok)
	assert.Len(t, path, 4)

	_, ok = s.PlaceWord("TAT")
	assert.False(t, ok)
	_, ok = s.PlaceWord("")
	assert.False(t, ok)
}

func TestPlaceWordQuFace(t *testing.T) {
	b := board.MustNew(board.QueensBoard)
	s := NewSolver(b, wordset.New(), 1)

	path, ok := s.PlaceWord("queen")
	require.True(t, ok)
	// One coordinate per face: QU-E-E-N is four cells.
	assert.Len(t, path, 4)
	assert.Equal(t, board.Coord{Row: 0, Col: 0}, path[0])

	_, ok = s.PlaceWord("Q")
	assert.False(t, ok)
}

func TestVerify(t *testing.T) {
	b := board.MustNew(board.DogsBoard)
	ws := setOf("DOG", "DOGS", "ANTE", "RIPS", "TONE", "GOAT", "NOPE")
	err := Verify(context.Background(), NewSolver(b, ws, 3))
	assert.NoError(t, err)
}

// Both tactics must agree on any board; roll a batch of real boards
// against a small lexicon and cross-check.
func TestTacticEquivalenceOnRolledBoards(t *testing.T) {
	ws := setOf(
		"TREE", "TEES", "TOES", "NOTE", "NOTES", "RATE", "RATES", "STAR",
		"EAST", "SEAT", "TEAS", "NEAT", "ANTE", "RENT", "RENTS", "TONE",
		"QUEEN", "QUEST", "QUIT", "QUITE", "NINE", "ONES", "EONS", "DOES",
		"DOSE", "ODES", "SODA", "TOAD", "GOAT", "GOATS", "HINT", "THIN",
		"WENT", "WEST", "STEW", "NEST", "NETS", "SENT", "TENS", "LINT",
	)
	cubes := board.ClassicCubes()
	for seed := uint64(1); seed <= 25; seed++ {
		rng := board.SeededRNG(seed)
		b, err := board.Roll(cubes, 4, rng)
		require.NoError(t, err)

		s := NewSolver(b, ws, 4)
		fromBoard := s.Search(BoardDriven)
		fromDict := s.Search(DictionaryDriven)
		assert.Equal(t, fromBoard, fromDict, "seed %d board\n%s", seed, b.ToDisplayText())

		assert.NoError(t, Verify(context.Background(), s))
	}
}

func TestSearchTrace(t *testing.T) {
	b := board.MustNew(board.CatsBoard)
	ws := setOf("CAT", "CATS", "ACT")
	s := NewSolver(b, ws, 3)

	var buf bytes.Buffer
	s.SetLogStream(&buf)
	found := s.Search(BoardDriven)

	var events []logEvent
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &events))
	require.Len(t, events, len(found))
	words := make([]string, len(events))
	for i, ev := range events {
		words[i] = ev.Word
		assert.Equal(t, ev.Cells, len(ev.Path))
		assert.NotEmpty(t, ev.Path)
	}
	sort.Strings(words)
	assert.Equal(t, found, words)

	// Turning the stream off stops the trace.
	s.SetLogStream(nil)
	buf.Reset()
	s.Search(BoardDriven)
	assert.Zero(t, buf.Len())
}

func BenchmarkSearchBoardDriven(bench *testing.B) {
	ws := setOf(
		"TREE", "NOTE", "RATE", "STAR", "EAST", "SEAT", "NEAT", "ANTE",
		"RENT", "TONE", "NEST", "SENT", "LINT", "DOGS", "RIPS",
	)
	b, err := board.Roll(board.ClassicCubes(), 4, board.SeededRNG(99))
	if err != nil {
		bench.Fatal(err)
	}
	s := NewSolver(b, ws, 4)
	bench.ResetTimer()
	for i := 0; i < bench.N; i++ {
		s.Search(BoardDriven)
	}
}

func ExampleSolver_Search() {
	b := board.MustNew(board.CatsBoard)
	ws := setOf("CAT", "CATS")
	s := NewSolver(b, ws, 3)
	fmt.Println(s.Search(BoardDriven))
	// Output: [CAT CATS]
}
