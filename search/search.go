// Package search finds dictionary words on a board. Two tactics are
// implemented: walking the board and pruning by dictionary prefix, or
// walking the dictionary and placing each word. They always agree on
// the result set; `Verify` cross-checks them.
package search

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/cubero/board"
	"github.com/domino14/cubero/wordset"
)

// Tactic selects the algorithm used to enumerate all words.
type Tactic int

const (
	// BoardDriven explores every path on the board depth-first,
	// pruning paths that are not a prefix of any dictionary word.
	BoardDriven Tactic = iota
	// DictionaryDriven tries to place every dictionary word on the
	// board instead. Slower when the dictionary dwarfs the board, but
	// a useful cross-check.
	DictionaryDriven
)

func (t Tactic) String() string {
	switch t {
	case DictionaryDriven:
		return "dictionary"
	default:
		return "board"
	}
}

// TacticFromString parses "board" or "dictionary".
func TacticFromString(s string) (Tactic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "board", "b":
		return BoardDriven, nil
	case "dictionary", "dict", "d":
		return DictionaryDriven, nil
	}
	return BoardDriven, fmt.Errorf("unknown search tactic %q", s)
}

// Solver searches one board against one word set. It is not safe for
// concurrent use; the visited scratch is shared across calls.
type Solver struct {
	board  *board.Board
	words  *wordset.WordSet
	minLen int

	visited   []bool
	path      []board.Coord
	logStream io.Writer
}

// NewSolver binds a solver to a board and a word set. Words shorter
// than minLen letters are never reported.
func NewSolver(b *board.Board, ws *wordset.WordSet, minLen int) *Solver {
	return &Solver{
		board:   b,
		words:   ws,
		minLen:  minLen,
		visited: make([]bool, b.Dim()*b.Dim()),
	}
}

// SetLogStream directs a yaml trace of every found word (and the path
// it was found on) to l. Pass nil to turn tracing back off.
func (s *Solver) SetLogStream(l io.Writer) {
	s.logStream = l
}

// Search enumerates every placeable dictionary word of sufficient
// length, sorted ascending.
func (s *Solver) Search(t Tactic) []string {
	switch t {
	case DictionaryDriven:
		return s.searchDictionary()
	default:
		return s.searchBoard()
	}
}

func (s *Solver) searchBoard() []string {
	found := make(map[string]struct{})
	s.clearVisited()
	s.path = s.path[:0]
	dim := s.board.Dim()
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			s.extendPath(board.Coord{Row: r, Col: c}, "", found)
		}
	}
	words := lo.Keys(found)
	sort.Strings(words)
	return words
}

// extendPath visits c as the next step of the current path. The
// visited marker goes up on entry and comes down on every way out,
// prune included.
func (s *Solver) extendPath(c board.Coord, prefix string, found map[string]struct{}) {
	idx := c.Row*s.board.Dim() + c.Col
	s.visited[idx] = true
	s.path = append(s.path, c)

	word := prefix + s.board.At(c)
	if !s.words.ContainsPrefix(word) {
		s.visited[idx] = false
		s.path = s.path[:len(s.path)-1]
		return
	}
	if utf8.RuneCountInString(word) >= s.minLen && s.words.ContainsWord(word) {
		if _, seen := found[word]; !seen {
			found[word] = struct{}{}
			s.logFound(word)
		}
	}
	for _, n := range s.board.Neighbors(c) {
		if !s.visited[n.Row*s.board.Dim()+n.Col] {
			s.extendPath(n, word, found)
		}
	}

	s.visited[idx] = false
	s.path = s.path[:len(s.path)-1]
}

func (s *Solver) clearVisited() {
	for i := range s.visited {
		s.visited[i] = false
	}
}

// logEvent is one found word in the search trace.
type logEvent struct {
	Word  string   `json:"word" yaml:"word"`
	Path  []string `json:"path" yaml:"path,flow"`
	Cells int      `json:"cells" yaml:"cells"`
}

func (s *Solver) logFound(word string) {
	if s.logStream == nil {
		return
	}
	ev := logEvent{
		Word: word,
		Path: lo.Map(s.path, func(c board.Coord, _ int) string {
			return c.String()
		}),
		Cells: len(s.path),
	}
	out, err := yaml.Marshal([]logEvent{ev})
	if err != nil {
		log.Error().Err(err).Msg("marshalling search trace")
		return
	}
	s.logStream.Write(out)
}
