package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/domino14/cubero/board"
	"github.com/domino14/cubero/wordset"
)

func (s *Solver) searchDictionary() []string {
	words := []string{}
	for w := range s.words.Words() {
		if utf8.RuneCountInString(w) < s.minLen {
			continue
		}
		if _, ok := s.place(w); ok {
			words = append(words, w)
		}
	}
	sort.Strings(words)
	return words
}

// PlaceWord finds one path spelling word on the board, in step order,
// one coordinate per cube face. The word need not be in the
// dictionary; this is the placement primitive word submission uses.
func (s *Solver) PlaceWord(word string) ([]board.Coord, bool) {
	return s.place(wordset.Normalize(word))
}

func (s *Solver) place(word string) ([]board.Coord, bool) {
	if word == "" {
		return nil, false
	}
	s.clearVisited()
	dim := s.board.Dim()
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			if path, ok := s.extendWord(board.Coord{Row: r, Col: c}, word, nil); ok {
				return path, true
			}
		}
	}
	return nil, false
}

// extendWord tries to consume the remaining letters starting at c. A
// cell matches only when its whole face is a prefix of what is left,
// so a word can never end in the middle of a multi-letter face.
func (s *Solver) extendWord(c board.Coord, remaining string, path []board.Coord) ([]board.Coord, bool) {
	face := s.board.At(c)
	if !strings.HasPrefix(remaining, face) {
		return nil, false
	}
	idx := c.Row*s.board.Dim() + c.Col
	s.visited[idx] = true
	path = append(path, c)

	rest := remaining[len(face):]
	if rest == "" {
		s.visited[idx] = false
		return path, true
	}
	for _, n := range s.board.Neighbors(c) {
		if !s.visited[n.Row*s.board.Dim()+n.Col] {
			if full, ok := s.extendWord(n, rest, path); ok {
				s.visited[idx] = false
				return full, true
			}
		}
	}

	s.visited[idx] = false
	return nil, false
}
