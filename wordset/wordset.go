// Package wordset implements the lexicon for the game: a trie that
// answers exact-word and prefix queries, and iterates words in the
// order they were first inserted.
package wordset

import (
	"iter"
	"strings"
)

// node is a single trie state. Nodes live in a flat arena on the
// WordSet and refer to each other by index, with the root at index 0.
type node struct {
	children map[rune]int32
	terminal bool
}

// WordSet is a case-insensitive dictionary. All words are stored
// uppercase; lookups normalize their input the same way.
type WordSet struct {
	nodes []node
	// words holds every distinct word in first-insertion order. It is
	// the source of truth for Words() and Len().
	words []string
}

// New returns an empty WordSet.
func New() *WordSet {
	return &WordSet{nodes: []node{{}}}
}

// Normalize uppercases and trims a word the way the WordSet stores it.
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// Insert adds a word to the set. Inserting a word that is already
// present is a no-op; the set never holds duplicates and the iteration
// order of the first insertion is preserved. The empty string is
// ignored.
func (ws *WordSet) Insert(word string) {
	word = Normalize(word)
	if word == "" {
		return
	}
	cur := int32(0)
	for _, r := range word {
		next, ok := ws.nodes[cur].children[r]
		if !ok {
			ws.nodes = append(ws.nodes, node{})
			next = int32(len(ws.nodes) - 1)
			if ws.nodes[cur].children == nil {
				ws.nodes[cur].children = make(map[rune]int32)
			}
			ws.nodes[cur].children[r] = next
		}
		cur = next
	}
	if !ws.nodes[cur].terminal {
		ws.nodes[cur].terminal = true
		ws.words = append(ws.words, word)
	}
}

// walk follows s from the root, returning the index of the final node.
func (ws *WordSet) walk(s string) (int32, bool) {
	cur := int32(0)
	for _, r := range s {
		next, ok := ws.nodes[cur].children[r]
		if !ok {
			return 0, false
		}
		cur = next
	}
	return cur, true
}

// ContainsWord reports whether word is in the set. A string that only
// exists as a prefix of longer words is not a word; the final node
// must carry the terminal marker.
func (ws *WordSet) ContainsWord(word string) bool {
	n, ok := ws.walk(Normalize(word))
	return ok && ws.nodes[n].terminal
}

// ContainsPrefix reports whether at least one word in the set starts
// with prefix. The empty prefix is a prefix of every word, so it is
// always true, even for an empty set.
func (ws *WordSet) ContainsPrefix(prefix string) bool {
	_, ok := ws.walk(Normalize(prefix))
	return ok
}

// Words iterates the set in first-insertion order. The order is stable
// across calls as long as no Insert happens in between.
func (ws *WordSet) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, w := range ws.words {
			if !yield(w) {
				return
			}
		}
	}
}

// Len returns the number of distinct words in the set.
func (ws *WordSet) Len() int {
	return len(ws.words)
}
