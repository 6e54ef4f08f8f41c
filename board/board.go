// Package board implements the letter grid: a square, immutable
// arrangement of cube faces with 8-directional adjacency, plus the
// cube sets the grids are rolled from.
package board

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/cespare/xxhash"
)

var (
	// ErrNotSquare is returned when a literal grid has rows whose
	// length does not match the number of rows.
	ErrNotSquare = errors.New("board must be square")
	// ErrBadFace is returned when a cell holds an empty face.
	ErrBadFace = errors.New("board faces need at least one letter")
)

// Coord addresses one cell, zero-based, row-major.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Board is a dim x dim grid of cube faces. A face is usually a single
// letter but may be longer ("QU"); a multi-letter face still occupies
// one cell and one step of any word path. Boards never change after
// construction.
type Board struct {
	dim   int
	faces []string
}

// New builds a board from a literal grid in row-major order. Every row
// must have exactly as many cells as there are rows. Faces are
// normalized to uppercase.
func New(grid [][]string) (*Board, error) {
	dim := len(grid)
	faces := make([]string, 0, dim*dim)
	for ri, row := range grid {
		if len(row) != dim {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrNotSquare, ri, len(row), dim)
		}
		for ci, f := range row {
			f = strings.ToUpper(strings.TrimSpace(f))
			if f == "" {
				return nil, fmt.Errorf("%w: empty cell at (%d,%d)", ErrBadFace, ri, ci)
			}
			faces = append(faces, f)
		}
	}
	return &Board{dim: dim, faces: faces}, nil
}

// MustNew builds a board from a grid known to be well formed.
func MustNew(grid [][]string) *Board {
	b, err := New(grid)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) Dim() int {
	return b.dim
}

func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.dim && c.Col >= 0 && c.Col < b.dim
}

// At returns the face at c. Asking for a cell off the board is a
// programming error and panics; check InBounds first if the coordinate
// is not known good.
func (b *Board) At(c Coord) string {
	if !b.InBounds(c) {
		panic(fmt.Sprintf("coordinate %v off a %dx%d board", c, b.dim, b.dim))
	}
	return b.faces[c.Row*b.dim+c.Col]
}

// Neighbors returns the cells adjacent to c in all eight directions,
// clipped to the board. Corners have 3 neighbors, edges 5, interior
// cells 8. The board does not wrap.
func (b *Board) Neighbors(c Coord) []Coord {
	ns := make([]Coord, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Coord{Row: c.Row + dr, Col: c.Col + dc}
			if b.InBounds(n) {
				ns = append(ns, n)
			}
		}
	}
	return ns
}

// Cells iterates the board in row-major order.
func (b *Board) Cells() iter.Seq2[Coord, string] {
	return func(yield func(Coord, string) bool) {
		for i, f := range b.faces {
			c := Coord{Row: i / b.dim, Col: i % b.dim}
			if !yield(c, f) {
				return
			}
		}
	}
}

// Grid returns a copy of the board as a literal grid.
func (b *Board) Grid() [][]string {
	grid := make([][]string, b.dim)
	for r := 0; r < b.dim; r++ {
		grid[r] = make([]string, b.dim)
		copy(grid[r], b.faces[r*b.dim:(r+1)*b.dim])
	}
	return grid
}

// Fingerprint hashes the dimensions and faces of the board. Two boards
// with the same faces in the same places have the same fingerprint.
func (b *Board) Fingerprint() uint64 {
	h := xxhash.New()
	fmt.Fprintf(h, "%d:", b.dim)
	for _, f := range b.faces {
		h.Write([]byte(f))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// ToDisplayText returns a fixed-width rendering of the board with
// column letters and row numbers, for the shell.
func (b *Board) ToDisplayText() string {
	cellWidth := 1
	for _, f := range b.faces {
		if len(f) > cellWidth {
			cellWidth = len(f)
		}
	}
	var sb strings.Builder
	sb.WriteString("   ")
	for c := 0; c < b.dim; c++ {
		sb.WriteString(fmt.Sprintf(" %-*c", cellWidth, rune('A'+c)))
	}
	sb.WriteString("\n")
	for r := 0; r < b.dim; r++ {
		sb.WriteString(fmt.Sprintf("%2d ", r+1))
		for c := 0; c < b.dim; c++ {
			sb.WriteString(fmt.Sprintf(" %-*s", cellWidth, b.faces[r*b.dim+c]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
