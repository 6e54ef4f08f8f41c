package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestNew(t *testing.T) {
	is := is.New(t)
	b, err := New([][]string{
		{"c", "a"},
		{"t", "s"},
	})
	is.NoErr(err)
	is.Equal(b.Dim(), 2)
	is.Equal(b.At(Coord{0, 0}), "C")
	is.Equal(b.At(Coord{1, 1}), "S")
}

func TestNewNotSquare(t *testing.T) {
	is := is.New(t)
	_, err := New([][]string{
		{"A", "B"},
		{"C"},
	})
	is.True(errors.Is(err, ErrNotSquare))

	_, err = New([][]string{
		{"A", "B", "C"},
		{"D", "E", "F"},
	})
	is.True(errors.Is(err, ErrNotSquare))
}

func TestNewEmptyFace(t *testing.T) {
	is := is.New(t)
	_, err := New([][]string{
		{"A", " "},
		{"C", "D"},
	})
	is.True(errors.Is(err, ErrBadFace))
}

func TestNeighbors(t *testing.T) {
	is := is.New(t)
	b := MustNew(QueensBoard)

	corner := b.Neighbors(Coord{0, 0})
	is.Equal(len(corner), 3)

	edge := b.Neighbors(Coord{0, 1})
	is.Equal(len(edge), 5)

	center := b.Neighbors(Coord{1, 1})
	is.Equal(len(center), 8)

	for _, c := range center {
		is.True(b.InBounds(c))
		is.True(c != (Coord{1, 1}))
	}
}

func TestNeighbors2x2AllAdjacent(t *testing.T) {
	is := is.New(t)
	b := MustNew(CatsBoard)
	for c := range b.Cells() {
		is.Equal(len(b.Neighbors(c)), 3)
	}
}

func TestAtOffBoardPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an off-board access")
		}
	}()
	b := MustNew(CatsBoard)
	b.At(Coord{2, 0})
}

func TestCellsOrder(t *testing.T) {
	is := is.New(t)
	b := MustNew(CatsBoard)
	var got []string
	for _, f := range b.Cells() {
		got = append(got, f)
	}
	is.Equal(got, []string{"C", "A", "T", "S"})
}

func TestFingerprint(t *testing.T) {
	is := is.New(t)
	b1 := MustNew(CatsBoard)
	b2 := MustNew([][]string{{"C", "A"}, {"T", "S"}})
	b3 := MustNew([][]string{{"C", "A"}, {"S", "T"}})
	is.Equal(b1.Fingerprint(), b2.Fingerprint())
	is.True(b1.Fingerprint() != b3.Fingerprint())

	// The face split matters, not just the concatenation.
	b4 := MustNew([][]string{{"QU", "E"}, {"E", "N"}})
	b5 := MustNew([][]string{{"Q", "UE"}, {"E", "N"}})
	is.True(b4.Fingerprint() != b5.Fingerprint())
}

func TestGridCopies(t *testing.T) {
	is := is.New(t)
	b := MustNew(CatsBoard)
	g := b.Grid()
	g[0][0] = "X"
	is.Equal(b.At(Coord{0, 0}), "C")
}
