package board

// Sample boards for tests and debugging. Set one with the shell's
// `set` command or build it directly with MustNew.
var (
	// CatsBoard is a tiny 2x2. All four cells are mutually adjacent,
	// so CAT, CATS and ACT are all traceable on it.
	CatsBoard = [][]string{
		{"C", "A"},
		{"T", "S"},
	}

	// SplitCatsBoard spreads the same letters over a 3x3 grid so that
	// CAT and CATS stay traceable but ACT does not: the C and the T
	// are no longer adjacent.
	SplitCatsBoard = [][]string{
		{"T", "A", "L"},
		{"S", "E", "C"},
		{"R", "I", "P"},
	}

	// QueensBoard has the two-letter QU face in a corner.
	QueensBoard = [][]string{
		{"QU", "E", "B"},
		{"N", "E", "O"},
		{"S", "T", "R"},
	}

	// DogsBoard is a 4x4 where DOGS, ANTE, RIPS and TONE read straight
	// across the rows, with plenty more on the diagonals.
	DogsBoard = [][]string{
		{"D", "O", "G", "S"},
		{"A", "N", "T", "E"},
		{"R", "I", "P", "S"},
		{"T", "O", "N", "E"},
	}
)
