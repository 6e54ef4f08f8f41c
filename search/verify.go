package search

import (
	"context"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Verify runs both tactics over the solver's board and word set and
// errors if the result sets differ. The tactics run concurrently on
// their own solvers since the scratch space is not shareable.
func Verify(ctx context.Context, s *Solver) error {
	var fromBoard, fromDict []string
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		fromBoard = NewSolver(s.board, s.words, s.minLen).Search(BoardDriven)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		fromDict = NewSolver(s.board, s.words, s.minLen).Search(DictionaryDriven)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if !slices.Equal(fromBoard, fromDict) {
		boardOnly, dictOnly := lo.Difference(fromBoard, fromDict)
		return fmt.Errorf("tactics disagree: board-driven only %v, dictionary-driven only %v",
			boardOnly, dictOnly)
	}
	return nil
}
