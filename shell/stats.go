package shell

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/domino14/cubero/game"
)

// stats charts the solution set of the current board: a histogram of
// word lengths and the mean and spread of word scores.
func (sc *ShellController) stats(cmd *shellcmd) (*Response, error) {
	if !sc.session.Playable() {
		return nil, errors.New("no game in progress")
	}
	all := sc.session.AllWords()
	if len(all) == 0 {
		return msg("no words on this board"), nil
	}

	lengths := lo.Map(all, func(w string, _ int) float64 {
		return float64(utf8.RuneCountInString(w))
	})
	scores := lo.Map(all, func(w string, _ int) float64 {
		return float64(game.Score(w))
	})

	bins := 8
	if len(all) < bins {
		bins = len(all)
	}
	hist := histogram.Hist(bins, lengths)
	var buf bytes.Buffer
	if err := histogram.Fprint(&buf, hist, histogram.Linear(40)); err != nil {
		return nil, err
	}

	mean, std := stat.MeanStdDev(scores, nil)
	return msg(fmt.Sprintf(
		"%d words; word lengths:\n%sscore mean %.2f, stddev %.2f, total %d",
		len(all), buf.String(), mean, std,
		lo.SumBy(all, game.Score))), nil
}
