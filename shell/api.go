package shell

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/cubero/board"
	"github.com/domino14/cubero/cache"
	"github.com/domino14/cubero/config"
	"github.com/domino14/cubero/game"
	"github.com/domino14/cubero/search"
	"github.com/domino14/cubero/wordset"
)

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) Int(key string) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) Bool(key string) bool {
	v := c[key]
	if len(v) == 0 {
		return false
	}
	return strings.ToLower(v[0]) == "true"
}

// namedSampleBoards are small boards reachable by name from `set`.
var namedSampleBoards = map[string][][]string{
	"cats":   board.CatsBoard,
	"split":  board.SplitCatsBoard,
	"queens": board.QueensBoard,
	"dogs":   board.DogsBoard,
}

func (sc *ShellController) wordSet(lexicon string) (*wordset.WordSet, error) {
	return cache.Get[*wordset.WordSet](sc.config, "wordset:"+lexicon,
		func(cfg *config.Config, key string) (any, error) {
			return wordset.Load(cfg.WordListPath(lexicon))
		})
}

func (sc *ShellController) cubeSet(name string) (*board.CubeSet, error) {
	return cache.Get[*board.CubeSet](sc.config, "cubes:"+name,
		func(cfg *config.Config, key string) (any, error) {
			cs, err := board.LoadCubes(cfg.CubeSetPath(name))
			if err != nil {
				// The classic set is built in; a missing file is fine.
				if name == "classic16" && errors.Is(err, fs.ErrNotExist) {
					log.Debug().Msg("using built-in classic16 cube set")
					return board.ClassicCubes(), nil
				}
				return nil, err
			}
			return cs, nil
		})
}

// playerArg converts a 1-based player argument to a player index,
// defaulting to player 1.
func (sc *ShellController) playerArg(args []string, idx int) (int, error) {
	if len(args) <= idx {
		return 0, nil
	}
	n, err := strconv.Atoi(args[idx])
	if err != nil {
		return 0, fmt.Errorf("bad player number %v", strconv.Quote(args[idx]))
	}
	if n < 1 || n > sc.session.NumPlayers() {
		return 0, fmt.Errorf("player %d is not in this game", n)
	}
	return n - 1, nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	size := sc.config.GetInt(config.BoardSize)
	players := sc.config.GetInt(config.NumPlayers)
	var err error
	if len(cmd.args) > 0 {
		size, err = strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, fmt.Errorf("bad board size %v", strconv.Quote(cmd.args[0]))
		}
	}
	if len(cmd.args) > 1 {
		players, err = strconv.Atoi(cmd.args[1])
		if err != nil {
			return nil, fmt.Errorf("bad player count %v", strconv.Quote(cmd.args[1]))
		}
	}

	lexicon := sc.config.GetString(config.DefaultLexicon)
	if opt := cmd.options.String("lexicon"); opt != "" {
		lexicon = opt
	}
	dict, err := sc.wordSet(lexicon)
	if err != nil {
		return nil, err
	}
	cubeName := sc.config.GetString(config.DefaultCubeSet)
	if opt := cmd.options.String("cubes"); opt != "" {
		cubeName = opt
	}
	cubes, err := sc.cubeSet(cubeName)
	if err != nil {
		return nil, err
	}

	if err := sc.session.NewGame(size, players, cubes, dict); err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("%d-player game on, %s lexicon, minimum %d letters\n%s",
		sc.session.NumPlayers(), lexicon, sc.session.MinWordLength(),
		sc.session.Board().ToDisplayText())), nil
}

func (sc *ShellController) setBoard(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		names := lo.Keys(namedSampleBoards)
		return nil, fmt.Errorf("need a board file or a sample name (%v)",
			strings.Join(names, ", "))
	}
	grid, ok := namedSampleBoards[strings.ToLower(cmd.args[0])]
	if !ok {
		var err error
		grid, err = board.LoadGrid(cmd.args[0])
		if err != nil {
			return nil, err
		}
	}

	var dict *wordset.WordSet
	players := 0
	if !sc.session.Playable() {
		var err error
		dict, err = sc.wordSet(sc.config.GetString(config.DefaultLexicon))
		if err != nil {
			return nil, err
		}
		players = sc.config.GetInt(config.NumPlayers)
	}
	if err := sc.session.SetGame(grid, players, dict); err != nil {
		return nil, err
	}
	return msg(sc.session.Board().ToDisplayText()), nil
}

func (sc *ShellController) add(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("need a word to add")
	}
	if !sc.session.Playable() {
		return nil, errors.New("no game in progress; start one with new")
	}
	word := cmd.args[0]
	player, err := sc.playerArg(cmd.args, 1)
	if err != nil {
		return nil, err
	}

	pts := sc.session.AddWord(word, player)
	if pts == 0 {
		return msg(fmt.Sprintf(
			"%v did not score: words need %d+ letters, must be in the lexicon, "+
				"unclaimed, and traceable on the board (--debug logs the reason)",
			strings.ToUpper(word), sc.session.MinWordLength())), nil
	}
	return msg(fmt.Sprintf("%v scores %d for player %d: %s",
		strings.ToUpper(word), pts, player+1, pathString(sc.session.LastAddedWord()))), nil
}

func pathString(path []board.Coord) string {
	return strings.Join(lo.Map(path, func(c board.Coord, _ int) string {
		return c.String()
	}), " -> ")
}

func (sc *ShellController) last(cmd *shellcmd) (*Response, error) {
	path := sc.session.LastAddedWord()
	if path == nil {
		return msg("no word added yet"), nil
	}
	return msg(pathString(path)), nil
}

func (sc *ShellController) words(cmd *shellcmd) (*Response, error) {
	if !sc.session.Playable() {
		return nil, errors.New("no game in progress")
	}
	var sb strings.Builder
	for p := 0; p < sc.session.NumPlayers(); p++ {
		claimed := sc.session.WordsFor(p)
		sb.WriteString(fmt.Sprintf("player %d: %s\n", p+1, strings.Join(claimed, " ")))
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) solve(cmd *shellcmd) (*Response, error) {
	if !sc.session.Playable() {
		return nil, errors.New("no game in progress")
	}
	all := sc.session.AllWords()
	total := lo.SumBy(all, game.Score)

	var sb strings.Builder
	for i, w := range all {
		sb.WriteString(fmt.Sprintf("%-12s", w))
		if (i+1)%6 == 0 {
			sb.WriteString("\n")
		}
	}
	if len(all)%6 != 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("%d words on this board, %d points in all (%v tactic)",
		len(all), total, sc.session.Tactic()))
	return msg(sb.String()), nil
}

func (sc *ShellController) tactic(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg("current tactic: " + sc.session.Tactic().String()), nil
	}
	t, err := search.TacticFromString(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.session.SetSearchTactic(t)
	return msg("tactic set to " + t.String()), nil
}

func (sc *ShellController) verify(cmd *shellcmd) (*Response, error) {
	if err := sc.session.VerifyTactics(context.Background()); err != nil {
		return nil, err
	}
	return msg("both tactics agree on this board"), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if !sc.session.Playable() {
		return nil, errors.New("no game in progress")
	}
	b := sc.session.Board()
	return msg(fmt.Sprintf("%sboard %x, %v tactic, minimum %d letters",
		b.ToDisplayText(), b.Fingerprint(), sc.session.Tactic(),
		sc.session.MinWordLength())), nil
}

func (sc *ShellController) scores(cmd *shellcmd) (*Response, error) {
	return msg(sc.session.ScoreboardText()), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return usage("standard")
	} else {
		helptopic := cmd.args[0]
		return usageTopic(helptopic)
	}
}
