// Package game owns a play session: the board in play, each player's
// claimed words and score, and the rules a submitted word must pass.
// A session is single threaded; one goroutine owns it for its whole
// life.
package game

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/cubero/board"
	"github.com/domino14/cubero/config"
	"github.com/domino14/cubero/search"
	"github.com/domino14/cubero/wordset"
)

var (
	// ErrBadConfiguration covers unusable NewGame parameters: a cube
	// set that cannot fill the board, no players, no dictionary.
	ErrBadConfiguration = errors.New("bad game configuration")
	// ErrInvalidBoard is returned by SetGame for a non-square grid.
	// The session keeps whatever game it had.
	ErrInvalidBoard = errors.New("invalid board")
)

// Session is a word game in progress. The zero lifecycle is: a fresh
// session is unplayable and every query on it comes back empty;
// NewGame or SetGame make it playable and reset all player state.
type Session struct {
	board    *board.Board
	dict     *wordset.WordSet
	solver   *search.Solver
	players  playerStates
	claimed  map[string]int
	lastPath []board.Coord

	tactic  search.Tactic
	minLen  int
	rng     *frand.RNG
	logger  zerolog.Logger
	playing bool
}

// Option adjusts a Session at construction.
type Option func(*Session)

// WithMinWordLength overrides the minimum submittable word length.
func WithMinWordLength(n int) Option {
	return func(s *Session) { s.minLen = n }
}

// WithTactic sets the starting search tactic.
func WithTactic(t search.Tactic) Option {
	return func(s *Session) { s.tactic = t }
}

// WithRNG fixes the dice source, for reproducible games.
func WithRNG(rng *frand.RNG) Option {
	return func(s *Session) { s.rng = rng }
}

// WithLogger routes the session's log events through logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// NewSession builds an unplayable session. A nil cfg means defaults;
// otherwise the min-word-length, search-tactic and seed keys apply.
// Options run last and win.
func NewSession(cfg *config.Config, opts ...Option) *Session {
	s := &Session{
		minLen: DefaultMinWordLength,
		tactic: search.BoardDriven,
		logger: log.Logger,
	}
	if cfg != nil {
		if n := cfg.GetInt(config.MinWordLength); n > 0 {
			s.minLen = n
		}
		if t, err := search.TacticFromString(cfg.GetString(config.SearchTactic)); err == nil {
			s.tactic = t
		}
		if seed := cfg.GetInt(config.Seed); seed != 0 {
			s.rng = board.SeededRNG(uint64(seed))
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = frand.New()
	}
	return s
}

// NewGame rolls a fresh board from cubes and starts a game for
// numPlayers sharing dict. All previous player state is discarded.
// On error the session is exactly as it was.
func (s *Session) NewGame(size, numPlayers int, cubes *board.CubeSet, dict *wordset.WordSet) error {
	if size < 2 {
		return fmt.Errorf("%w: board size %d is too small", ErrBadConfiguration, size)
	}
	if numPlayers < 1 {
		return fmt.Errorf("%w: need at least one player", ErrBadConfiguration)
	}
	if dict == nil {
		return fmt.Errorf("%w: no dictionary", ErrBadConfiguration)
	}
	if cubes == nil {
		return fmt.Errorf("%w: no cube set", ErrBadConfiguration)
	}
	b, err := board.Roll(cubes, size, s.rng)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadConfiguration, err)
	}
	s.start(b, numPlayers, dict)
	return nil
}

// SetGame starts a game on a literal grid instead of a roll. The grid
// must be square. Player lists and scores reset; the dictionary and
// tactic carry over. A nil dict inherits the current dictionary and a
// numPlayers below 1 keeps the current player count, so
// SetGame(grid, 0, nil) swaps just the board. On error the session is
// exactly as it was.
func (s *Session) SetGame(grid [][]string, numPlayers int, dict *wordset.WordSet) error {
	if dict == nil {
		dict = s.dict
	}
	if dict == nil {
		return fmt.Errorf("%w: no dictionary", ErrBadConfiguration)
	}
	if numPlayers < 1 {
		numPlayers = len(s.players)
	}
	if numPlayers < 1 {
		numPlayers = 1
	}
	b, err := board.New(grid)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBoard, err)
	}
	s.start(b, numPlayers, dict)
	return nil
}

func (s *Session) start(b *board.Board, numPlayers int, dict *wordset.WordSet) {
	s.board = b
	s.dict = dict
	s.solver = search.NewSolver(b, dict, s.minLen)
	s.players = make(playerStates, numPlayers)
	for i := range s.players {
		s.players[i] = newPlayerState(fmt.Sprintf("Player %d", i+1), i)
	}
	s.claimed = make(map[string]int)
	s.lastPath = nil
	s.playing = true
	s.logger.Info().
		Int("dim", b.Dim()).
		Int("players", numPlayers).
		Int("words", dict.Len()).
		Uint64("board", b.Fingerprint()).
		Msg("game started")
}

// AddWord submits word for player and returns the points scored. A
// rejected word scores 0 and changes nothing. The word must meet the
// minimum length, be in the dictionary, be unclaimed by every player,
// and trace a path on the board; the dictionary check happens here no
// matter what the caller already validated.
func (s *Session) AddWord(word string, player int) int {
	rejected := func(reason string) int {
		s.logger.Debug().Str("word", word).Int("player", player).
			Msg("word rejected: " + reason)
		return 0
	}
	if !s.playing {
		return rejected("no game in progress")
	}
	if player < 0 || player >= len(s.players) {
		return rejected("no such player")
	}
	w := wordset.Normalize(word)
	if utf8.RuneCountInString(w) < s.minLen {
		return rejected("too short")
	}
	if !s.dict.ContainsWord(w) {
		return rejected("not in the dictionary")
	}
	if _, taken := s.claimed[w]; taken {
		return rejected("already claimed")
	}
	path, ok := s.solver.PlaceWord(w)
	if !ok {
		return rejected("not on the board")
	}

	pts := Score(w)
	p := s.players[player]
	p.points += pts
	p.words = append(p.words, w)
	s.claimed[w] = player
	s.lastPath = path
	s.logger.Debug().Str("word", w).Int("player", player).Int("points", pts).
		Msg("word added")
	return pts
}

// LastAddedWord returns the cell path of the most recent successful
// AddWord, one coordinate per cube face, or nil if no word has been
// added this game.
func (s *Session) LastAddedWord() []board.Coord {
	return slices.Clone(s.lastPath)
}

// AllWords enumerates every dictionary word findable on the board
// under the active tactic, sorted. It is a pure query: player claims
// do not affect it and it does not touch them.
func (s *Session) AllWords() []string {
	if !s.playing {
		return nil
	}
	return s.solver.Search(s.tactic)
}

// SetSearchTactic switches the algorithm behind AllWords.
func (s *Session) SetSearchTactic(t search.Tactic) {
	s.tactic = t
}

// VerifyTactics cross-checks the two search tactics on the current
// board and errors on any disagreement.
func (s *Session) VerifyTactics(ctx context.Context) error {
	if !s.playing {
		return errors.New("no game in progress")
	}
	return search.Verify(ctx, s.solver)
}

func (s *Session) Tactic() search.Tactic {
	return s.tactic
}

// Scores returns each player's total, indexed by player number, nil
// when no game is in progress. A player's total is always the sum of
// the values of the words recorded for them.
func (s *Session) Scores() []int {
	if !s.playing {
		return nil
	}
	return lo.Map(s.players, func(p *playerState, _ int) int {
		return p.points
	})
}

// WordsFor returns the words player has claimed, in claim order.
func (s *Session) WordsFor(player int) []string {
	if !s.playing || player < 0 || player >= len(s.players) {
		return nil
	}
	return slices.Clone(s.players[player].words)
}

func (s *Session) Board() *board.Board {
	return s.board
}

func (s *Session) NumPlayers() int {
	return len(s.players)
}

func (s *Session) MinWordLength() int {
	return s.minLen
}

// Playable reports whether a game has been started.
func (s *Session) Playable() bool {
	return s.playing
}

// ScoreboardText renders the player standings for the shell.
func (s *Session) ScoreboardText() string {
	if !s.playing {
		return "no game in progress\n"
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%20v %5v  %v\n", "player", "score", "words"))
	for _, p := range s.players {
		sb.WriteString(p.stateString())
		sb.WriteString("\n")
	}
	return sb.String()
}
