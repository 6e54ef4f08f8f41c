// Package shell is the interactive front end: a readline loop that
// drives one game session per process.
package shell

import (
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/cubero/config"
	"github.com/domino14/cubero/game"
)

var (
	errNoData            = errors.New("no data in line")
	errWrongOptionSyntax = errors.New("options need to come in pairs: -key value")
	errExitShell         = errors.New("sending quit signal")
)

type ShellController struct {
	l        *readline.Instance
	config   *config.Config
	execPath string

	session *game.Session
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config, execPath string) *ShellController {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("new"),
		readline.PcItem("set",
			readline.PcItem("cats"),
			readline.PcItem("split"),
			readline.PcItem("queens"),
			readline.PcItem("dogs"),
		),
		readline.PcItem("add"),
		readline.PcItem("last"),
		readline.PcItem("words"),
		readline.PcItem("solve"),
		readline.PcItem("tactic",
			readline.PcItem("board"),
			readline.PcItem("dictionary"),
		),
		readline.PcItem("verify"),
		readline.PcItem("stats"),
		readline.PcItem("show"),
		readline.PcItem("scores"),
		readline.PcItem("script"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mcubero>\033[0m ",
		HistoryFile:     "/tmp/cubero_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    completer,

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{
		l:        l,
		config:   cfg,
		execPath: execPath,
		session:  game.NewSession(cfg),
	}
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

// extractFields tokenizes a command line. Everything after the command
// word is an argument until the first -option; options consume the
// following token as their value.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	lastWasOption := false
	lastOption := ""
	for _, token := range fields[1:] {
		if lastWasOption {
			options[lastOption] = append(options[lastOption], token)
			lastWasOption = false
			continue
		}
		if strings.HasPrefix(token, "-") && len(token) > 1 {
			lastWasOption = true
			lastOption = strings.TrimPrefix(token, "-")
			continue
		}
		args = append(args, token)
	}
	if lastWasOption {
		// An option without a value.
		return nil, errWrongOptionSyntax
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) executor(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if errors.Is(err, errNoData) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "new":
		return sc.newGame(cmd)
	case "set":
		return sc.setBoard(cmd)
	case "add":
		return sc.add(cmd)
	case "last":
		return sc.last(cmd)
	case "words":
		return sc.words(cmd)
	case "solve", "all":
		return sc.solve(cmd)
	case "tactic":
		return sc.tactic(cmd)
	case "verify":
		return sc.verify(cmd)
	case "stats":
		return sc.stats(cmd)
	case "show":
		return sc.show(cmd)
	case "scores":
		return sc.scores(cmd)
	case "script":
		return sc.script(cmd)
	case "help":
		return sc.help(cmd)
	case "exit", "quit":
		return nil, errExitShell
	default:
		return nil, errors.New("command " + strconv.Quote(cmd.cmd) + " not found")
	}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

// Execute runs a single command line, for one-shot invocations.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	resp, err := sc.executor(line)
	if err != nil {
		if errors.Is(err, errExitShell) {
			return
		}
		sc.showMessage("error: " + err.Error())
		return
	}
	if resp != nil {
		sc.showMessage(resp.message)
	}
}

// Loop reads and runs commands until exit or interrupt.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		resp, err := sc.executor(line)
		if err != nil {
			if errors.Is(err, errExitShell) {
				sig <- syscall.SIGINT
				break
			}
			sc.showMessage("error: " + err.Error())
			continue
		}
		if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msg("exiting readline loop")
}

func (sc *ShellController) Cleanup() {
	log.Debug().Msg("shell cleanup")
}
