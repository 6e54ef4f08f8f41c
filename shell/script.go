package shell

import (
	"errors"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"
)

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("cubero_shell")
	ud, ok := shell.(*lua.LUserData)
	if !ok {
		panic("luserdata not right type")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		panic("shellcontroller not right type")
	}
	return sc
}

func New(L *lua.LState) int {
	lv := L.ToString(1)
	sc := getShell(L)
	cmd, err := extractFields("new " + lv)
	if err != nil {
		log.Err(err).Msg("error-parsing-new")
		return 0
	}
	r, err := sc.newGame(cmd)
	if err != nil {
		log.Err(err).Msg("error-executing-new")
		L.Push(lua.LString("ERROR: " + err.Error()))
		return 1
	}
	L.Push(lua.LString(r.message))
	// return number of results pushed to stack.
	return 1
}

func Set(L *lua.LState) int {
	lv := L.ToString(1)
	sc := getShell(L)
	cmd, err := extractFields("set " + lv)
	if err != nil {
		log.Err(err).Msg("error-parsing-set")
		return 0
	}
	r, err := sc.setBoard(cmd)
	if err != nil {
		log.Err(err).Msg("error-executing-set")
		L.Push(lua.LString("ERROR: " + err.Error()))
		return 1
	}
	L.Push(lua.LString(r.message))
	// return number of results pushed to stack.
	return 1
}

func Add(L *lua.LState) int {
	lv := L.ToString(1)
	sc := getShell(L)
	cmd, err := extractFields("add " + lv)
	if err != nil {
		log.Err(err).Msg("error-parsing-add")
		return 0
	}
	r, err := sc.add(cmd)
	if err != nil {
		log.Err(err).Msg("error-executing-add")
		return 0
	}
	L.Push(lua.LString(r.message))
	return 1
}

func Solve(L *lua.LState) int {
	sc := getShell(L)
	r, err := sc.solve(&shellcmd{
		cmd: "solve",
	})
	if err != nil {
		log.Err(err).Msg("error-executing-solve")
		return 0
	}
	L.Push(lua.LString(r.message))
	return 1
}

func Scores(L *lua.LState) int {
	sc := getShell(L)
	r, err := sc.scores(&shellcmd{
		cmd: "scores",
	})
	if err != nil {
		log.Err(err).Msg("error-executing-scores")
		return 0
	}
	L.Push(lua.LString(r.message))
	return 1
}

func Tactic(L *lua.LState) int {
	lv := L.ToString(1)
	sc := getShell(L)
	cmd, err := extractFields("tactic " + lv)
	if err != nil {
		log.Err(err).Msg("error-parsing-tactic")
		return 0
	}
	r, err := sc.tactic(cmd)
	if err != nil {
		log.Err(err).Msg("error-executing-tactic")
		return 0
	}
	L.Push(lua.LString(r.message))
	return 1
}

func Verify(L *lua.LState) int {
	sc := getShell(L)
	r, err := sc.verify(&shellcmd{
		cmd: "verify",
	})
	if err != nil {
		log.Err(err).Msg("error-executing-verify")
		return 0
	}
	L.Push(lua.LString(r.message))
	return 1
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need arguments for script")
	}

	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()
	luajson.Preload(L)

	lsc := L.NewUserData()
	lsc.Value = sc

	L.SetGlobal("cubero_shell", lsc)
	L.SetGlobal("cubero_new", L.NewFunction(New))
	L.SetGlobal("cubero_set", L.NewFunction(Set))
	L.SetGlobal("cubero_add", L.NewFunction(Add))
	L.SetGlobal("cubero_solve", L.NewFunction(Solve))
	L.SetGlobal("cubero_scores", L.NewFunction(Scores))
	L.SetGlobal("cubero_tactic", L.NewFunction(Tactic))
	L.SetGlobal("cubero_verify", L.NewFunction(Verify))

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Msg("error running script")
		return nil, err
	}
	return nil, nil
}
