package game

import "fmt"

type playerState struct {
	nickname string
	number   int

	points int
	words  []string
}

func newPlayerState(nickname string, number int) *playerState {
	return &playerState{nickname: nickname, number: number}
}

func (p *playerState) resetScore() {
	p.points = 0
	p.words = p.words[:0]
}

func (p *playerState) stateString() string {
	return fmt.Sprintf("%20v %5v  %v", p.nickname, p.points, len(p.words))
}

type playerStates []*playerState

func (ps playerStates) resetScore() {
	for idx := range ps {
		ps[idx].resetScore()
	}
}
