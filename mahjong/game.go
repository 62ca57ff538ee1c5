package mahjong

import (
	"errors"

	"google.golang.org/protobuf/types/known/anypb"
)

// ITable 宿主桌面。引擎只通过它取座位信息与下发通知，
// 不关心通知最终走什么传输。
type ITable interface {
	GetPlayerCount() int32
	GetPlayerID(seat int32) string
	GetPlayerScore(seat int32) int64
	GetScoreBase() int64
	GetProperty() string
	Send2Player(ack *anypb.Any, seat int32)
	NotifyGameOver()
}

// Game 一局麻将。宿主保证对它的调用串行。
type Game struct {
	table     ITable
	timer     *Timer
	CurState  IState
	nextState IState
	rule      *Rule
	ruleset   IScoreRuleset
	players   []*Player
	play      *Play
	sender    *Sender
	banker    int32
	result    EGameOverStatus
	over      bool
}

func NewGame(table ITable, ruleset IScoreRuleset) *Game {
	g := &Game{
		table:   table,
		timer:   NewTimer(),
		rule:    NewRule(),
		ruleset: ruleset,
		players: make([]*Player, table.GetPlayerCount()),
	}
	if g.ruleset == nil {
		g.ruleset = NewDefaultRuleset()
	}

	g.rule.PlayerCount = table.GetPlayerCount()
	g.rule.LoadRule(table.GetProperty())
	for i := int32(0); i < table.GetPlayerCount(); i++ {
		g.players[i] = NewPlayer(g, table.GetPlayerID(i), i, table.GetPlayerScore(i))
	}
	return g
}

func (g *Game) OnGameBegin() {
	g.play = NewPlay(g)
	g.sender = NewSender(g)
	g.SetNextState(NewStateDeal)
	g.enterNextState()
}

func (g *Game) OnPlayerMsg(seat int32, req *Request) error {
	if !g.IsValidSeat(seat) || req == nil {
		return errors.New("invalid seat")
	}
	if g.over || g.CurState == nil {
		return errors.New("game is over")
	}

	if err := g.CurState.OnPlayerMsg(seat, req); err != nil {
		return err
	}
	g.enterNextState()
	return nil
}

func (g *Game) OnGameTimer() {
	g.timer.OnTick()
	g.enterNextState()
}

func (g *Game) OnGameOver() {
	g.over = true
	g.table.NotifyGameOver()
}

func (g *Game) GetRule() *Rule {
	return g.rule
}

func (g *Game) GetRuleset() IScoreRuleset {
	return g.ruleset
}

func (g *Game) GetPlay() *Play {
	return g.play
}

func (g *Game) GetPlayer(seat int32) *Player {
	if g.IsValidSeat(seat) {
		return g.players[seat]
	}
	return nil
}

func (g *Game) GetPlayerCount() int32 {
	return g.rule.PlayerCount
}

func (g *Game) IsValidSeat(seat int32) bool {
	return seat >= 0 && seat < g.rule.PlayerCount
}

func (g *Game) GetBanker() int32 {
	return g.banker
}

func (g *Game) Result() EGameOverStatus {
	return g.result
}

func (g *Game) IsOver() bool {
	return g.over
}

func (g *Game) SetNextState(newFn func(*Game, ...any) IState, args ...any) {
	g.nextState = newFn(g, args...)
}

func (g *Game) enterNextState() {
	for g.nextState != nil {
		g.CurState = g.nextState
		g.nextState = nil
		g.timer.Cancel()
		g.CurState.OnEnter()
	}
}
