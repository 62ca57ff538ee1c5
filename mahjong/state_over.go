package mahjong

// StateOver 终局：结算并通知宿主。流局与异常中止没有分数变动。
type StateOver struct {
	*State
	status    EGameOverStatus
	multiples []int64
}

func NewStateOver(g *Game, args ...any) IState {
	s := &StateOver{State: NewState(g)}
	if len(args) > 0 {
		s.status = args[0].(EGameOverStatus)
	}
	if len(args) > 1 {
		s.multiples = args[1].([]int64)
	}
	return s
}

func (s *StateOver) Name() string {
	return "over"
}

func (s *StateOver) OnEnter() {
	s.game.result = s.status
	if s.status == GameOverNormal && s.multiples != nil {
		scorelator := NewScorelator(s.game, s.game.rule.ScoreType)
		scorelator.Settle(s.multiples)
	}
	s.game.sender.SendResult(s.status)
	s.game.OnGameOver()
}
