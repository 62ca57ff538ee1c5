package mahjong

// StateRobKon 补杠公示期：其余座位只可抢杠胡或过。
// 无人抢则补杠成立并从墙尾补牌。
type StateRobKon struct {
	*State
	window *ClaimWindow
}

func NewStateRobKon(g *Game, _ ...any) IState {
	return &StateRobKon{State: NewState(g)}
}

func (s *StateRobKon) Name() string {
	return "rob_kon"
}

func (s *StateRobKon) OnEnter() {
	play := s.game.play
	s.window = play.BuildRobKonWindow()
	if !s.window.HasExpects() {
		s.completeKon()
		return
	}

	for seat, opt := range s.window.Expects() {
		s.game.sender.SendRequestAck(seat, opt)
	}
	s.AsyncMsgTimer(s.onPlayerMsg, s.game.rule.RobKonTimeout, s.onTimeout)
}

func (s *StateRobKon) onPlayerMsg(seat int32, req *Request) error {
	if err := s.window.Submit(seat, req.Operate, TileNull); err != nil {
		return err
	}
	if s.window.Complete() {
		s.resolve()
	}
	return nil
}

func (s *StateRobKon) onTimeout() {
	s.window.PassRemaining()
	s.resolve()
}

func (s *StateRobKon) resolve() {
	play := s.game.play
	result := s.window.Resolve()
	if result == nil || result.Operate != OperateHu {
		s.completeKon()
		return
	}

	multiples := play.PaoHu(result.Seats)
	s.game.sender.SendHuAck(result.Seats, play.GetCurSeat())
	s.game.SetNextState(NewStateOver, GameOverNormal, multiples)
}

func (s *StateRobKon) completeKon() {
	play := s.game.play
	seat := play.GetCurSeat()
	tile := play.GetCurTile()
	if err := play.SelfKon(tile, KonTypeBu); err != nil {
		s.game.SetNextState(NewStateOver, GameOverException)
		return
	}
	s.game.sender.SendKonAck(seat, tile, KonTypeBu)
	s.game.SetNextState(NewStateDiscard, false)
}
