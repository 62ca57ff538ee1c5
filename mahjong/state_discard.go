package mahjong

// StateDiscard 当前座位行牌：按需摸牌，随后等它出牌/自摸/开杠。
// 超时按托管处理，打出最后摸进的那张。
type StateDiscard struct {
	*State
	needDraw bool
	operates *Operates
}

func NewStateDiscard(g *Game, args ...any) IState {
	s := &StateDiscard{State: NewState(g)}
	if len(args) > 0 {
		s.needDraw = args[0].(bool)
	}
	return s
}

func (s *StateDiscard) Name() string {
	return "discard"
}

func (s *StateDiscard) OnEnter() {
	play := s.game.play
	if s.needDraw {
		tile := play.Draw()
		if tile == TileNull {
			s.game.SetNextState(NewStateOver, GameOverLiuju)
			return
		}
		s.game.sender.SendDrawAck(tile)
	}
	// 杠后补牌或补花可能把墙摸穿，手牌不成形即荒庄
	if len(play.GetPlayData(play.GetCurSeat()).GetHandTiles())%3 != 2 {
		s.game.SetNextState(NewStateOver, GameOverLiuju)
		return
	}

	s.operates = play.FetchSelfOperates()
	s.game.sender.SendRequestAck(play.GetCurSeat(), s.operates)
	s.AsyncMsgTimer(s.onPlayerMsg, s.game.rule.DiscardTimeout, s.onTimeout)
}

func (s *StateDiscard) onPlayerMsg(seat int32, req *Request) error {
	play := s.game.play
	if seat != play.GetCurSeat() {
		return ErrInvalidAction
	}

	switch req.Operate {
	case OperateDiscard:
		if err := play.Discard(req.Tile); err != nil {
			return err
		}
		s.game.sender.SendDiscardAck()
		s.game.SetNextState(NewStateClaim)
	case OperateHu:
		if !s.operates.HasOperate(OperateHu) {
			return ErrInvalidAction
		}
		multiples := play.Zimo()
		s.game.sender.SendHuAck([]int32{seat}, SeatNull)
		s.game.SetNextState(NewStateOver, GameOverNormal, multiples)
	case OperateKon:
		if !s.operates.HasOperate(OperateKon) {
			return ErrInvalidAction
		}
		return s.onKon(seat, req)
	default:
		return ErrInvalidAction
	}
	return nil
}

func (s *StateDiscard) onKon(seat int32, req *Request) error {
	play := s.game.play
	if req.KonType == KonTypeBu && s.game.rule.RobKon {
		if err := play.DeclareBuKon(req.Tile); err != nil {
			return err
		}
		s.game.SetNextState(NewStateRobKon)
		return nil
	}

	if err := play.SelfKon(req.Tile, req.KonType); err != nil {
		return err
	}
	s.game.sender.SendKonAck(seat, req.Tile, req.KonType)
	s.game.SetNextState(NewStateDiscard, false)
	return nil
}

func (s *StateDiscard) onTimeout() {
	play := s.game.play
	play.Discard(TileNull)
	s.game.sender.SendDiscardAck()
	s.game.SetNextState(NewStateClaim)
}
