package mahjong

import (
	"github.com/sirupsen/logrus"
)

// StateClaim 弃牌后的鸣牌窗口。应答全部缓冲，收齐或超时后
// 按 胡>杠>碰>吃 一次性裁决。
type StateClaim struct {
	*State
	window *ClaimWindow
}

func NewStateClaim(g *Game, _ ...any) IState {
	return &StateClaim{State: NewState(g)}
}

func (s *StateClaim) Name() string {
	return "claim"
}

func (s *StateClaim) OnEnter() {
	play := s.game.play
	s.window = play.BuildClaimWindow()
	if !s.window.HasExpects() {
		s.pass()
		return
	}

	for seat, opt := range s.window.Expects() {
		s.game.sender.SendRequestAck(seat, opt)
	}
	s.AsyncMsgTimer(s.onPlayerMsg, s.game.rule.ClaimTimeout, s.onTimeout)
}

func (s *StateClaim) onPlayerMsg(seat int32, req *Request) error {
	if err := s.window.Submit(seat, req.Operate, req.LeftTile); err != nil {
		return err
	}
	if s.window.Complete() {
		s.resolve()
	}
	return nil
}

func (s *StateClaim) onTimeout() {
	s.window.PassRemaining()
	s.resolve()
}

// pass 无人鸣牌，轮到下家摸牌
func (s *StateClaim) pass() {
	s.game.play.DoSwitchSeat(SeatNull)
	s.game.SetNextState(NewStateDiscard, true)
}

func (s *StateClaim) resolve() {
	play := s.game.play
	result := s.window.Resolve()
	if result == nil {
		s.pass()
		return
	}

	switch result.Operate {
	case OperateHu:
		multiples := play.PaoHu(result.Seats)
		s.game.sender.SendHuAck(result.Seats, play.GetCurSeat())
		s.game.SetNextState(NewStateOver, GameOverNormal, multiples)
		return
	case OperateKon:
		seat := result.Seats[0]
		if err := play.ZhiKon(seat); err != nil {
			logrus.Errorf("zhi kon failed: %v", err)
			s.pass()
			return
		}
		s.game.sender.SendKonAck(seat, result.Tile, KonTypeZhi)
		play.DoSwitchSeat(seat)
		s.game.SetNextState(NewStateDiscard, false)
	case OperatePon:
		seat := result.Seats[0]
		if err := play.Pon(seat); err != nil {
			logrus.Errorf("pon failed: %v", err)
			s.pass()
			return
		}
		s.game.sender.SendPonAck(seat, result.Tile)
		play.DoSwitchSeat(seat)
		s.game.SetNextState(NewStateDiscard, false)
	case OperateChow:
		seat := result.Seats[0]
		if err := play.Chow(seat, result.LeftTile); err != nil {
			logrus.Errorf("chow failed: %v", err)
			s.pass()
			return
		}
		s.game.sender.SendChowAck(seat, result.Tile, result.LeftTile)
		play.DoSwitchSeat(seat)
		s.game.SetNextState(NewStateDiscard, false)
	}
}
