package mahjong

import (
	"github.com/sirupsen/logrus"
)

// StateDeal 开局：洗墙、发牌、轮转补花，随后进入庄家出牌
type StateDeal struct {
	*State
}

func NewStateDeal(g *Game, _ ...any) IState {
	return &StateDeal{State: NewState(g)}
}

func (s *StateDeal) Name() string {
	return "deal"
}

func (s *StateDeal) OnEnter() {
	play := s.game.play
	if err := s.initialize(play); err != nil {
		logrus.Errorf("deal failed: %v", err)
		s.game.SetNextState(NewStateOver, GameOverException)
		return
	}

	s.game.sender.SendGameStartAck()
	s.game.sender.SendOpenDoorAck()
	// 庄家已是满手，直接出牌
	s.game.SetNextState(NewStateDiscard, false)
}

func (s *StateDeal) initialize(play *Play) error {
	banker := s.game.banker
	if m := newManual(s.game.rule.Preset); m.enabled() {
		wall, err := m.load(AllTiles(), int(s.game.rule.PlayerCount), TileCountInitNormal)
		if err != nil {
			return err
		}
		if err := play.InitializeManual(banker, wall); err != nil {
			return err
		}
	} else if err := play.Initialize(banker); err != nil {
		return err
	}
	return play.Deal()
}
