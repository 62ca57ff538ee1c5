package mahjong

import (
	"errors"
	"time"
)

// Request 宿主转入的一次座位操作
type Request struct {
	Operate  int32
	Tile     Tile
	LeftTile Tile // 吃牌时顺子的起点
	KonType  KonType
}

type IState interface {
	Name() string
	OnEnter()
	OnPlayerMsg(seat int32, req *Request) error
}

// State 游戏状态基类
type State struct {
	game       *Game
	msgHandler func(seat int32, req *Request) error
}

// NewState 创建新的游戏状态
func NewState(game *Game) *State {
	return &State{
		game:       game,
		msgHandler: nil,
	}
}

// AsyncMsgTimer 设置异步消息定时器
func (s *State) AsyncMsgTimer(
	handler func(seat int32, req *Request) error,
	timeout time.Duration,
	onTimeout func(),
) {
	s.msgHandler = handler
	s.game.timer.Schedule(timeout, onTimeout)
}

// AsyncTimer 设置异步定时器
func (s *State) AsyncTimer(timeout time.Duration, onTimeout func()) {
	s.msgHandler = nil
	s.game.timer.Schedule(timeout, onTimeout)
}

// OnPlayerMsg 处理玩家消息
func (s *State) OnPlayerMsg(seat int32, req *Request) error {
	if s.msgHandler != nil {
		return s.msgHandler(seat, req)
	}
	return errors.New("msgHandler is nil")
}
