package game

import (
	"errors"
	"sync"

	"github.com/kevin-chtw/tw_mahjong/mahjong"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/types/known/anypb"
)

// Notifier 通知出口。宿主进程决定消息最终走什么通道。
type Notifier interface {
	Push(playerID string, msg *anypb.Any)
}

// SnapshotStore 对局快照的持久化出口
type SnapshotStore interface {
	Save(roundID string, snap *mahjong.RoundSnapshot) error
	Load(roundID string) (*mahjong.RoundSnapshot, error)
	Remove(roundID string) error
}

// Table 承载一局麻将。gameMutex保证对引擎的调用串行；
// 通知历史按玩家留存，断线重入时重放。
type Table struct {
	roundID      string
	players      []*Player
	scoreBase    int64
	property     string
	notifier     Notifier
	store        SnapshotStore
	onOver       func()
	gameMutex    sync.Mutex // 保护game的对象锁
	game         *mahjong.Game
	historyMsg   map[string][]*anypb.Any
	historyMutex sync.Mutex
	gameOnce     sync.Once // 结局处理只执行一次
}

func NewTable(roundID string, players []*Player, scoreBase int64, property string, notifier Notifier, store SnapshotStore) *Table {
	return &Table{
		roundID:    roundID,
		players:    players,
		scoreBase:  scoreBase,
		property:   property,
		notifier:   notifier,
		store:      store,
		historyMsg: make(map[string][]*anypb.Any),
	}
}

// Begin 创建引擎对局并发牌
func (t *Table) Begin() {
	t.gameMutex.Lock()
	defer t.gameMutex.Unlock()
	t.game = mahjong.NewGame(t, nil)
	t.game.OnGameBegin()
}

// Submit 把一个玩家操作转给引擎
func (t *Table) Submit(playerID string, req *mahjong.Request) error {
	seat, err := t.seatOf(playerID)
	if err != nil {
		return err
	}

	t.gameMutex.Lock()
	defer t.gameMutex.Unlock()
	if t.game == nil {
		return errors.New("round not started")
	}
	return t.game.OnPlayerMsg(seat, req)
}

// Snapshot 以玩家视角生成快照；playerID为空表示全量
func (t *Table) Snapshot(playerID string) (*mahjong.RoundSnapshot, error) {
	seat := mahjong.SeatNull
	if playerID != "" {
		s, err := t.seatOf(playerID)
		if err != nil {
			return nil, err
		}
		seat = s
	}

	t.gameMutex.Lock()
	defer t.gameMutex.Unlock()
	if t.game == nil {
		return nil, errors.New("round not started")
	}
	return t.game.BuildSnapshot(seat), nil
}

// Reenter 断线重入：重放该玩家的通知历史
func (t *Table) Reenter(playerID string) error {
	if _, err := t.seatOf(playerID); err != nil {
		return err
	}
	t.historyMutex.Lock()
	msgs := t.historyMsg[playerID]
	t.historyMutex.Unlock()

	for _, msg := range msgs {
		t.notifier.Push(playerID, msg)
	}
	return nil
}

func (t *Table) OnNetChange(playerID string, online bool) {
	for _, p := range t.players {
		if p.id == playerID {
			p.SetOnline(online)
			return
		}
	}
}

func (t *Table) IsOver() bool {
	t.gameMutex.Lock()
	defer t.gameMutex.Unlock()
	return t.game != nil && t.game.IsOver()
}

func (t *Table) tick() {
	t.gameMutex.Lock()
	defer t.gameMutex.Unlock()
	if t.game != nil && !t.game.IsOver() {
		t.game.OnGameTimer()
	}
}

func (t *Table) seatOf(playerID string) (int32, error) {
	for _, p := range t.players {
		if p.id == playerID {
			return p.Seat, nil
		}
	}
	return mahjong.SeatNull, errors.New("player not on table")
}

// 以下实现 mahjong.ITable。引擎回调发生在gameMutex内，不得回锁。

func (t *Table) GetPlayerCount() int32 {
	return int32(len(t.players))
}

func (t *Table) GetPlayerID(seat int32) string {
	for _, p := range t.players {
		if p.Seat == seat {
			return p.id
		}
	}
	return ""
}

func (t *Table) GetPlayerScore(seat int32) int64 {
	for _, p := range t.players {
		if p.Seat == seat {
			return p.score
		}
	}
	return 0
}

func (t *Table) GetScoreBase() int64 {
	return t.scoreBase
}

func (t *Table) GetProperty() string {
	return t.property
}

func (t *Table) Send2Player(ack *anypb.Any, seat int32) {
	if ack == nil {
		return
	}
	if seat == mahjong.SeatAll {
		for _, p := range t.players {
			t.pushTo(p.id, ack)
		}
		return
	}
	if id := t.GetPlayerID(seat); id != "" {
		t.pushTo(id, ack)
	}
}

func (t *Table) pushTo(playerID string, ack *anypb.Any) {
	t.historyMutex.Lock()
	t.historyMsg[playerID] = append(t.historyMsg[playerID], ack)
	t.historyMutex.Unlock()
	t.notifier.Push(playerID, ack)
}

func (t *Table) NotifyGameOver() {
	t.gameOnce.Do(func() {
		for _, p := range t.players {
			if gp := t.game.GetPlayer(p.Seat); gp != nil {
				p.AddScore(gp.GetScoreChange())
			}
		}
		if t.store != nil {
			if err := t.store.Save(t.roundID, t.game.BuildSnapshot(mahjong.SeatNull)); err != nil {
				logger.Log.Errorf("save round %s snapshot: %v", t.roundID, err)
			}
		}
		if t.onOver != nil {
			go t.onOver()
		}
	})
}
