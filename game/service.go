package game

import (
	"errors"

	"github.com/kevin-chtw/tw_mahjong/mahjong"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// PlayerInfo 开局参数：座位按切片顺序分配
type PlayerInfo struct {
	ID    string
	Score int64
}

// Service 对局服务门面。宿主进程用它开局、转交操作、取快照，
// 不接触引擎内部。
type Service struct {
	tables   *TableManager
	notifier Notifier
	store    SnapshotStore
}

func NewService(notifier Notifier, store SnapshotStore) *Service {
	return &Service{
		tables:   NewTableManager(),
		notifier: notifier,
		store:    store,
	}
}

// StartRound 开一局。property是yaml玩法串，空串用默认规则。
func (s *Service) StartRound(roundID string, infos []PlayerInfo, scoreBase int64, property string) error {
	if roundID == "" || len(infos) == 0 {
		return errors.New("invalid round args")
	}

	players := make([]*Player, len(infos))
	for i, info := range infos {
		players[i] = NewPlayer(info.ID, int32(i), info.Score)
	}
	table := NewTable(roundID, players, scoreBase, property, s.notifier, s.store)
	if exist := s.tables.Store(roundID, table); exist != table {
		return errors.New("round already exists")
	}
	table.onOver = func() {
		s.tables.Delete(roundID)
	}

	logger.Log.Infof("round %s started with %d players", roundID, len(players))
	table.Begin()
	return nil
}

func (s *Service) SubmitDiscard(roundID, playerID string, tile int32) error {
	return s.submit(roundID, playerID, &mahjong.Request{
		Operate: mahjong.OperateDiscard,
		Tile:    mahjong.Tile(tile),
	})
}

// SubmitClaim operate 用动作名（Chow/Pon/Kon/Win），见OperateIDs
func (s *Service) SubmitClaim(roundID, playerID, operate string, tile, leftTile int32, konType int) error {
	op := mahjong.GetOperateID(operate)
	if op == mahjong.OperateNone {
		return errors.New("unknown operate " + operate)
	}
	return s.submit(roundID, playerID, &mahjong.Request{
		Operate:  op,
		Tile:     mahjong.Tile(tile),
		LeftTile: mahjong.Tile(leftTile),
		KonType:  mahjong.KonType(konType),
	})
}

func (s *Service) SubmitPass(roundID, playerID string) error {
	return s.submit(roundID, playerID, &mahjong.Request{Operate: mahjong.OperatePass})
}

// Snapshot 活桌直接取，已结束的对局回落到落库快照
func (s *Service) Snapshot(roundID, playerID string) (*mahjong.RoundSnapshot, error) {
	if table := s.tables.Get(roundID); table != nil {
		return table.Snapshot(playerID)
	}
	if s.store != nil {
		return s.store.Load(roundID)
	}
	return nil, errors.New("round not found")
}

func (s *Service) Reenter(roundID, playerID string) error {
	table := s.tables.Get(roundID)
	if table == nil {
		return errors.New("round not found")
	}
	return table.Reenter(playerID)
}

func (s *Service) OnNetChange(roundID, playerID string, online bool) {
	if table := s.tables.Get(roundID); table != nil {
		table.OnNetChange(playerID, online)
	}
}

func (s *Service) Stop() {
	s.tables.Stop()
}

func (s *Service) submit(roundID, playerID string, req *mahjong.Request) error {
	table := s.tables.Get(roundID)
	if table == nil {
		return errors.New("round not found")
	}
	return table.Submit(playerID, req)
}
