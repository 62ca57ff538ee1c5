package mahjong

import (
	"strconv"
)

// 对局快照。活数据与DTO分离：快照只做断线重入展示与落库，
// 不反向驱动引擎。

type MeldSnapshot struct {
	Type     EGroupType `json:"type"`
	Tile     int32      `json:"tile"`
	From     int32      `json:"from"`
	LeftTile int32      `json:"left_tile,omitempty"`
}

type SeatSnapshot struct {
	Seat      int32              `json:"seat"`
	HandTiles []int32            `json:"hand_tiles,omitempty"` // 仅本人视角
	HandCount int32              `json:"hand_count"`
	OutTiles  []int32            `json:"out_tiles"`
	Flowers   []int32            `json:"flowers"`
	Melds     []MeldSnapshot     `json:"melds"`
	Calls     map[string][]int32 `json:"calls,omitempty"` // 打哪张听哪些，仅本人视角
	Score     int64              `json:"score"`
	Out       bool               `json:"out"`
}

type ActionSnapshot struct {
	Seat    int32 `json:"seat"`
	From    int32 `json:"from"`
	Operate int32 `json:"operate"`
	Tile    int32 `json:"tile"`
	Extra   int32 `json:"extra,omitempty"`
}

type RoundSnapshot struct {
	Phase     string           `json:"phase"`
	Banker    int32            `json:"banker"`
	CurSeat   int32            `json:"cur_seat"`
	CurTile   int32            `json:"cur_tile"`
	RestCount int32            `json:"rest_count"`
	Result    EGameOverStatus  `json:"result"`
	Over      bool             `json:"over"`
	Seats     []*SeatSnapshot  `json:"seats"`
	History   []ActionSnapshot `json:"history,omitempty"` // 仅全量快照
}

// BuildSnapshot 以某个座位的视角生成快照：其他座位的暗手与
// 行牌历史被隐去，只留张数。perspective为SeatNull时不做遮蔽，
// 供落库与诊断使用。
func (g *Game) BuildSnapshot(perspective int32) *RoundSnapshot {
	if g.play == nil {
		return nil
	}
	play := g.play
	full := perspective == SeatNull

	snap := &RoundSnapshot{
		Phase:     g.phaseName(),
		Banker:    play.GetBanker(),
		CurSeat:   play.GetCurSeat(),
		CurTile:   play.GetCurTile().ToInt32(),
		RestCount: int32(play.GetDealer().GetRestCount()),
		Result:    g.result,
		Over:      g.over,
		Seats:     make([]*SeatSnapshot, g.rule.PlayerCount),
	}

	for i := range g.rule.PlayerCount {
		playData := play.GetPlayData(i)
		seat := &SeatSnapshot{
			Seat:      i,
			HandCount: int32(len(playData.GetHandTiles())),
			OutTiles:  TilesInt32(playData.GetOutTiles()),
			Flowers:   TilesInt32(playData.GetFlowers()),
			Melds:     meldsOf(playData),
			Score:     g.GetPlayer(i).GetCurScore(),
			Out:       g.GetPlayer(i).IsOut(),
		}
		if full || i == perspective {
			seat.HandTiles = TilesInt32(playData.GetHandTiles())
			seat.Calls = callsOf(playData)
		}
		snap.Seats[i] = seat
	}

	if full {
		for _, a := range play.GetHistory() {
			snap.History = append(snap.History, ActionSnapshot{
				Seat:    a.Seat,
				From:    a.From,
				Operate: a.Operate,
				Tile:    a.Tile.ToInt32(),
				Extra:   a.Extra.ToInt32(),
			})
		}
	}
	return snap
}

func (g *Game) phaseName() string {
	if g.CurState == nil {
		return ""
	}
	return g.CurState.Name()
}

// callsOf 听牌表转DTO。键是打出牌的int32值；TileNull键表示已是听牌形态
func callsOf(playData *PlayData) map[string][]int32 {
	callMap := playData.GetCallMap()
	if len(callMap) == 0 {
		return nil
	}
	calls := make(map[string][]int32, len(callMap))
	for tile, waits := range callMap {
		calls[strconv.Itoa(int(tile.ToInt32()))] = TilesInt32(waits)
	}
	return calls
}

func meldsOf(playData *PlayData) []MeldSnapshot {
	melds := make([]MeldSnapshot, 0, playData.MeldCount())
	for _, c := range playData.GetChowGroups() {
		melds = append(melds, MeldSnapshot{
			Type:     GroupTypeChow,
			Tile:     c.ChowTile.ToInt32(),
			From:     c.From,
			LeftTile: c.LeftTile.ToInt32(),
		})
	}
	for _, p := range playData.GetPonGroups() {
		melds = append(melds, MeldSnapshot{Type: GroupTypePon, Tile: p.Tile.ToInt32(), From: p.From})
	}
	for _, k := range playData.GetKonGroups() {
		t := GroupTypeZhiKon
		switch k.Type {
		case KonTypeAn:
			t = GroupTypeAnKon
		case KonTypeBu:
			t = GroupTypeBuKon
		}
		melds = append(melds, MeldSnapshot{Type: t, Tile: k.Tile.ToInt32(), From: k.From})
	}
	return melds
}
