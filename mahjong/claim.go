package mahjong

import (
	"slices"
)

// ClaimResponse 座位对鸣牌窗口的应答
type ClaimResponse struct {
	Seat     int32
	Operate  int32
	LeftTile Tile // 吃牌时的顺子起点
}

// ClaimResult 窗口裁决结果。Hu时Seats可能多于一家（一炮多响）。
type ClaimResult struct {
	Operate  int32
	Seats    []int32
	Tile     Tile
	LeftTile Tile
}

// ClaimWindow 一次弃牌（或被抢杠牌）打开的鸣牌窗口。
// 窗口收齐所有资格方的应答后按 胡>杠>碰>吃 裁决；
// 先到的低优先级应答绝不提前生效。窗口随裁决一起丢弃。
type ClaimWindow struct {
	play      *Play
	tile      Tile
	discarder int32
	expects   map[int32]*Operates
	responses map[int32]*ClaimResponse
}

func NewClaimWindow(play *Play, tile Tile, discarder int32) *ClaimWindow {
	return &ClaimWindow{
		play:      play,
		tile:      tile,
		discarder: discarder,
		expects:   make(map[int32]*Operates),
		responses: make(map[int32]*ClaimResponse),
	}
}

func (w *ClaimWindow) AddExpect(seat int32, opt *Operates) {
	if !opt.Empty() {
		w.expects[seat] = opt
	}
}

func (w *ClaimWindow) Expect(seat int32) *Operates {
	return w.expects[seat]
}

func (w *ClaimWindow) Expects() map[int32]*Operates {
	return w.expects
}

func (w *ClaimWindow) HasExpects() bool {
	return len(w.expects) > 0
}

// Submit 记录一个座位的应答；资格或动作不符返回ErrIllegalClaim
func (w *ClaimWindow) Submit(seat int32, operate int32, leftTile Tile) error {
	opt, ok := w.expects[seat]
	if !ok {
		return ErrIllegalClaim
	}
	if _, dup := w.responses[seat]; dup {
		return ErrIllegalClaim
	}
	if operate != OperatePass && !opt.HasOperate(operate) {
		return ErrIllegalClaim
	}
	if operate == OperateChow {
		if _, ok := w.play.playData[seat].tryChow(w.tile, leftTile); !ok {
			return ErrIllegalClaim
		}
	}
	w.responses[seat] = &ClaimResponse{Seat: seat, Operate: operate, LeftTile: leftTile}
	return nil
}

// PassRemaining 超时：未应答者一律按过处理
func (w *ClaimWindow) PassRemaining() {
	for seat := range w.expects {
		if _, ok := w.responses[seat]; !ok {
			w.responses[seat] = &ClaimResponse{Seat: seat, Operate: OperatePass}
		}
	}
}

// Complete 是否可以关窗。所有资格方应答即完整；
// 若规则允许提前裁决，所有可胡方都已应答且有人报胡时，
// 后续应答不可能反超，也视为完整。
func (w *ClaimWindow) Complete() bool {
	if len(w.responses) == len(w.expects) {
		return true
	}
	if !w.play.rule.EarlyHuResolve {
		return false
	}
	huClaimed := false
	for seat, opt := range w.expects {
		if !opt.HasOperate(OperateHu) {
			continue
		}
		resp, ok := w.responses[seat]
		if !ok {
			return false
		}
		if resp.Operate == OperateHu {
			huClaimed = true
		}
	}
	return huClaimed
}

// Resolve 按优先级裁决唯一结果；全过返回nil
func (w *ClaimWindow) Resolve() *ClaimResult {
	if huSeats := w.claimants(OperateHu); len(huSeats) > 0 {
		return &ClaimResult{
			Operate: OperateHu,
			Seats:   w.applyTiePolicy(huSeats),
			Tile:    w.tile,
		}
	}
	for _, op := range []int32{OperateKon, OperatePon, OperateChow} {
		seats := w.claimants(op)
		if len(seats) == 0 {
			continue
		}
		// 杠/碰/吃同一张不可能多家同时具备资格
		result := &ClaimResult{Operate: op, Seats: seats[:1], Tile: w.tile}
		if op == OperateChow {
			result.LeftTile = w.responses[seats[0]].LeftTile
		}
		return result
	}
	return nil
}

func (w *ClaimWindow) claimants(operate int32) []int32 {
	seats := make([]int32, 0)
	for seat, resp := range w.responses {
		if resp.Operate == operate {
			seats = append(seats, seat)
		}
	}
	slices.Sort(seats)
	return seats
}

// applyTiePolicy 多家报胡时按规则取全部或离点炮者最近的一家
func (w *ClaimWindow) applyTiePolicy(seats []int32) []int32 {
	if len(seats) <= 1 || w.play.rule.HuTiePolicy == HuTieAll {
		return seats
	}
	seat := w.discarder
	for range w.play.rule.PlayerCount {
		seat = w.play.rule.NextSeat(seat)
		if slices.Contains(seats, seat) {
			return []int32{seat}
		}
	}
	return seats[:1]
}
