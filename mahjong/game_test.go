package mahjong

import (
	"testing"
)

// 全员只出牌不鸣牌，整局应以荒庄收尾且每步守恒
func Test_FullRoundAllPass(t *testing.T) {
	stub := &tableStub{count: 4, property: "seed: 42"}
	g := NewGame(stub, nil)
	g.OnGameBegin()

	for i := 0; i < 600 && !g.IsOver(); i++ {
		switch st := g.CurState.(type) {
		case *StateDiscard:
			seat := g.play.GetCurSeat()
			if err := g.OnPlayerMsg(seat, &Request{Operate: OperateDiscard, Tile: TileNull}); err != nil {
				t.Fatalf("discard by seat %d: %v", seat, err)
			}
		case *StateClaim:
			for seat := range st.window.Expects() {
				// 窗口可能在中途关闭，后续应答会被新状态拒绝
				g.OnPlayerMsg(seat, &Request{Operate: OperatePass})
			}
		default:
			t.Fatalf("unexpected state %q", g.CurState.Name())
		}
		if !g.IsOver() {
			if err := g.play.CheckConservation(); err != nil {
				t.Fatal(err)
			}
		}
	}

	if !g.IsOver() {
		t.Fatal("round did not finish")
	}
	if got := g.Result(); got != GameOverLiuju {
		t.Errorf("result = %v, want GameOverLiuju", got)
	}
	if !stub.overed {
		t.Error("host was not notified of game over")
	}
	if len(stub.msgs) == 0 {
		t.Error("no notifications were sent")
	}
}

func Test_GameRejectsBadRequests(t *testing.T) {
	stub := &tableStub{count: 4, property: "seed: 7"}
	g := NewGame(stub, nil)
	g.OnGameBegin()

	if err := g.OnPlayerMsg(9, &Request{Operate: OperateDiscard}); err == nil {
		t.Error("invalid seat accepted")
	}
	seat := g.play.GetCurSeat()
	other := g.rule.NextSeat(seat)
	if err := g.OnPlayerMsg(other, &Request{Operate: OperateDiscard, Tile: TileNull}); err == nil {
		t.Error("discard out of turn accepted")
	}
	notInHand := TileInf
	if err := g.OnPlayerMsg(seat, &Request{Operate: OperateDiscard, Tile: notInHand}); err == nil {
		t.Error("discard of a tile not in hand accepted")
	}
}

func Test_SnapshotRedaction(t *testing.T) {
	stub := &tableStub{count: 4, property: "seed: 9"}
	g := NewGame(stub, nil)
	g.OnGameBegin()

	snap := g.BuildSnapshot(0)
	if snap == nil {
		t.Fatal("nil snapshot")
	}
	if snap.Phase != "discard" {
		t.Errorf("phase = %q, want discard", snap.Phase)
	}
	if len(snap.Seats[0].HandTiles) == 0 {
		t.Error("own hand should be visible")
	}
	for _, seat := range snap.Seats[1:] {
		if len(seat.HandTiles) != 0 {
			t.Errorf("seat %d hand leaked to another perspective", seat.Seat)
		}
		if seat.HandCount == 0 {
			t.Errorf("seat %d hand count missing", seat.Seat)
		}
	}
	if len(snap.History) != 0 {
		t.Error("history leaked to a player perspective")
	}

	// 让庄家出一张，行牌历史开始累积
	if err := g.OnPlayerMsg(g.play.GetCurSeat(), &Request{Operate: OperateDiscard, Tile: TileNull}); err != nil {
		t.Fatalf("discard: %v", err)
	}

	full := g.BuildSnapshot(SeatNull)
	for _, seat := range full.Seats {
		if len(seat.HandTiles) == 0 {
			t.Errorf("seat %d hand missing from full snapshot", seat.Seat)
		}
	}
	if len(full.History) == 0 {
		t.Error("full snapshot should carry the action history")
	}
}
