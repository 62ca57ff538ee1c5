package mahjong

import (
	"errors"
	"slices"
	"strconv"
	"sync"
	"testing"

	"google.golang.org/protobuf/types/known/anypb"
)

// tableStub 测试用宿主桌面
type tableStub struct {
	mu       sync.Mutex
	count    int32
	property string
	msgs     []*anypb.Any
	overed   bool
}

func (t *tableStub) GetPlayerCount() int32 { return t.count }

func (t *tableStub) GetPlayerID(seat int32) string { return "p" + strconv.Itoa(int(seat)) }

func (t *tableStub) GetPlayerScore(seat int32) int64 { return 1000 }

func (t *tableStub) GetScoreBase() int64 { return 1 }

func (t *tableStub) GetProperty() string { return t.property }

func (t *tableStub) Send2Player(ack *anypb.Any, seat int32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.msgs = append(t.msgs, ack)
}

func (t *tableStub) NotifyGameOver() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.overed = true
}

func newTestGame(t *testing.T, property string) *Game {
	t.Helper()
	return NewGame(&tableStub{count: 4, property: property}, nil)
}

// newTestPlay 摆好各家暗手；不校验守恒，供窗口裁决类测试使用
func newTestPlay(t *testing.T, g *Game, hands [4]string) *Play {
	t.Helper()
	p := NewPlay(g)
	if err := p.Initialize(0); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	for i, hand := range hands {
		p.playData[i].handTiles = NamesToTiles(hand)
	}
	return p
}

func Test_ClaimPriorityHuFirst(t *testing.T) {
	g := newTestGame(t, "")
	p := newTestPlay(t, g, [4]string{
		"3万,1筒,1筒,2筒,2筒,3筒,3筒,4筒,4筒,5筒,5筒,6筒,6筒",
		"1万,2万,东,东,东,南,南,南,西,西,北,北,发", // 下家可吃
		"3万,3万,中,中,中,白,白,白,9筒,9筒,8筒,1条,2条", // 可碰
		"1万,1万,1万,4万,5万,6万,7万,8万,9万,5条,6条,7条,3万", // 听3万
	})

	if err := p.Discard(NameToTile("3万")); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	w := p.BuildClaimWindow()
	if !w.HasExpects() {
		t.Fatal("no claim eligibility collected")
	}
	if !w.Expect(1).HasOperate(OperateChow) {
		t.Error("seat1 should be chow-eligible")
	}
	if !w.Expect(2).HasOperate(OperatePon) {
		t.Error("seat2 should be pon-eligible")
	}
	if !w.Expect(3).HasOperate(OperateHu) {
		t.Error("seat3 should be hu-eligible")
	}

	if err := w.Submit(1, OperateChow, NameToTile("1万")); err != nil {
		t.Fatalf("chow submit: %v", err)
	}
	if err := w.Submit(2, OperatePon, TileNull); err != nil {
		t.Fatalf("pon submit: %v", err)
	}
	if err := w.Submit(3, OperateHu, TileNull); err != nil {
		t.Fatalf("hu submit: %v", err)
	}
	if !w.Complete() {
		t.Fatal("window should be complete")
	}

	res := w.Resolve()
	if res == nil || res.Operate != OperateHu {
		t.Fatalf("resolve = %+v, want hu", res)
	}
	if !slices.Equal(res.Seats, []int32{3}) {
		t.Errorf("hu seats = %v, want [3]", res.Seats)
	}
}

func Test_ClaimBufferedNoEarlyEffect(t *testing.T) {
	g := newTestGame(t, "")
	p := newTestPlay(t, g, [4]string{
		"3万,1筒,1筒,2筒,2筒,3筒,3筒,4筒,4筒,5筒,5筒,6筒,6筒",
		"1万,2万,东,东,东,南,南,南,西,西,北,北,发",
		"3万,3万,中,中,中,白,白,白,9筒,9筒,8筒,1条,2条",
		"1万,1万,1万,4万,5万,6万,7万,8万,9万,5条,6条,7条,3万",
	})
	p.Discard(NameToTile("3万"))
	w := p.BuildClaimWindow()

	// 低优先级先到不生效，窗口未收齐
	if err := w.Submit(1, OperateChow, NameToTile("1万")); err != nil {
		t.Fatalf("chow submit: %v", err)
	}
	if w.Complete() {
		t.Fatal("window complete after a single low-priority response")
	}
	w.PassRemaining()
	res := w.Resolve()
	if res == nil || res.Operate != OperateChow {
		t.Fatalf("resolve = %+v, want chow after others passed", res)
	}
}

func tieHands() [4]string {
	return [4]string{
		"2筒,2筒,4筒,4筒,6筒,6筒,8筒,8筒,东,南,西,北,中",
		"1条,1条,1条,4条,5条,6条,7条,8条,9条,5筒,6筒,7筒,3万", // 听3万
		"3万,1筒,1筒,2筒,3筒,4筒,5筒,5筒,5筒,9筒,9筒,9筒,发",
		"1万,1万,1万,4万,5万,6万,7万,8万,9万,7筒,8筒,9筒,3万", // 听3万
	}
}

func Test_ClaimHuTieNearest(t *testing.T) {
	g := newTestGame(t, "")
	p := newTestPlay(t, g, tieHands())
	p.curSeat = 2
	if err := p.Discard(NameToTile("3万")); err != nil {
		t.Fatalf("Discard: %v", err)
	}

	w := p.BuildClaimWindow()
	if err := w.Submit(1, OperateHu, TileNull); err != nil {
		t.Fatalf("seat1 hu: %v", err)
	}
	if err := w.Submit(3, OperateHu, TileNull); err != nil {
		t.Fatalf("seat3 hu: %v", err)
	}
	w.PassRemaining()

	res := w.Resolve()
	if res == nil || res.Operate != OperateHu {
		t.Fatalf("resolve = %+v, want hu", res)
	}
	// 自座位2起顺时针，3先于1
	if !slices.Equal(res.Seats, []int32{3}) {
		t.Errorf("hu seats = %v, want [3]", res.Seats)
	}
}

func Test_ClaimHuTieAll(t *testing.T) {
	g := newTestGame(t, "hu_tie_all: true")
	p := newTestPlay(t, g, tieHands())
	p.curSeat = 2
	p.Discard(NameToTile("3万"))

	w := p.BuildClaimWindow()
	w.Submit(1, OperateHu, TileNull)
	w.Submit(3, OperateHu, TileNull)
	w.PassRemaining()

	res := w.Resolve()
	if res == nil || res.Operate != OperateHu {
		t.Fatalf("resolve = %+v, want hu", res)
	}
	if !slices.Equal(res.Seats, []int32{1, 3}) {
		t.Errorf("hu seats = %v, want [1 3]", res.Seats)
	}
}

func Test_ClaimEarlyHuResolve(t *testing.T) {
	g := newTestGame(t, "")
	p := newTestPlay(t, g, [4]string{
		"2筒,2筒,4筒,4筒,6筒,6筒,8筒,8筒,东,南,西,北,中",
		"1条,1条,1条,4条,5条,6条,7条,8条,9条,5筒,6筒,7筒,3万",
		"3万,1筒,1筒,2筒,3筒,4筒,5筒,5筒,5筒,9筒,9筒,9筒,发",
		"3万,3万,1万,4万,5万,7万,8万,9万,7筒,8筒,9筒,东,东", // 只可碰
	})
	p.curSeat = 2
	p.Discard(NameToTile("3万"))

	w := p.BuildClaimWindow()
	if err := w.Submit(1, OperateHu, TileNull); err != nil {
		t.Fatalf("seat1 hu: %v", err)
	}
	// 所有可胡家已应答且有人报胡，碰家的应答不可能反超
	if !w.Complete() {
		t.Fatal("window should close early once every hu-eligible seat answered")
	}
	res := w.Resolve()
	if res == nil || res.Operate != OperateHu || !slices.Equal(res.Seats, []int32{1}) {
		t.Fatalf("resolve = %+v, want hu by seat1", res)
	}
}

func Test_ClaimEarlyResolveDisabled(t *testing.T) {
	g := newTestGame(t, "early_hu_resolve: false")
	p := newTestPlay(t, g, [4]string{
		"2筒,2筒,4筒,4筒,6筒,6筒,8筒,8筒,东,南,西,北,中",
		"1条,1条,1条,4条,5条,6条,7条,8条,9条,5筒,6筒,7筒,3万",
		"3万,1筒,1筒,2筒,3筒,4筒,5筒,5筒,5筒,9筒,9筒,9筒,发",
		"3万,3万,1万,4万,5万,7万,8万,9万,7筒,8筒,9筒,东,东",
	})
	p.curSeat = 2
	p.Discard(NameToTile("3万"))

	w := p.BuildClaimWindow()
	w.Submit(1, OperateHu, TileNull)
	if w.Complete() {
		t.Fatal("window must wait for every eligible seat when early resolve is off")
	}
}

func Test_ClaimSubmitIllegal(t *testing.T) {
	g := newTestGame(t, "")
	p := newTestPlay(t, g, [4]string{
		"3万,1筒,1筒,2筒,2筒,3筒,3筒,4筒,4筒,5筒,5筒,6筒,6筒",
		"1万,2万,东,东,东,南,南,南,西,西,北,北,发",
		"3万,3万,中,中,中,白,白,白,9筒,9筒,8筒,1条,2条",
		"1万,4万,7万,2条,5条,8条,1筒,4筒,7筒,东,南,中,发",
	})
	p.Discard(NameToTile("3万"))
	w := p.BuildClaimWindow()

	if err := w.Submit(3, OperatePon, TileNull); !errors.Is(err, ErrIllegalClaim) {
		t.Errorf("ineligible seat err = %v, want ErrIllegalClaim", err)
	}
	if err := w.Submit(2, OperateHu, TileNull); !errors.Is(err, ErrIllegalClaim) {
		t.Errorf("unoffered operate err = %v, want ErrIllegalClaim", err)
	}
	if err := w.Submit(1, OperateChow, NameToTile("2万")); !errors.Is(err, ErrIllegalClaim) {
		t.Errorf("bad chow sequence err = %v, want ErrIllegalClaim", err)
	}
	if err := w.Submit(2, OperatePon, TileNull); err != nil {
		t.Fatalf("pon submit: %v", err)
	}
	if err := w.Submit(2, OperatePass, TileNull); !errors.Is(err, ErrIllegalClaim) {
		t.Errorf("duplicate submit err = %v, want ErrIllegalClaim", err)
	}
}

func Test_ClaimAllPass(t *testing.T) {
	g := newTestGame(t, "")
	p := newTestPlay(t, g, [4]string{
		"3万,1筒,1筒,2筒,2筒,3筒,3筒,4筒,4筒,5筒,5筒,6筒,6筒",
		"1万,2万,东,东,东,南,南,南,西,西,北,北,发",
		"3万,3万,中,中,中,白,白,白,9筒,9筒,8筒,1条,2条",
		"1万,4万,7万,2条,5条,8条,1筒,4筒,7筒,东,南,中,发",
	})
	p.Discard(NameToTile("3万"))
	w := p.BuildClaimWindow()
	w.PassRemaining()
	if !w.Complete() {
		t.Fatal("window should be complete after PassRemaining")
	}
	if res := w.Resolve(); res != nil {
		t.Errorf("resolve = %+v, want nil when everyone passed", res)
	}
}
