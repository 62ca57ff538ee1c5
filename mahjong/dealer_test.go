package mahjong_test

import (
	"slices"
	"testing"

	"github.com/kevin-chtw/tw_mahjong/mahjong"
)

func newSeededDealer(t *testing.T, seed int64) *mahjong.Dealer {
	t.Helper()
	rule := mahjong.NewRule()
	rule.Seed = seed
	d := mahjong.NewDealer(rule)
	if err := d.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return d
}

func Test_DealerPopulation(t *testing.T) {
	d := newSeededDealer(t, 1)
	if got := d.GetRestCount(); got != mahjong.TileCountTotal {
		t.Fatalf("wall size = %d, want %d", got, mahjong.TileCountTotal)
	}

	counts := make(map[mahjong.Tile]int)
	for _, tile := range d.Wall() {
		counts[tile]++
	}
	for tile, want := range mahjong.AllTiles() {
		if counts[tile] != want {
			t.Errorf("tile %s count = %d, want %d", tile.Name(), counts[tile], want)
		}
	}
}

func Test_DealerOpeningDeal(t *testing.T) {
	d := newSeededDealer(t, 2)
	for seat := 0; seat < 3; seat++ {
		if got := len(d.Deal(mahjong.TileCountInitNormal)); got != 13 {
			t.Fatalf("seat %d dealt %d tiles", seat, got)
		}
	}
	banker := d.Deal(mahjong.TileCountInitNormal)
	banker = append(banker, d.DrawTile())
	if len(banker) != 14 {
		t.Fatalf("banker dealt %d tiles", len(banker))
	}
	if got := d.GetRestCount(); got != 91 {
		t.Errorf("rest = %d, want 91", got)
	}
}

func Test_DealerDeterministicShuffle(t *testing.T) {
	a := newSeededDealer(t, 77)
	b := newSeededDealer(t, 77)
	if !slices.Equal(a.Wall(), b.Wall()) {
		t.Error("same seed produced different walls")
	}

	c := newSeededDealer(t, 78)
	if slices.Equal(a.Wall(), c.Wall()) {
		t.Error("different seeds produced identical walls")
	}
}

func Test_DealerDrawEnds(t *testing.T) {
	rule := mahjong.NewRule()
	d := mahjong.NewDealer(rule)
	wall := make([]mahjong.Tile, 0, mahjong.TileCountTotal)
	for tile, count := range mahjong.AllTiles() {
		wall = append(wall, mahjong.MakeTiles(tile, count)...)
	}
	slices.Sort(wall)
	if err := d.InitializeWall(wall); err != nil {
		t.Fatalf("InitializeWall: %v", err)
	}

	if got := d.DrawTile(); got != wall[0] {
		t.Errorf("head draw = %v, want %v", got, wall[0])
	}
	if got := d.DrawRear(); got != wall[len(wall)-1] {
		t.Errorf("rear draw = %v, want %v", got, wall[len(wall)-1])
	}

	for d.GetRestCount() > 0 {
		d.DrawTile()
	}
	if got := d.DrawTile(); got != mahjong.TileNull {
		t.Errorf("draw from empty wall = %v, want TileNull", got)
	}
	if got := d.DrawRear(); got != mahjong.TileNull {
		t.Errorf("rear draw from empty wall = %v, want TileNull", got)
	}
}

func Test_DealerRejectsBadWall(t *testing.T) {
	rule := mahjong.NewRule()
	d := mahjong.NewDealer(rule)

	short := make([]mahjong.Tile, mahjong.TileCountTotal-1)
	for i := range short {
		short[i] = mahjong.TileDong
	}
	err := d.InitializeWall(short)
	if err == nil {
		t.Fatal("short wall accepted")
	}
	if !mahjong.IsCorruption(err) {
		t.Errorf("err = %v, want CorruptionError", err)
	}

	doctored := make([]mahjong.Tile, 0, mahjong.TileCountTotal)
	for tile, count := range mahjong.AllTiles() {
		doctored = append(doctored, mahjong.MakeTiles(tile, count)...)
	}
	slices.Sort(doctored)
	doctored[0] = doctored[len(doctored)-1] // 某张多一、另一张少一
	if err := d.InitializeWall(doctored); err == nil {
		t.Fatal("doctored wall accepted")
	}
}
