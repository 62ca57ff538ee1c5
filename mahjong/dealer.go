package mahjong

import (
	"math/rand"
	"slices"
	"time"
)

// Dealer 牌墙：固定144张，洗牌后顺序摸牌；
// 杠与补花的补牌从墙尾取。
type Dealer struct {
	rule     *Rule
	rng      *rand.Rand
	tileWall []Tile
}

func NewDealer(rule *Rule) *Dealer {
	seed := rule.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Dealer{
		rule:     rule,
		rng:      rand.New(rand.NewSource(seed)),
		tileWall: make([]Tile, 0),
	}
}

// Initialize 生成并洗乱整面牌墙；总张数不等于144视为致命缺陷
func (d *Dealer) Initialize() error {
	tiles := AllTiles()
	keys := make([]Tile, 0, len(tiles))
	total := 0
	for tile, count := range tiles {
		keys = append(keys, tile)
		total += count
	}
	if total != TileCountTotal {
		return Corruptionf("tile population %d, want %d", total, TileCountTotal)
	}
	// 按牌值序填充，随机性只来自种子化的rng，同种子必得同墙
	slices.Sort(keys)
	d.tileWall = make([]Tile, total)
	i := 0
	for _, tile := range keys {
		for range tiles[tile] {
			pos := d.rng.Intn(i + 1)
			if pos != i {
				d.tileWall[i] = d.tileWall[pos]
			}
			d.tileWall[pos] = tile
			i++
		}
	}
	return nil
}

// InitializeWall 以给定顺序直接装墙（配牌调试、断线恢复用）
func (d *Dealer) InitializeWall(tiles []Tile) error {
	if err := checkPopulation(tiles); err != nil {
		return err
	}
	d.tileWall = slices.Clone(tiles)
	return nil
}

// DrawTile 从墙头摸一张；墙空返回TileNull，荒庄由上层裁决
func (d *Dealer) DrawTile() Tile {
	if len(d.tileWall) == 0 {
		return TileNull
	}
	tile := d.tileWall[0]
	d.tileWall = d.tileWall[1:]
	return tile
}

// DrawRear 从墙尾补一张（杠后补牌、补花）
func (d *Dealer) DrawRear() Tile {
	if len(d.tileWall) == 0 {
		return TileNull
	}
	tile := d.tileWall[len(d.tileWall)-1]
	d.tileWall = d.tileWall[:len(d.tileWall)-1]
	return tile
}

// Deal 开局连发count张；墙不足时只发剩余的
func (d *Dealer) Deal(count int) []Tile {
	if count > len(d.tileWall) {
		count = len(d.tileWall)
	}
	tiles := make([]Tile, count)
	copy(tiles, d.tileWall[:count])
	d.tileWall = d.tileWall[count:]
	return tiles
}

func (d *Dealer) GetRestCount() int32 {
	return int32(len(d.tileWall))
}

func (d *Dealer) HasTile(tile Tile) bool {
	return slices.Contains(d.tileWall, tile)
}

func (d *Dealer) Count(tile Tile) int {
	count := 0
	for _, t := range d.tileWall {
		if t == tile {
			count++
		}
	}
	return count
}

func (d *Dealer) Wall() []Tile {
	return slices.Clone(d.tileWall)
}

func checkPopulation(tiles []Tile) error {
	if len(tiles) != TileCountTotal {
		return Corruptionf("wall size %d, want %d", len(tiles), TileCountTotal)
	}
	want := AllTiles()
	for _, t := range tiles {
		want[t]--
	}
	for t, c := range want {
		if c != 0 {
			return Corruptionf("tile %s count off by %d", t.Name(), -c)
		}
	}
	return nil
}
