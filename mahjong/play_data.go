package mahjong

import (
	"slices"
)

type Group struct {
	Tile  Tile
	From  int32
	Extra int32
}

type KonGroup struct {
	Tile Tile
	From int32
	Type KonType
}

type ChowGroup struct {
	ChowTile Tile
	From     int32
	LeftTile Tile
}

// PlayData 单个座位的持牌：暗手、亮出的面子、花牌与弃牌河
type PlayData struct {
	play       *Play
	seat       int32
	handTiles  []Tile
	outTiles   []Tile
	flowers    []Tile
	chowGroups []ChowGroup
	ponGroups  []Group
	konGroups  []KonGroup
	callMap    map[Tile][]Tile // 打哪张听哪些
}

func NewPlayData(play *Play, seat int32) *PlayData {
	return &PlayData{
		play:       play,
		seat:       seat,
		handTiles:  make([]Tile, 0),
		outTiles:   make([]Tile, 0),
		flowers:    make([]Tile, 0),
		chowGroups: make([]ChowGroup, 0),
		ponGroups:  make([]Group, 0),
		konGroups:  make([]KonGroup, 0),
		callMap:    make(map[Tile][]Tile),
	}
}

func (p *PlayData) Seat() int32 {
	return p.seat
}

func (p *PlayData) Discard(tile Tile) bool {
	if !slices.Contains(p.handTiles, tile) {
		return false
	}
	p.handTiles = RemoveElements(p.handTiles, tile, 1)
	p.PutOutTile(tile)
	return true
}

func (p *PlayData) PutHandTile(tile Tile) {
	p.handTiles = append(p.handTiles, tile)
}

func (p *PlayData) RemoveHandTile(tile Tile, count int) {
	p.handTiles = RemoveElements(p.handTiles, tile, count)
}

func (p *PlayData) PutOutTile(tile Tile) {
	p.outTiles = append(p.outTiles, tile)
}

// RemoveOutTile 被鸣走的那张从弃牌河收回
func (p *PlayData) RemoveOutTile() {
	if len(p.outTiles) > 0 {
		p.outTiles = p.outTiles[:len(p.outTiles)-1]
	}
}

// SweepFlowers 将暗手中的花牌全部移入花区，返回应补的张数。
// 补来的牌仍可能是花，由调用方循环到稳定为止。
func (p *PlayData) SweepFlowers() int {
	count := 0
	p.handTiles = slices.DeleteFunc(p.handTiles, func(t Tile) bool {
		if t.IsFlower() {
			p.flowers = append(p.flowers, t)
			count++
			return true
		}
		return false
	})
	return count
}

func (p *PlayData) HasFlowerInHand() bool {
	return slices.ContainsFunc(p.handTiles, Tile.IsFlower)
}

func (p *PlayData) canKon(tile Tile, konType KonType) bool {
	count := CountElement(p.handTiles, tile)
	switch konType {
	case KonTypeZhi:
		return count == 3
	case KonTypeAn:
		return count == 4
	case KonTypeBu:
		return count == 1 && p.HasPon(tile)
	default:
		return false
	}
}

func (p *PlayData) canPon(tile Tile) bool {
	return CountElement(p.handTiles, tile) >= 2
}

func (p *PlayData) canChow(tile Tile) bool {
	if !tile.IsSuit() {
		return false
	}
	color, point := tile.Info()
	points := make([]int, PointCountByColor[color])

	for _, t := range p.handTiles {
		if t.Color() == color {
			points[t.Point()]++
		}
	}
	points[point]++
	leftPoint := max(point-2, 0)
	maxLeftPoint := min(PointCountByColor[color]-3, point)
	for i := leftPoint; i <= maxLeftPoint; i++ {
		if points[i] != 0 && points[i+1] != 0 && points[i+2] != 0 {
			return true
		}
	}
	return false
}

// tryChow 校验以leftTile开头的顺子是否可吃，返回需从手中移除的两张
func (p *PlayData) tryChow(curTile, leftTile Tile) ([]Tile, bool) {
	color, point := leftTile.Info()
	if !curTile.IsSuit() || color != curTile.Color() {
		return nil, false
	}
	curPoint := curTile.Point()
	if curPoint < point || curPoint > point+2 || point+2 >= PointCountByColor[color] {
		return nil, false
	}

	tiles := make([]Tile, 0, 2)
	for i := range 3 {
		t := MakeTile(color, point+i)
		if t == curTile {
			continue
		}
		if !slices.Contains(p.handTiles, t) {
			return nil, false
		}
		tiles = append(tiles, t)
	}
	if len(tiles) != 2 {
		return nil, false
	}
	return tiles, true
}

func (p *PlayData) chow(tiles []Tile, curTile, leftTile Tile, from int32) {
	for _, t := range tiles {
		p.RemoveHandTile(t, 1)
	}
	p.chowGroups = append(p.chowGroups, ChowGroup{
		ChowTile: curTile,
		From:     from,
		LeftTile: leftTile,
	})
}

func (p *PlayData) Pon(tile Tile, from int32) {
	p.RemoveHandTile(tile, 2)
	p.ponGroups = append(p.ponGroups, Group{Tile: tile, From: from})
}

func (p *PlayData) HasPon(tile Tile) bool {
	for _, group := range p.ponGroups {
		if group.Tile == tile {
			return true
		}
	}
	return false
}

func (p *PlayData) kon(tile Tile, from int32, konType KonType) {
	switch konType {
	case KonTypeBu:
		p.RemoveHandTile(tile, 1)
		ponFrom := p.RemovePon(tile).From
		p.konGroups = append(p.konGroups, KonGroup{Tile: tile, From: ponFrom, Type: KonTypeBu})
	case KonTypeAn:
		p.RemoveHandTile(tile, 4)
		p.konGroups = append(p.konGroups, KonGroup{Tile: tile, From: from, Type: KonTypeAn})
	default:
		p.RemoveHandTile(tile, 3)
		p.konGroups = append(p.konGroups, KonGroup{Tile: tile, From: from, Type: KonTypeZhi})
	}
}

func (p *PlayData) RemovePon(tile Tile) Group {
	for i, group := range p.ponGroups {
		if group.Tile == tile {
			p.ponGroups = append(p.ponGroups[:i], p.ponGroups[i+1:]...)
			return group
		}
	}
	return Group{}
}

// canSelfKon 摸牌后是否可暗杠/补杠
func (p *PlayData) canSelfKon() []Tile {
	konTiles := make([]Tile, 0)
	counts := make(map[Tile]int)
	for _, tile := range p.handTiles {
		counts[tile]++
	}

	for _, pon := range p.ponGroups {
		if slices.Contains(p.handTiles, pon.Tile) {
			konTiles = append(konTiles, pon.Tile)
		}
	}
	for tile, count := range counts {
		if count == 4 {
			konTiles = append(konTiles, tile)
		}
	}
	return konTiles
}

func (p *PlayData) GetHandTiles() []Tile {
	return p.handTiles
}

func (p *PlayData) GetOutTiles() []Tile {
	return p.outTiles
}

func (p *PlayData) GetFlowers() []Tile {
	return p.flowers
}

func (p *PlayData) GetChowGroups() []ChowGroup {
	return p.chowGroups
}

func (p *PlayData) GetPonGroups() []Group {
	return p.ponGroups
}

func (p *PlayData) GetKonGroups() []KonGroup {
	return p.konGroups
}

func (p *PlayData) SetCallMap(m map[Tile][]Tile) {
	p.callMap = m
}

func (p *PlayData) GetCallMap() map[Tile][]Tile {
	return p.callMap
}

// MeldCount 已亮出的面子数
func (p *PlayData) MeldCount() int {
	return len(p.chowGroups) + len(p.ponGroups) + len(p.konGroups)
}

// TileTotal 该座位占用的实体牌总数（含花与弃牌河），守恒校验用
func (p *PlayData) TileTotal() int {
	total := len(p.handTiles) + len(p.outTiles) + len(p.flowers)
	total += 3 * (len(p.chowGroups) + len(p.ponGroups))
	total += 4 * len(p.konGroups)
	return total
}
