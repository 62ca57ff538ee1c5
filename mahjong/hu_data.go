package mahjong

import (
	"slices"
)

type HuResult struct {
	Seat  int32
	Style EHandStyle
	Multi int64
	ZiMo  bool
}

// HuData 一次胡牌/听牌判定的快照：暗手克隆加候选牌，不回写PlayData
type HuData struct {
	*PlayData
	Tiles   []Tile
	curTile Tile
	zimo    bool
}

// NewHuData self为真表示自摸判定（候选牌已在手中），
// 否则把当前弃牌作为候选并入。
func NewHuData(playData *PlayData, self bool) *HuData {
	data := &HuData{
		PlayData: playData,
		Tiles:    slices.Clone(playData.handTiles),
		curTile:  playData.play.curTile,
		zimo:     self,
	}
	return data
}

func (h *HuData) GetCurTile() Tile {
	return h.curTile
}

func (h *HuData) CheckHu() (*HuResult, bool) {
	if len(h.Tiles)%3 != 2 {
		h.Tiles = append(h.Tiles, h.curTile)
	}
	style := h.checkStyle()
	if style == HandStyleNone {
		return nil, false
	}

	result := &HuResult{
		Seat:  h.seat,
		Style: style,
		ZiMo:  h.zimo,
	}
	result.Multi = h.play.ruleset.HuMultiple(h, result)
	return result, true
}

func (h *HuData) checkStyle() EHandStyle {
	if len(h.Tiles)+3*h.MeldCount() != h.play.huCore.maxHand {
		return HandStyleNone
	}
	switch h.play.huCore.CheckBasicHu(h.Tiles) {
	case HuPing:
		return HandStylePingHu
	case HuQiDui:
		if h.MeldCount() == 0 {
			return HandStyleQiDui
		}
	}
	return HandStyleNone
}

// CheckCall 听牌表。13张形态（len%3==1）给出TileNull -> 所听牌；
// 14张形态给出 打哪张 -> 听哪些。
func (h *HuData) CheckCall() map[Tile][]Tile {
	callMap := make(map[Tile][]Tile)
	switch len(h.Tiles) % 3 {
	case 2:
		tileSet := make(map[Tile]struct{})
		for _, tile := range h.Tiles {
			tileSet[tile] = struct{}{}
		}
		original := slices.Clone(h.Tiles)
		for tile := range tileSet {
			h.Tiles = RemoveElements(original, tile, 1)
			if waits := h.waitingTiles(); len(waits) > 0 {
				callMap[tile] = waits
			}
		}
		h.Tiles = original
	case 1:
		if waits := h.waitingTiles(); len(waits) > 0 {
			callMap[TileNull] = waits
		}
	}
	return callMap
}

func (h *HuData) waitingTiles() []Tile {
	waits := make([]Tile, 0)
	original := slices.Clone(h.Tiles)
	for tile := range AllTiles() {
		if tile.IsFlower() {
			continue
		}
		h.Tiles = append(original, tile)
		if h.play.huCore.CheckBasicHu(h.Tiles) != HuNon {
			waits = append(waits, tile)
		}
	}
	h.Tiles = original
	slices.Sort(waits)
	return waits
}
