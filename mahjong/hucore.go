package mahjong

import (
	"slices"
	"strconv"
	"strings"
)

type HuCoreType int

const (
	HuNon   HuCoreType = iota // 未成牌
	HuPing                    // 基本牌型：n个面子+1对
	HuQiDui                   // 七对
)

// HandChecker 单一牌型判定策略；注册到HuCore后依次尝试，任一命中即胡。
type HandChecker interface {
	Check(tiles []Tile) HuCoreType
}

// HuCore 胡牌判定核心。花牌在摸牌阶段已被清出，
// 传入的tiles只应包含数牌与字牌。
type HuCore struct {
	maxHand  int
	checkers []HandChecker
}

func NewHuCore(maxHand int) *HuCore {
	return &HuCore{
		maxHand:  maxHand,
		checkers: []HandChecker{&pingHuChecker{}},
	}
}

func (h *HuCore) RegisterChecker(cks ...HandChecker) {
	h.checkers = append(h.checkers, cks...)
}

// CheckBasicHu 依次尝试各牌型；面子数由牌张数推出（n%3==2）
func (h *HuCore) CheckBasicHu(tiles []Tile) HuCoreType {
	if len(tiles) > h.maxHand {
		return HuNon
	}
	for _, t := range tiles {
		if t.IsFlower() {
			return HuNon
		}
	}
	for _, c := range h.checkers {
		if style := c.Check(tiles); style != HuNon {
			return style
		}
	}
	return HuNon
}

// pingHuChecker 基本牌型：回溯拆解为(len-2)/3个面子加一对将。
// 顺子只允许数牌；按剩余牌的规范签名做记忆化。
type pingHuChecker struct{}

func (c *pingHuChecker) Check(tiles []Tile) HuCoreType {
	if len(tiles)%3 != 2 {
		return HuNon
	}
	counts := make(map[Tile]int)
	for _, t := range tiles {
		counts[t]++
	}
	keys := make([]Tile, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	memo := make(map[string]bool)
	if c.split(counts, keys, false, memo) {
		return HuPing
	}
	return HuNon
}

func (c *pingHuChecker) split(counts map[Tile]int, keys []Tile, hasPair bool, memo map[string]bool) bool {
	tile := TileNull
	for _, k := range keys {
		if counts[k] > 0 {
			tile = k
			break
		}
	}
	if tile == TileNull {
		return hasPair
	}

	sig := signature(counts, keys, hasPair)
	if done, ok := memo[sig]; ok {
		return done
	}

	ok := false
	// 将
	if !hasPair && counts[tile] >= 2 {
		counts[tile] -= 2
		ok = c.split(counts, keys, true, memo)
		counts[tile] += 2
	}
	// 刻子
	if !ok && counts[tile] >= 3 {
		counts[tile] -= 3
		ok = c.split(counts, keys, hasPair, memo)
		counts[tile] += 3
	}
	// 顺子，仅数牌
	if !ok && tile.IsSuit() && tile.Point()+2 < PointCountByColor[tile.Color()] {
		t1 := MakeTile(tile.Color(), tile.Point()+1)
		t2 := MakeTile(tile.Color(), tile.Point()+2)
		if counts[t1] > 0 && counts[t2] > 0 {
			counts[tile]--
			counts[t1]--
			counts[t2]--
			ok = c.split(counts, keys, hasPair, memo)
			counts[tile]++
			counts[t1]++
			counts[t2]++
		}
	}

	memo[sig] = ok
	return ok
}

func signature(counts map[Tile]int, keys []Tile, hasPair bool) string {
	var sb strings.Builder
	for _, k := range keys {
		if counts[k] == 0 {
			continue
		}
		sb.WriteString(strconv.Itoa(int(k)))
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(counts[k]))
		sb.WriteByte(',')
	}
	if hasPair {
		sb.WriteByte('p')
	}
	return sb.String()
}

// QiDuiChecker 七对：14张恰好7个对子，不允许有副露
type QiDuiChecker struct{}

func (c *QiDuiChecker) Check(tiles []Tile) HuCoreType {
	if len(tiles) != 14 {
		return HuNon
	}
	counts := make(map[Tile]int)
	for _, t := range tiles {
		counts[t]++
	}
	for _, n := range counts {
		if n%2 != 0 {
			return HuNon
		}
	}
	return HuQiDui
}
