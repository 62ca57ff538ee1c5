package mahjong

import (
	"github.com/sirupsen/logrus"
)

// Play 一局的行牌聚合根：牌墙、四家持牌、行牌历史。
// 只能由状态机驱动，外部不直接改写。
type Play struct {
	game         *Game
	rule         *Rule
	dealer       *Dealer
	huCore       *HuCore
	ruleset      IScoreRuleset
	curSeat      int32
	curTile      Tile
	banker       int32
	history      []Action
	playData     []*PlayData
	huResult     []*HuResult
	selfCheckers []CheckerSelf
	waitCheckers []CheckerWait
	robChecker   CheckerWait
}

func NewPlay(game *Game) *Play {
	rule := game.GetRule()
	p := &Play{
		game:     game,
		rule:     rule,
		dealer:   NewDealer(rule),
		huCore:   NewHuCore(TileCountInitBanker),
		ruleset:  game.GetRuleset(),
		curSeat:  SeatNull,
		curTile:  TileNull,
		banker:   SeatNull,
		history:  make([]Action, 0),
		playData: make([]*PlayData, rule.PlayerCount),
		huResult: make([]*HuResult, rule.PlayerCount),
	}
	if rule.SevenPairs {
		p.huCore.RegisterChecker(&QiDuiChecker{})
	}
	p.selfCheckers = []CheckerSelf{NewCheckerHu(p), NewCheckerKon(p)}
	p.waitCheckers = []CheckerWait{NewCheckerPao(p), NewCheckerZhiKon(p), NewCheckerPon(p), NewCheckerChow(p)}
	p.robChecker = NewCheckerPao(p)
	return p
}

func (p *Play) Initialize(banker int32) error {
	p.banker = banker
	p.curSeat = banker
	if err := p.dealer.Initialize(); err != nil {
		return err
	}
	for i := range p.rule.PlayerCount {
		p.playData[i] = NewPlayData(p, i)
	}
	return nil
}

// InitializeManual 用配牌墙开局（测试与调试）
func (p *Play) InitializeManual(banker int32, wall []Tile) error {
	p.banker = banker
	p.curSeat = banker
	if err := p.dealer.InitializeWall(wall); err != nil {
		return err
	}
	for i := range p.rule.PlayerCount {
		p.playData[i] = NewPlayData(p, i)
	}
	return nil
}

// Deal 每家13张、庄家14张，随后从庄家起逐家补花到稳定
func (p *Play) Deal() error {
	for i := range p.rule.PlayerCount {
		p.playData[i].handTiles = p.dealer.Deal(TileCountInitNormal)
	}
	p.playData[p.banker].PutHandTile(p.dealer.DrawTile())
	p.sweepAllFlowers()
	for i := range p.rule.PlayerCount {
		p.FreshCallData(i)
	}
	return p.CheckConservation()
}

// sweepAllFlowers 开局补花，自庄家起逐家清到稳定
func (p *Play) sweepAllFlowers() {
	seat := p.banker
	for range p.rule.PlayerCount {
		p.sweepFlowers(seat)
		seat = p.rule.NextSeat(seat)
	}
}

// sweepFlowers 清出seat手中的花并从墙尾补足；补来的又是花就继续，
// 直到手中无花或墙空为止，返回清出的总张数
func (p *Play) sweepFlowers(seat int32) int {
	playData := p.playData[seat]
	total := 0
	for {
		count := playData.SweepFlowers()
		total += count
		if count == 0 {
			return total
		}
		for range count {
			tile := p.dealer.DrawRear()
			if tile == TileNull {
				return total
			}
			playData.PutHandTile(tile)
			p.addHistory(seat, seat, OperateFlower, tile, 0)
		}
	}
}

func (p *Play) FetchSelfOperates() *Operates {
	opt := NewOperates(OperateDiscard)
	for _, v := range p.selfCheckers {
		v.Check(opt)
	}
	return opt
}

// BuildClaimWindow 对当前弃牌收集其余座位的响应资格
func (p *Play) BuildClaimWindow() *ClaimWindow {
	window := NewClaimWindow(p, p.curTile, p.curSeat)
	for seat := range p.rule.PlayerCount {
		if seat == p.curSeat || p.game.GetPlayer(seat).IsOut() {
			continue
		}
		opt := NewOperates(OperatePass)
		for _, v := range p.waitCheckers {
			v.Check(seat, opt)
		}
		window.AddExpect(seat, opt)
	}
	return window
}

// BuildRobKonWindow 补杠牌对其余座位只开放抢杠胡
func (p *Play) BuildRobKonWindow() *ClaimWindow {
	window := NewClaimWindow(p, p.curTile, p.curSeat)
	for seat := range p.rule.PlayerCount {
		if seat == p.curSeat || p.game.GetPlayer(seat).IsOut() {
			continue
		}
		opt := NewOperates(OperatePass)
		p.robChecker.Check(seat, opt)
		window.AddExpect(seat, opt)
	}
	return window
}

func (p *Play) Discard(tile Tile) error {
	playData := p.playData[p.curSeat]
	if tile == TileNull {
		tile = playData.handTiles[len(playData.handTiles)-1]
	}
	if !playData.Discard(tile) {
		return ErrInvalidAction
	}
	p.curTile = tile
	p.addHistory(p.curSeat, p.curSeat, OperateDiscard, tile, 0)
	p.FreshCallData(p.curSeat)
	return nil
}

// Draw 轮到的座位从墙头摸一张并清花；墙空返回TileNull
func (p *Play) Draw() Tile {
	tile := p.dealer.DrawTile()
	if tile == TileNull {
		return TileNull
	}
	p.curTile = tile
	p.playData[p.curSeat].PutHandTile(tile)
	p.addHistory(p.curSeat, p.curSeat, OperateDraw, tile, 0)
	p.sweepFlowers(p.curSeat)
	if len(p.playData[p.curSeat].handTiles) > 0 {
		tiles := p.playData[p.curSeat].handTiles
		p.curTile = tiles[len(tiles)-1]
	}
	p.FreshCallData(p.curSeat)
	return p.curTile
}

func (p *Play) Chow(seat int32, leftTile Tile) error {
	playData := p.playData[seat]
	tiles, ok := playData.tryChow(p.curTile, leftTile)
	if !ok {
		return ErrIllegalClaim
	}
	playData.chow(tiles, p.curTile, leftTile, p.curSeat)
	p.playData[p.curSeat].RemoveOutTile()
	p.addHistory(seat, p.curSeat, OperateChow, p.curTile, leftTile)
	p.FreshCallData(seat)
	return nil
}

func (p *Play) Pon(seat int32) error {
	playData := p.playData[seat]
	if !playData.canPon(p.curTile) {
		return ErrIllegalClaim
	}
	playData.Pon(p.curTile, p.curSeat)
	p.playData[p.curSeat].RemoveOutTile()
	p.addHistory(seat, p.curSeat, OperatePon, p.curTile, 0)
	p.FreshCallData(seat)
	return nil
}

// ZhiKon 直杠：杠完从墙尾补一张并清花
func (p *Play) ZhiKon(seat int32) error {
	playData := p.playData[seat]
	if !playData.canKon(p.curTile, KonTypeZhi) {
		return ErrIllegalClaim
	}
	playData.kon(p.curTile, p.curSeat, KonTypeZhi)
	p.playData[p.curSeat].RemoveOutTile()
	p.addHistory(seat, p.curSeat, OperateKon, p.curTile, 0)
	p.drawKonReplacement(seat)
	p.FreshCallData(seat)
	return nil
}

// SelfKon 当前座位摸牌后的暗杠/补杠，杠完从墙尾补一张
func (p *Play) SelfKon(tile Tile, konType KonType) error {
	playData := p.playData[p.curSeat]
	if !playData.canKon(tile, konType) {
		return ErrInvalidAction
	}
	playData.kon(tile, p.curSeat, konType)
	p.curTile = tile
	p.addHistory(p.curSeat, p.curSeat, OperateKon, tile, 0)
	p.drawKonReplacement(p.curSeat)
	p.FreshCallData(p.curSeat)
	return nil
}

// DeclareBuKon 补杠先公示，抢杠窗口关闭后才成杠
func (p *Play) DeclareBuKon(tile Tile) error {
	if !p.playData[p.curSeat].canKon(tile, KonTypeBu) {
		return ErrInvalidAction
	}
	p.curTile = tile
	return nil
}

func (p *Play) drawKonReplacement(seat int32) {
	tile := p.dealer.DrawRear()
	if tile == TileNull {
		return
	}
	p.playData[seat].PutHandTile(tile)
	p.addHistory(seat, seat, OperateDraw, tile, 0)
	p.sweepFlowers(seat)
}

// Zimo 自摸：其余未出局座位各付一份
func (p *Play) Zimo() (multiples []int64) {
	multiples = make([]int64, p.rule.PlayerCount)
	huResult := p.huResult[p.curSeat]
	for i := int32(0); i < p.rule.PlayerCount; i++ {
		if p.game.GetPlayer(i).IsOut() || i == p.curSeat {
			continue
		}
		multiples[i] = -huResult.Multi
		multiples[p.curSeat] += huResult.Multi
	}
	p.addHistory(p.curSeat, p.curSeat, OperateHu, p.curTile, 0)
	return
}

// PaoHu 点炮或被抢杠：放铳者付给每个胡家。
// 成胡的那张不挪动实体归属，结果里由curTile标识。
func (p *Play) PaoHu(huSeats []int32) []int64 {
	multiples := make([]int64, p.rule.PlayerCount)
	for _, seat := range huSeats {
		huResult := p.huResult[seat]
		multiples[p.curSeat] -= huResult.Multi
		if !p.game.GetPlayer(seat).IsOut() {
			multiples[seat] = +huResult.Multi
			p.addHistory(seat, p.curSeat, OperateHu, p.curTile, 0)
		}
	}
	return multiples
}

func (p *Play) IsAfterPon() bool {
	return len(p.history) > 0 && p.history[len(p.history)-1].Operate == OperatePon
}

func (p *Play) IsAfterChow() bool {
	return len(p.history) > 0 && p.history[len(p.history)-1].Operate == OperateChow
}

func (p *Play) IsAfterKon() bool {
	return len(p.history) > 0 && p.history[len(p.history)-1].Operate == OperateKon
}

// DoSwitchSeat 轮转到下一个未出局座位；SeatNull表示按方向取下家
func (p *Play) DoSwitchSeat(seat int32) {
	if seat == SeatNull {
		seat = p.rule.NextSeat(p.curSeat)
	}

	startSeat := seat
	for {
		if !p.game.GetPlayer(seat).IsOut() {
			p.curSeat = seat
			return
		}
		seat = p.rule.NextSeat(seat)
		if seat == startSeat {
			break
		}
	}
}

func (p *Play) AddHuOperate(opt *Operates, seat int32, result *HuResult, mustHu bool) {
	p.huResult[seat] = result
	opt.AddOperate(OperateHu)
	opt.IsMustHu = mustHu
	opt.HuMulti = result.Multi
}

func (p *Play) FreshCallData(seat int32) {
	playData := p.playData[seat]
	data := NewHuData(playData, false)
	playData.SetCallMap(data.CheckCall())
}

// CheckConservation 全桌实体牌守恒：墙+手牌+面子+花+弃牌河恒为144
func (p *Play) CheckConservation() error {
	total := int(p.dealer.GetRestCount())
	for _, pd := range p.playData {
		total += pd.TileTotal()
	}
	if total != TileCountTotal {
		err := Corruptionf("tile conservation broken: %d of %d accounted", total, TileCountTotal)
		logrus.Error(err)
		return err
	}
	return nil
}

func (p *Play) GetDealer() *Dealer {
	return p.dealer
}

func (p *Play) GetPlayData(seat int32) *PlayData {
	return p.playData[seat]
}

func (p *Play) GetHuResult(seat int32) *HuResult {
	return p.huResult[seat]
}

func (p *Play) GetCurSeat() int32 {
	return p.curSeat
}

func (p *Play) GetCurTile() Tile {
	return p.curTile
}

func (p *Play) GetBanker() int32 {
	return p.banker
}

func (p *Play) GetRule() *Rule {
	return p.rule
}

func (p *Play) GetHistory() []Action {
	return p.history
}

func (p *Play) GetCurScores() []int64 {
	scores := make([]int64, p.rule.PlayerCount)
	for i := range p.rule.PlayerCount {
		if player := p.game.GetPlayer(i); player != nil {
			scores[i] = player.GetCurScore()
		}
	}
	return scores
}

func (p *Play) addHistory(seat, from int32, operate int32, tile Tile, extra Tile) {
	p.history = append(p.history, Action{
		Seat:    seat,
		From:    from,
		Operate: operate,
		Tile:    tile,
		Extra:   extra,
	})
}
