package mahjong

// CheckerWait 弃牌（或被抢的杠牌）对其余座位的响应资格检查
type CheckerWait interface {
	Check(seat int32, opt *Operates)
}

type CheckerPao struct{ play *Play } // 点炮胡检查器
func NewCheckerPao(play *Play) CheckerWait {
	return &CheckerPao{play: play}
}

func (c *CheckerPao) Check(seat int32, opt *Operates) {
	data := NewHuData(c.play.playData[seat], false)
	result, hu := data.CheckHu()
	if !hu {
		return
	}
	c.play.AddHuOperate(opt, seat, result, false)
}

type CheckerChow struct{ play *Play } // 吃牌检查器
func NewCheckerChow(play *Play) CheckerWait {
	return &CheckerChow{play: play}
}

func (c *CheckerChow) Check(seat int32, opt *Operates) {
	if opt.IsMustHu {
		return
	}
	// 只有下家可以吃
	if c.play.rule.NextSeat(c.play.curSeat) != seat {
		return
	}

	if c.play.playData[seat].canChow(c.play.curTile) {
		opt.AddOperate(OperateChow)
	}
}

type CheckerPon struct{ play *Play } // 碰牌检查器
func NewCheckerPon(play *Play) CheckerWait {
	return &CheckerPon{play: play}
}

func (c *CheckerPon) Check(seat int32, opt *Operates) {
	if opt.IsMustHu {
		return
	}
	if c.play.playData[seat].canPon(c.play.curTile) {
		opt.AddOperate(OperatePon)
	}
}

type CheckerZhiKon struct{ play *Play } // 直杠检查器
func NewCheckerZhiKon(play *Play) CheckerWait {
	return &CheckerZhiKon{play: play}
}

func (c *CheckerZhiKon) Check(seat int32, opt *Operates) {
	if opt.IsMustHu {
		return
	}
	// 墙上无牌可补时不再开杠
	if c.play.dealer.GetRestCount() <= 0 {
		return
	}

	if c.play.playData[seat].canKon(c.play.curTile, KonTypeZhi) {
		opt.AddOperate(OperateKon)
	}
}
