package mahjong

type CheckerSelf interface {
	Check(opt *Operates)
}

// 自摸胡检查器
type checkerHu struct {
	play *Play
}

func NewCheckerHu(play *Play) CheckerSelf {
	return &checkerHu{play: play}
}

func (c *checkerHu) Check(opt *Operates) {
	if c.play.IsAfterPon() || c.play.IsAfterChow() {
		return
	}

	data := NewHuData(c.play.playData[c.play.curSeat], true)
	result, hu := data.CheckHu()
	if !hu {
		return
	}
	c.play.AddHuOperate(opt, c.play.curSeat, result, false)
}

// 暗杠/补杠检查器
type checkerKon struct {
	play *Play
}

func NewCheckerKon(play *Play) CheckerSelf {
	return &checkerKon{play: play}
}

func (c *checkerKon) Check(opt *Operates) {
	if opt.IsMustHu {
		return
	}
	if c.play.dealer.GetRestCount() <= 0 {
		return
	}
	if tiles := c.play.playData[c.play.curSeat].canSelfKon(); len(tiles) > 0 {
		opt.AddOperate(OperateKon)
	}
}
