package mahjong

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Rule 一局的可配置玩法参数。
// 点数表不在引擎内，见 IScoreRuleset；这里只保留裁决所需的开关。
type Rule struct {
	PlayerCount    int32
	Seed           int64         // 洗牌种子，0表示取当前时间
	TurnStep       int32         // 行牌方向步长，默认 (seat+1)%count
	HuTiePolicy    EHuTiePolicy  // 多家同时可胡的裁决
	RobKon         bool          // 是否允许抢杠胡
	EarlyHuResolve bool          // 收齐所有可胡家应答后提前关窗
	SevenPairs     bool          // 启用七对牌型
	ScoreType      ScoreType     // 结算方式
	DiscardTimeout time.Duration // 出牌应答时限
	ClaimTimeout   time.Duration // 鸣牌窗口时限
	RobKonTimeout  time.Duration // 抢杠窗口时限（较短）
	FlowerMulti    int64         // 每张花的番数加成
	Preset         string        // 配牌文件名，空表示随机发牌
}

func NewRule() *Rule {
	return &Rule{
		PlayerCount:    4,
		TurnStep:       1,
		HuTiePolicy:    HuTieNearest,
		RobKon:         true,
		EarlyHuResolve: true,
		SevenPairs:     true,
		ScoreType:      ScoreTypeNatural,
		DiscardTimeout: 15 * time.Second,
		ClaimTimeout:   10 * time.Second,
		RobKonTimeout:  5 * time.Second,
		FlowerMulti:    1,
	}
}

// LoadRule 从房间属性串（yaml片段）覆盖默认值
func (r *Rule) LoadRule(property string) error {
	if property == "" {
		return nil
	}
	vp := viper.New()
	vp.SetConfigType("yaml")
	if err := vp.ReadConfig(strings.NewReader(property)); err != nil {
		return err
	}

	if vp.IsSet("seed") {
		r.Seed = vp.GetInt64("seed")
	}
	if vp.IsSet("turn_step") {
		r.TurnStep = vp.GetInt32("turn_step")
	}
	if vp.IsSet("hu_tie_all") {
		if vp.GetBool("hu_tie_all") {
			r.HuTiePolicy = HuTieAll
		} else {
			r.HuTiePolicy = HuTieNearest
		}
	}
	if vp.IsSet("rob_kon") {
		r.RobKon = vp.GetBool("rob_kon")
	}
	if vp.IsSet("early_hu_resolve") {
		r.EarlyHuResolve = vp.GetBool("early_hu_resolve")
	}
	if vp.IsSet("seven_pairs") {
		r.SevenPairs = vp.GetBool("seven_pairs")
	}
	if vp.IsSet("score_type") {
		r.ScoreType = ScoreType(vp.GetInt("score_type"))
	}
	if vp.IsSet("discard_timeout") {
		r.DiscardTimeout = vp.GetDuration("discard_timeout")
	}
	if vp.IsSet("claim_timeout") {
		r.ClaimTimeout = vp.GetDuration("claim_timeout")
	}
	if vp.IsSet("rob_kon_timeout") {
		r.RobKonTimeout = vp.GetDuration("rob_kon_timeout")
	}
	if vp.IsSet("flower_multi") {
		r.FlowerMulti = vp.GetInt64("flower_multi")
	}
	if vp.IsSet("preset") {
		r.Preset = vp.GetString("preset")
	}
	return nil
}

// NextSeat 按本局方向取下一家
func (r *Rule) NextSeat(seat int32) int32 {
	return GetNextSeat(seat, r.TurnStep, r.PlayerCount)
}
