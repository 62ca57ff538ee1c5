package mahjong

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultRuleset 内置番表：平胡1倍、七对2倍、自摸加1倍，
// 每张花按Rule.FlowerMulti加成。可被 rules/fan.yaml 覆盖。
type DefaultRuleset struct {
	pingHu    int64
	qiDui     int64
	zimoBonus int64
}

func NewDefaultRuleset() *DefaultRuleset {
	r := &DefaultRuleset{
		pingHu:    1,
		qiDui:     2,
		zimoBonus: 1,
	}

	vp := viper.New()
	vp.SetConfigType("yaml")
	vp.SetConfigFile(filepath.Join(".", "rules", "fan.yaml"))
	if err := vp.ReadInConfig(); err != nil {
		return r
	}
	if vp.IsSet("ping_hu") {
		r.pingHu = vp.GetInt64("ping_hu")
	}
	if vp.IsSet("qi_dui") {
		r.qiDui = vp.GetInt64("qi_dui")
	}
	if vp.IsSet("zimo_bonus") {
		r.zimoBonus = vp.GetInt64("zimo_bonus")
	}
	return r
}

func (r *DefaultRuleset) HuMultiple(data *HuData, result *HuResult) int64 {
	multi := r.pingHu
	if result.Style == HandStyleQiDui {
		multi = r.qiDui
	}
	if result.ZiMo {
		multi += r.zimoBonus
	}
	multi += int64(len(data.GetFlowers())) * data.play.rule.FlowerMulti
	return multi
}
