package mahjong_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_mahjong/mahjong"
)

type Case struct {
	cards string
	want  mahjong.HuCoreType
}

func Test_Hu(t *testing.T) {
	hc := mahjong.NewHuCore(14)
	if hc == nil {
		t.Fatal("Failed to create HuCore")
	}
	hc.RegisterChecker(&mahjong.QiDuiChecker{})

	testCases := []Case{
		{
			// 刻子+顺子混合，9万作将
			cards: "1万,1万,1万,2万,3万,4万,5万,6万,7万,8万,8万,8万,9万,9万",
			want:  mahjong.HuPing,
		},
		{
			// 副露两组后的8张
			cards: "1条,1条,2条,3条,4条,7筒,7筒,7筒",
			want:  mahjong.HuPing,
		},
		{
			// 字牌只能成刻
			cards: "东,东,东,中,中,中,发,发,发,白,白,9筒,9筒,9筒",
			want:  mahjong.HuPing,
		},
		{
			// 东南西不是顺子
			cards: "东,南,西,1万,2万,3万,4万,5万,6万,7万,8万,9万,中,中",
			want:  mahjong.HuNon,
		},
		{
			// 8万9万不能跨色续上1条
			cards: "8万,9万,1条,2条,3条,4条,5条,6条,7条,8条,9条,发,发,发",
			want:  mahjong.HuNon,
		},
		{
			// 七对
			cards: "1万,1万,3万,3万,5条,5条,7条,7条,9筒,9筒,东,东,白,白",
			want:  mahjong.HuQiDui,
		},
		{
			// 六对带单张
			cards: "1万,1万,3万,3万,5条,5条,7条,7条,9筒,9筒,东,东,白,中",
			want:  mahjong.HuNon,
		},
		{
			// 缺将
			cards: "1万,2万,3万,4万,5万,6万,7万,8万,9万,1条,2条,3条,4条,5条",
			want:  mahjong.HuNon,
		},
	}

	for i, tc := range testCases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			cards := mahjong.NamesToTiles(tc.cards)
			slices.Sort(cards)
			t.Log(mahjong.TilesName(cards))
			got := hc.CheckBasicHu(cards)
			if got != tc.want {
				t.Errorf("CheckBasicHu(%v) = %v, want %v", cards, got, tc.want)
			}
		})
	}
}

func Test_HuRejectsFlower(t *testing.T) {
	hc := mahjong.NewHuCore(14)
	cards := mahjong.NamesToTiles("1万,1万,1万,2万,3万,4万,5万,6万,7万,8万,8万,8万,9万,梅")
	if got := hc.CheckBasicHu(cards); got != mahjong.HuNon {
		t.Errorf("hand with flower = %v, want HuNon", got)
	}
}

func Test_HuFourOfAKindInHand(t *testing.T) {
	hc := mahjong.NewHuCore(14)
	// 4张5条拆成刻子加顺子头
	cards := mahjong.NamesToTiles("5条,5条,5条,5条,6条,7条,1万,2万,3万,7筒,8筒,9筒,东,东")
	slices.Sort(cards)
	if got := hc.CheckBasicHu(cards); got != mahjong.HuPing {
		t.Errorf("CheckBasicHu = %v, want HuPing", got)
	}
}
