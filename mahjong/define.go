package mahjong

const (
	SeatNull int32 = -1
	SeatAll  int32 = -2
)

const (
	TileCountTotal      = 144
	TileCountInitBanker = 14
	TileCountInitNormal = 13
)

type EColor int

const (
	ColorUndefined EColor = -1
	ColorCharacter EColor = iota - 1 // 万
	ColorBamboo                      // 条
	ColorDot                         // 筒
	ColorWind                        // 风牌
	ColorDragon                      // 箭牌
	ColorFlower                      // 花牌
	ColorSeason                      // 季牌
	ColorEnd
	ColorBegin = ColorCharacter
)

var PointCountByColor = [ColorEnd]int{9, 9, 9, 4, 3, 4, 4}
var SameTileCountByColor = [ColorEnd]int{4, 4, 4, 4, 4, 1, 1}

type ScoreReason int //算分原因

const (
	ScoreReasonHu     ScoreReason = iota // 胡
	ScoreReasonFlower                    // 花分
)

type ScoreType int //算分方式

const (
	ScoreTypeNatural  ScoreType = iota // 自然分
	ScoreTypeMinScore                  // 积分最小化
	ScoreTypePositive                  // 超出玩家带入的输分由系统支出
	ScoreTypeJustWin                   // 只赢不输
)

type EHandStyle int

const (
	HandStyleNone EHandStyle = iota
	HandStylePingHu
	HandStyleQiDui
)

type EGameOverStatus int

const (
	GameOverNormal EGameOverStatus = iota // 有人胡牌
	GameOverLiuju                         // 荒庄流局
	GameOverException                     // 状态异常中止
)

type KonType int

const (
	KonTypeNone KonType = -1 + iota
	KonTypeZhi
	KonTypeAn
	KonTypeBu
)

type EGroupType int

const (
	GroupTypeNone EGroupType = iota
	GroupTypeChow
	GroupTypePon
	GroupTypeZhiKon
	GroupTypeAnKon
	GroupTypeBuKon
)

// EHuTiePolicy 同巡多家胡牌的裁决方式
type EHuTiePolicy int

const (
	HuTieNearest EHuTiePolicy = iota // 离点炮者最近的一家独胡
	HuTieAll                         // 一炮多响
)

func GetNextSeat(seat, step, seatCount int32) int32 {
	return (seat + step) % seatCount
}

type Action struct {
	Seat    int32
	From    int32
	Operate int32
	Tile    Tile
	Extra   Tile
}
