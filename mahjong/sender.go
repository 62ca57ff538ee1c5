package mahjong

import (
	"github.com/kevin-chtw/tw_mahjong/utils"
)

// Sender 把引擎事件打包成structpb负载经宿主下发。
// 摸牌事件对其他座位隐去牌面。
type Sender struct {
	game *Game
	play *Play
}

func NewSender(game *Game) *Sender {
	return &Sender{
		game: game,
		play: game.play,
	}
}

func (s *Sender) send(event string, fields map[string]any, seat int32) {
	if fields == nil {
		fields = make(map[string]any)
	}
	fields["event"] = event
	st := utils.ToStruct(fields)
	if st == nil {
		return
	}
	s.game.table.Send2Player(utils.ToAny(st), seat)
}

func tilesToValues(tiles []Tile) []any {
	values := make([]any, len(tiles))
	for i, t := range tiles {
		values[i] = t.ToInt32()
	}
	return values
}

func (s *Sender) SendGameStartAck() {
	s.send("game_start", map[string]any{
		"banker":     s.play.banker,
		"tile_count": s.play.dealer.GetRestCount(),
		"scores":     scoresToValues(s.play.GetCurScores()),
	}, SeatAll)
}

func scoresToValues(scores []int64) []any {
	values := make([]any, len(scores))
	for i, v := range scores {
		values[i] = v
	}
	return values
}

// SendOpenDoorAck 起手牌只发给本座位
func (s *Sender) SendOpenDoorAck() {
	for i := range s.game.GetPlayerCount() {
		playData := s.play.GetPlayData(i)
		s.send("open_door", map[string]any{
			"seat":    i,
			"tiles":   tilesToValues(playData.GetHandTiles()),
			"flowers": tilesToValues(playData.GetFlowers()),
		}, i)
	}
}

func (s *Sender) SendRequestAck(seat int32, operates *Operates) {
	s.send("request", map[string]any{
		"seat":         seat,
		"request_type": operates.Value,
		"must_hu":      operates.IsMustHu,
	}, seat)
}

func (s *Sender) SendDiscardAck() {
	s.send("discard", map[string]any{
		"seat": s.play.GetCurSeat(),
		"tile": s.play.GetCurTile().ToInt32(),
	}, SeatAll)
}

func (s *Sender) SendDrawAck(tile Tile) {
	seat := s.play.GetCurSeat()
	s.send("draw", map[string]any{
		"seat": seat,
		"tile": tile.ToInt32(),
	}, seat)
	for i := range s.game.GetPlayerCount() {
		if i != seat {
			s.send("draw", map[string]any{
				"seat": seat,
				"tile": TileNull.ToInt32(),
			}, i)
		}
	}
}

func (s *Sender) SendChowAck(seat int32, tile, leftTile Tile) {
	s.send("chow", map[string]any{
		"seat":      seat,
		"from":      s.play.GetCurSeat(),
		"tile":      tile.ToInt32(),
		"left_tile": leftTile.ToInt32(),
	}, SeatAll)
}

func (s *Sender) SendPonAck(seat int32, tile Tile) {
	s.send("pon", map[string]any{
		"seat": seat,
		"from": s.play.GetCurSeat(),
		"tile": tile.ToInt32(),
	}, SeatAll)
}

func (s *Sender) SendKonAck(seat int32, tile Tile, konType KonType) {
	fields := map[string]any{
		"seat":     seat,
		"from":     s.play.GetCurSeat(),
		"kon_type": int(konType),
		"tile":     tile.ToInt32(),
	}
	if konType == KonTypeAn {
		// 暗杠牌面只让本座位看到
		s.send("kon", fields, seat)
		fields["tile"] = TileNull.ToInt32()
		for i := range s.game.GetPlayerCount() {
			if i != seat {
				s.send("kon", fields, i)
			}
		}
		return
	}
	s.send("kon", fields, SeatAll)
}

func (s *Sender) SendHuAck(huSeats []int32, paoSeat int32) {
	seats := make([]any, len(huSeats))
	multis := make([]any, len(huSeats))
	for i, seat := range huSeats {
		seats[i] = seat
		multis[i] = s.play.GetHuResult(seat).Multi
	}
	s.send("hu", map[string]any{
		"pao_seat": paoSeat,
		"tile":     s.play.GetCurTile().ToInt32(),
		"seats":    seats,
		"multis":   multis,
	}, SeatAll)
}

func (s *Sender) SendResult(status EGameOverStatus) {
	results := make([]any, s.game.GetPlayerCount())
	for i := range s.game.GetPlayerCount() {
		player := s.game.GetPlayer(i)
		results[i] = map[string]any{
			"seat":      i,
			"cur_score": player.GetCurScore(),
			"win_score": player.GetScoreChange(),
			"tiles":     tilesToValues(s.play.GetPlayData(i).GetHandTiles()),
		}
	}
	s.send("result", map[string]any{
		"status":  int(status),
		"results": results,
	}, SeatAll)
}
