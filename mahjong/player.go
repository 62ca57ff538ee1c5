package mahjong

// Player 引擎内的座位玩家：身份ID对引擎不透明，只用于回传
type Player struct {
	game        *Game
	id          string
	seat        int32
	isOut       bool
	curScore    int64
	scoreChange int64
}

func NewPlayer(game *Game, id string, seat int32, score int64) *Player {
	return &Player{
		game:     game,
		id:       id,
		seat:     seat,
		curScore: score,
	}
}

func (p *Player) ID() string {
	return p.id
}

func (p *Player) GetSeat() int32 {
	return p.seat
}

func (p *Player) GetCurScore() int64 {
	return p.curScore + p.scoreChange
}

func (p *Player) AddScoreChange(delta int64) {
	p.scoreChange += delta
}

func (p *Player) GetScoreChange() int64 {
	return p.scoreChange
}

func (p *Player) IsOut() bool {
	return p.isOut
}

func (p *Player) SetOut(out bool) {
	p.isOut = out
}
