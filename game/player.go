package game

// Player 桌上的一个参与者。引擎只认座位号，身份ID在这一层映射。
type Player struct {
	id     string
	Seat   int32
	score  int64
	online bool
}

func NewPlayer(id string, seat int32, score int64) *Player {
	return &Player{
		id:     id,
		Seat:   seat,
		score:  score,
		online: true,
	}
}

func (p *Player) GetID() string {
	return p.id
}

// AddScore 增加玩家积分
func (p *Player) AddScore(delta int64) {
	p.score += delta
}

func (p *Player) GetScore() int64 {
	return p.score
}

func (p *Player) IsOnline() bool {
	return p.online
}

func (p *Player) SetOnline(online bool) {
	p.online = online
}
