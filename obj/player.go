package obj

import (
	"github.com/pmalloy/plumber/common"
)

// InvincibilityWindow is how long a star keeps the player invincible, in
// simulated seconds.
const InvincibilityWindow = 10.0

// Player is the singleton controllable entity. Health is a float clamped to
// [0, max]; score never goes negative and only resets with the level. The
// player survives level rebuilds; only its physics body is recreated.
type Player struct {
	Entity

	maxHealth float64
	health    float64
	score     int

	jumping bool
	ducking bool

	invincible   bool
	invincibleAt float64
}

func NewPlayer(maxHealth float64) *Player {
	return &Player{
		Entity:    newEntity("player", CategoryPlayer, common.TileSize, common.TileSize),
		maxHealth: maxHealth,
		health:    maxHealth,
	}
}

func (p *Player) Health() float64 { return p.health }

func (p *Player) MaxHealth() float64 { return p.maxHealth }

func (p *Player) ChangeHealth(delta float64) {
	p.health = common.Clamp(p.health+delta, 0, p.maxHealth)
}

func (p *Player) RestoreHealth() {
	p.health = p.maxHealth
}

func (p *Player) Score() int { return p.score }

func (p *Player) AddScore(n int) {
	if n < 0 {
		return
	}
	p.score += n
}

func (p *Player) ResetScore() {
	p.score = 0
}

func (p *Player) Jumping() bool { return p.jumping }

func (p *Player) SetJumping(v bool) { p.jumping = v }

func (p *Player) Ducking() bool { return p.ducking }

func (p *Player) SetDucking(v bool) { p.ducking = v }

func (p *Player) Invincible() bool { return p.invincible }

// SetInvincible opens the invincibility window at the given simulation time.
// Picking up a star while already invincible restarts the window instead of
// stacking.
func (p *Player) SetInvincible(now float64) {
	p.invincible = true
	p.invincibleAt = now
}

// Tick expires the invincibility window. Polled once per tick by the game
// coordinator.
func (p *Player) Tick(now float64) {
	if p.invincible && now-p.invincibleAt >= InvincibilityWindow {
		p.invincible = false
	}
}
