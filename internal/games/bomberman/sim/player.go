package sim

import (
	"time"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// Player is the single player-controlled entity. A World owns exactly one
// and re-initialises it at every level start.
type Player struct {
	X, Y int // top-left pixel of Box
	Box  core.Rect

	HP       int
	Speed    int
	MaxBombs int
	Bombs    int // bombs available right now
	Radius   int

	Dir    Move
	Moving bool
	State  LifeState

	Alive         bool
	Damaged       bool // inside the invincibility window
	LevelFinished bool

	// StateTick is the tick on which a terminal state was entered.
	StateTick uint64

	tileSize int
	baseline Stats
	max      Stats
	hits     cooldown
}

// NewPlayer creates a player with the given baseline and caps.
func NewPlayer(baseline, max Stats, tileSize int, hitCooldown time.Duration) *Player {
	p := &Player{
		tileSize: tileSize,
		baseline: baseline,
		max:      max,
		hits:     cooldown{window: hitCooldown},
	}
	p.reset()
	return p
}

// reset restores the level-start state: spawn cell, baseline stats, facing down.
func (p *Player) reset() {
	p.X = p.tileSize
	p.Y = p.tileSize
	p.Box = core.NewRect(p.X, p.Y, p.tileSize, p.tileSize)
	p.HP = p.baseline.HP
	p.Speed = p.baseline.Speed
	p.MaxBombs = p.baseline.Bombs
	p.Bombs = p.baseline.Bombs
	p.Radius = p.baseline.Radius
	p.Dir = MoveDown
	p.Moving = false
	p.State = StateIdle
	p.Alive = true
	p.Damaged = false
	p.LevelFinished = false
	p.StateTick = 0
	p.hits.clear()
}

// setImmortal opens an invincibility window starting at now.
func (p *Player) setImmortal(now time.Time) {
	p.hits.reset(now)
	p.Damaged = true
}

// Cell returns the cell holding the center of the player's box.
func (p *Player) Cell() Cell {
	return CenterCell(p.Box, p.tileSize)
}

// SetIntent records the movement intent for the next update. Ignored once
// the player is dying or has reached the exit.
func (p *Player) SetIntent(dir Move, moving bool) {
	if !p.Alive || p.State.Terminal() {
		return
	}
	if !moving {
		p.Moving = false
		if p.State != StateHit {
			p.State = StateIdle
		}
		return
	}
	p.Moving = true
	p.Dir = dir
	if p.State != StateHit {
		p.State = StateWalking
	}
}

// Update runs one tick of player logic against the floor: exit check,
// cooldown-gated damage, pickup, then movement with snap-to-grid.
func (p *Player) Update(f *Floor, now time.Time, tick uint64) []Event {
	if !p.Alive || p.LevelFinished {
		return nil
	}

	var events []Event
	centerX, centerY := snapToCell(p.X, p.Y, p.Box.W, p.Box.H, p.tileSize)

	if f.CollidesWithExit(p.Box) {
		p.finishLevel(tick)
		return append(events, ExitReached{})
	}

	if p.hits.ready(now) {
		p.Damaged = false
		if p.State == StateHit {
			p.State = StateIdle
			if p.Moving {
				p.State = StateWalking
			}
		}
		if f.CollidesWithEntities(p.Box, nil) || f.CollidesWithExplosions(p.Box) {
			p.damage(tick)
			p.hits.reset(now)
			events = append(events, PlayerDamaged{HP: p.HP})
			if !p.Alive {
				return events
			}
		}
	}

	if pu := f.CollidesWithPickup(p.Box); pu != nil {
		p.applyPowerUp(pu.Type)
		events = append(events, PickupCollected{Type: pu.Type, Cell: pu.Cell, Points: pu.Type.Points()})
	}

	if p.Moving {
		dx, dy := p.Dir.Delta()
		next := p.Box.Translate(dx*p.Speed, dy*p.Speed)
		if f.CollidesWithBombs(next, true) || f.CollidesWithBlocks(next) {
			p.X, p.Y = centerX, centerY
		} else {
			p.X += dx * p.Speed
			p.Y += dy * p.Speed
		}
		p.Box = p.Box.MoveTo(p.X, p.Y)
	}
	return events
}

// damage removes one hit point and a step of speed above the baseline.
func (p *Player) damage(tick uint64) {
	if p.LevelFinished || !p.Alive {
		return
	}
	p.HP--
	if p.Speed > p.baseline.Speed {
		p.Speed--
	}
	p.Damaged = true
	if p.HP <= 0 {
		p.die(tick)
		return
	}
	p.State = StateHit
}

func (p *Player) die(tick uint64) {
	if !p.Alive {
		return
	}
	p.Moving = false
	p.Alive = false
	p.State = StateDying
	p.StateTick = tick
}

func (p *Player) finishLevel(tick uint64) {
	if !p.Alive || p.LevelFinished {
		return
	}
	p.Moving = false
	p.LevelFinished = true
	p.State = StateWinning
	p.StateTick = tick
}

// applyPowerUp raises the stat matching t, capped at the configured maximum.
func (p *Player) applyPowerUp(t PowerUpType) {
	switch t {
	case PowerUpBombUp:
		if p.MaxBombs < p.max.Bombs {
			p.MaxBombs++
			p.Bombs++
		}
	case PowerUpAccelerator:
		if p.Speed < p.max.Speed {
			p.Speed++
		}
	case PowerUpFire:
		if p.Radius < p.max.Radius {
			p.Radius++
		}
	case PowerUpBomberman:
		if p.HP < p.max.HP {
			p.HP++
		}
	}
}

// refundBomb returns one bomb to the player after its explosion.
func (p *Player) refundBomb() {
	if p.Bombs < p.MaxBombs {
		p.Bombs++
	}
}
