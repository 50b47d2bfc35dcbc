package sim

// Animations reports when the presentation has finished showing a terminal
// animation. The simulation marks objects as done and removes them only
// once the matching animation has finished.
type Animations interface {
	TileCleared(t *Tile, tick uint64) bool
	ExplosionFinished(e *Explosion, tick uint64) bool
	EnemyRemoved(e *Enemy, tick uint64) bool
	PlayerFinished(p *Player, tick uint64) bool
}

// FrameAnimations treats every animation as a fixed number of ticks.
type FrameAnimations AnimationTicks

// TileCleared reports whether the tile's destruction animation has run.
func (a FrameAnimations) TileCleared(t *Tile, tick uint64) bool {
	return t.Hit && elapsed(t.HitTick, tick) >= a.TileClear
}

// ExplosionFinished reports whether the explosion animation has run.
func (a FrameAnimations) ExplosionFinished(e *Explosion, tick uint64) bool {
	return elapsed(e.StartTick, tick) >= a.Explosion
}

// EnemyRemoved reports whether the enemy's death animation has run.
func (a FrameAnimations) EnemyRemoved(e *Enemy, tick uint64) bool {
	return !e.Alive && elapsed(e.DyingTick, tick) >= a.EnemyDeath
}

// PlayerFinished reports whether the player's dying or winning animation has run.
func (a FrameAnimations) PlayerFinished(p *Player, tick uint64) bool {
	switch p.State {
	case StateDying:
		return elapsed(p.StateTick, tick) >= a.PlayerDying
	case StateWinning:
		return elapsed(p.StateTick, tick) >= a.PlayerWinning
	default:
		return false
	}
}

func elapsed(start, now uint64) int {
	if now < start {
		return 0
	}
	return int(now - start)
}
