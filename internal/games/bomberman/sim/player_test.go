package sim

import (
	"testing"
	"time"
)

func newTestPlayer(cfg Config) *Player {
	return NewPlayer(cfg.Baseline, cfg.Max, cfg.TileSize, cfg.PlayerHitCooldown)
}

func TestPlayerSpawn(t *testing.T) {
	cfg := DefaultConfig()
	p := newTestPlayer(cfg)

	if p.Cell() != (Cell{X: 1, Y: 1}) {
		t.Errorf("spawn cell = %s, expected (1,1)", p.Cell())
	}
	if p.HP != 5 || p.Speed != 3 || p.Bombs != 1 || p.MaxBombs != 1 || p.Radius != 1 {
		t.Errorf("baseline stats = hp %d speed %d bombs %d/%d radius %d",
			p.HP, p.Speed, p.Bombs, p.MaxBombs, p.Radius)
	}
	if p.Dir != MoveDown || p.State != StateIdle || !p.Alive {
		t.Errorf("spawn state = dir %s state %s alive %v", p.Dir, p.State, p.Alive)
	}
}

func TestPlayerDamageCooldown(t *testing.T) {
	cfg := DefaultConfig()
	f := openFloor(cfg)
	p := newTestPlayer(cfg)
	p.Speed = 5
	f.explosions = append(f.explosions, CastExplosion(f.grid, Cell{X: 1, Y: 1}, 1))

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	events := p.Update(f, now, 1)
	ev, ok := hasEvent[PlayerDamaged](events)
	if !ok || ev.HP != 4 {
		t.Fatalf("events = %v, expected PlayerDamaged{HP: 4}", events)
	}
	if p.Speed != 4 {
		t.Errorf("speed = %d, expected 4 after a hit above baseline", p.Speed)
	}
	if p.State != StateHit || !p.Damaged {
		t.Errorf("state = %s damaged = %v", p.State, p.Damaged)
	}

	p.Update(f, now.Add(time.Second), 2)
	if p.HP != 4 {
		t.Errorf("HP = %d, second blast inside the window must not hurt", p.HP)
	}

	p.Update(f, now.Add(cfg.PlayerHitCooldown), 3)
	if p.HP != 3 {
		t.Errorf("HP = %d, expected 3 once the window elapsed", p.HP)
	}
}

func TestPlayerSpeedFloorOnDamage(t *testing.T) {
	cfg := DefaultConfig()
	p := newTestPlayer(cfg)
	p.damage(1)
	if p.Speed != cfg.Baseline.Speed {
		t.Errorf("speed = %d, must not drop below baseline %d", p.Speed, cfg.Baseline.Speed)
	}
}

func TestPlayerDies(t *testing.T) {
	cfg := DefaultConfig()
	p := newTestPlayer(cfg)
	p.HP = 1
	p.damage(7)

	if p.Alive || p.State != StateDying || p.StateTick != 7 {
		t.Errorf("player = alive %v state %s tick %d", p.Alive, p.State, p.StateTick)
	}
	p.SetIntent(MoveRight, true)
	if p.Moving {
		t.Error("dying player must ignore movement intent")
	}
}

func TestPlayerImmortalAtLevelStart(t *testing.T) {
	cfg := DefaultConfig()
	f := openFloor(cfg)
	p := newTestPlayer(cfg)
	f.explosions = append(f.explosions, CastExplosion(f.grid, Cell{X: 1, Y: 1}, 1))

	now := time.Now()
	p.setImmortal(now)
	p.Update(f, now.Add(time.Second), 1)
	if p.HP != cfg.Baseline.HP {
		t.Errorf("HP = %d, player should be immortal after level start", p.HP)
	}
}

func TestPowerUpCaps(t *testing.T) {
	cfg := DefaultConfig()
	p := newTestPlayer(cfg)

	for i := 0; i < 20; i++ {
		for _, pt := range PowerUpTypes() {
			p.applyPowerUp(pt)
		}
	}
	if p.HP != cfg.Max.HP || p.Speed != cfg.Max.Speed || p.MaxBombs != cfg.Max.Bombs || p.Radius != cfg.Max.Radius {
		t.Errorf("stats = hp %d speed %d bombs %d radius %d, expected caps %+v",
			p.HP, p.Speed, p.MaxBombs, p.Radius, cfg.Max)
	}
	if p.Bombs != p.MaxBombs {
		t.Errorf("bomb up should also grant an available bomb, got %d/%d", p.Bombs, p.MaxBombs)
	}
}

func TestRefundBombCapped(t *testing.T) {
	p := newTestPlayer(DefaultConfig())
	p.refundBomb()
	if p.Bombs != p.MaxBombs {
		t.Errorf("bombs = %d, refund must not exceed %d", p.Bombs, p.MaxBombs)
	}
}

func TestPlayerMovementAndSnap(t *testing.T) {
	cfg := DefaultConfig()
	f := openFloor(cfg)
	p := newTestPlayer(cfg)
	now := time.Now()

	p.SetIntent(MoveRight, true)
	p.Update(f, now, 1)
	if p.X != cfg.TileSize+cfg.Baseline.Speed || p.Y != cfg.TileSize {
		t.Errorf("position = (%d,%d) after one step right", p.X, p.Y)
	}
	if p.Box.X != p.X || p.Box.Y != p.Y {
		t.Errorf("box %+v does not follow position", p.Box)
	}

	// Moving down from a misaligned column hits the (2,2) pillar and snaps back.
	p.SetIntent(MoveDown, true)
	p.Update(f, now, 2)
	if p.X != cfg.TileSize || p.Y != cfg.TileSize {
		t.Errorf("position = (%d,%d), expected snap to (48,48)", p.X, p.Y)
	}
}

func TestPlayerCollectsPickup(t *testing.T) {
	cfg := DefaultConfig()
	f := openFloor(cfg)
	p := newTestPlayer(cfg)
	f.AddPickup(Cell{X: 1, Y: 1}, PowerUpFire)

	events := p.Update(f, time.Now(), 1)
	ev, ok := hasEvent[PickupCollected](events)
	if !ok || ev.Type != PowerUpFire || ev.Points != 200 {
		t.Fatalf("events = %v, expected fire pickup", events)
	}
	if p.Radius != cfg.Baseline.Radius+1 {
		t.Errorf("radius = %d, expected %d", p.Radius, cfg.Baseline.Radius+1)
	}
}

func TestPlayerReachesExit(t *testing.T) {
	cfg := DefaultConfig()
	f := openFloor(cfg)
	p := newTestPlayer(cfg)
	f.SetExit(Cell{X: 1, Y: 1})

	events := p.Update(f, time.Now(), 9)
	if _, ok := hasEvent[ExitReached](events); !ok {
		t.Fatalf("events = %v, expected ExitReached", events)
	}
	if !p.LevelFinished || p.State != StateWinning || p.StateTick != 9 {
		t.Errorf("player = finished %v state %s tick %d", p.LevelFinished, p.State, p.StateTick)
	}
	if events := p.Update(f, time.Now(), 10); events != nil {
		t.Errorf("finished player should not update, got %v", events)
	}
}
