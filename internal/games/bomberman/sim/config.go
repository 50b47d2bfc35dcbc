package sim

import (
	"errors"
	"fmt"
	"time"
)

// Stats are the player's tunable numbers. They serve both as the baseline
// restored at every level start and as the per-stat power-up caps.
type Stats struct {
	HP     int
	Speed  int // pixels per tick
	Bombs  int // simultaneous bombs
	Radius int // blast radius in cells
}

// AnimationTicks are the lengths, in ticks, of the terminal animations the
// simulation waits on before removing objects.
type AnimationTicks struct {
	TileClear     int
	Explosion     int
	EnemyDeath    int
	PlayerDying   int
	PlayerWinning int
}

// Config holds every constant the simulation uses.
type Config struct {
	Cols     int
	Rows     int
	TileSize int // pixels per cell edge

	BreakableChance float64
	Fuse            time.Duration

	Baseline          Stats
	Max               Stats
	PlayerHitCooldown time.Duration

	EnemiesPerLevel  []int
	EnemySpawnChance float64
	EnemyTurnChance  float64
	EnemyHitCooldown time.Duration

	PowerUpChance  float64
	CompoundRarity bool // gate each pickup with a second roll on its type's percentage

	// The exit is hidden under a Breakable tile beyond these coordinates.
	ExitMinCol int
	ExitMinRow int

	LevelTransition time.Duration
	Animation       AnimationTicks
}

// DefaultConfig returns the classic 17x13 arena tuning.
func DefaultConfig() Config {
	return Config{
		Cols:            17,
		Rows:            13,
		TileSize:        48,
		BreakableChance: 0.4,
		Fuse:            2400 * time.Millisecond,
		Baseline: Stats{
			HP:     5,
			Speed:  3,
			Bombs:  1,
			Radius: 1,
		},
		Max: Stats{
			HP:     9,
			Speed:  6,
			Bombs:  6,
			Radius: 4,
		},
		PlayerHitCooldown: 6 * time.Second,
		EnemiesPerLevel:   []int{3, 4, 5},
		EnemySpawnChance:  0.1,
		EnemyTurnChance:   0.0033,
		EnemyHitCooldown:  2 * time.Second,
		PowerUpChance:     0.4,
		CompoundRarity:    true,
		ExitMinCol:        5,
		ExitMinRow:        5,
		LevelTransition:   3 * time.Second,
		Animation: AnimationTicks{
			TileClear:     100,
			Explosion:     40,
			EnemyDeath:    20,
			PlayerDying:   60,
			PlayerWinning: 45,
		},
	}
}

// Levels returns the number of levels in a run.
func (c Config) Levels() int {
	return len(c.EnemiesPerLevel)
}

// EnemiesForLevel returns the enemy quota for a 0-indexed level.
// Levels past the table reuse its last entry.
func (c Config) EnemiesForLevel(level int) int {
	if len(c.EnemiesPerLevel) == 0 {
		return 0
	}
	if level < 0 {
		level = 0
	}
	if level >= len(c.EnemiesPerLevel) {
		level = len(c.EnemiesPerLevel) - 1
	}
	return c.EnemiesPerLevel[level]
}

// Validate reports configurations the simulation cannot run.
func (c Config) Validate() error {
	var errs []error
	if c.Cols < 5 || c.Rows < 5 {
		errs = append(errs, fmt.Errorf("grid %dx%d is smaller than 5x5", c.Cols, c.Rows))
	}
	if c.Cols%2 == 0 || c.Rows%2 == 0 {
		errs = append(errs, fmt.Errorf("grid %dx%d must have odd dimensions", c.Cols, c.Rows))
	}
	if c.TileSize <= 0 {
		errs = append(errs, errors.New("tile size must be positive"))
	}
	if c.Fuse <= 0 {
		errs = append(errs, errors.New("fuse must be positive"))
	}
	if len(c.EnemiesPerLevel) == 0 {
		errs = append(errs, errors.New("at least one level is required"))
	}
	if c.Baseline.HP <= 0 || c.Baseline.Speed <= 0 || c.Baseline.Bombs <= 0 || c.Baseline.Radius <= 0 {
		errs = append(errs, errors.New("baseline stats must be positive"))
	}
	if c.Max.HP < c.Baseline.HP || c.Max.Speed < c.Baseline.Speed ||
		c.Max.Bombs < c.Baseline.Bombs || c.Max.Radius < c.Baseline.Radius {
		errs = append(errs, errors.New("stat caps must not be below the baseline"))
	}
	if c.Baseline.Speed >= c.TileSize {
		errs = append(errs, errors.New("speed must be below the tile size"))
	}
	return errors.Join(errs...)
}
