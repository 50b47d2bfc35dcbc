// Package config provides YAML-based configuration loading and
// difficulty presets for the bomber game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-bomber/internal/games/bomberman/sim"
)

// BombermanConfig contains all configuration for the bomber game.
type BombermanConfig struct {
	Loop       LoopConfig       `yaml:"loop"`
	Input      InputConfig      `yaml:"input"`
	Grid       GridConfig       `yaml:"grid"`
	Player     PlayerConfig     `yaml:"player"`
	Bombs      BombConfig       `yaml:"bombs"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Levels     LevelConfig      `yaml:"levels"`
	Animation  AnimationConfig  `yaml:"animation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// LoopConfig defines simulation and render rates.
type LoopConfig struct {
	FPS       int  `yaml:"fps"`        // simulation steps per second
	RenderFPS int  `yaml:"render_fps"` // terminal redraws per second
	Spin      bool `yaml:"spin"`       // busy-wait between steps instead of sleeping
}

// InputConfig defines how key presses become held directions.
type InputConfig struct {
	HoldWindow time.Duration `yaml:"hold_window"` // a direction key counts as held this long
}

// GridConfig defines the arena.
type GridConfig struct {
	Cols            int     `yaml:"cols"`
	Rows            int     `yaml:"rows"`
	TileSize        int     `yaml:"tile_size"` // pixels per cell
	BreakableChance float64 `yaml:"breakable_chance"`
}

// StatsConfig is one set of player stats.
type StatsConfig struct {
	HP     int `yaml:"hp"`
	Speed  int `yaml:"speed"`
	Bombs  int `yaml:"bombs"`
	Radius int `yaml:"radius"`
}

// PlayerConfig defines the level-start stats and their caps.
type PlayerConfig struct {
	Baseline    StatsConfig   `yaml:"baseline"`
	Max         StatsConfig   `yaml:"max"`
	HitCooldown time.Duration `yaml:"hit_cooldown"`
}

// BombConfig defines bomb timing.
type BombConfig struct {
	Fuse time.Duration `yaml:"fuse"`
}

// EnemyConfig defines enemy population and behaviour.
type EnemyConfig struct {
	PerLevel    []int         `yaml:"per_level"`
	SpawnChance float64       `yaml:"spawn_chance"`
	TurnChance  float64       `yaml:"turn_chance"`
	HitCooldown time.Duration `yaml:"hit_cooldown"`
}

// PowerUpConfig defines pickup generation.
type PowerUpConfig struct {
	Chance         float64 `yaml:"chance"`
	CompoundRarity bool    `yaml:"compound_rarity"` // also roll each type's own percentage
}

// LevelConfig defines level flow.
type LevelConfig struct {
	Count      int           `yaml:"count"`
	ExitMinCol int           `yaml:"exit_min_col"`
	ExitMinRow int           `yaml:"exit_min_row"`
	Transition time.Duration `yaml:"transition"`
}

// AnimationConfig defines how many simulation ticks each terminal
// animation lasts.
type AnimationConfig struct {
	TileClear     int `yaml:"tile_clear"`
	Explosion     int `yaml:"explosion"`
	EnemyDeath    int `yaml:"enemy_death"`
	PlayerDying   int `yaml:"player_dying"`
	PlayerWinning int `yaml:"player_winning"`
}

// DifficultyConfig selects a preset applied on top of the file values.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

func (s StatsConfig) toSim() sim.Stats {
	return sim.Stats{HP: s.HP, Speed: s.Speed, Bombs: s.Bombs, Radius: s.Radius}
}

// EnemiesPerLevel returns the enemy table stretched or truncated to the
// configured level count. Missing levels repeat the last entry.
func (c BombermanConfig) EnemiesPerLevel() []int {
	count := c.Levels.Count
	if count <= 0 {
		count = len(c.Enemies.PerLevel)
	}
	if len(c.Enemies.PerLevel) == 0 || count == 0 {
		return nil
	}
	out := make([]int, count)
	for i := range out {
		if i < len(c.Enemies.PerLevel) {
			out[i] = c.Enemies.PerLevel[i]
		} else {
			out[i] = c.Enemies.PerLevel[len(c.Enemies.PerLevel)-1]
		}
	}
	return out
}

// ToSim converts the file configuration to simulation constants.
func (c BombermanConfig) ToSim() sim.Config {
	return sim.Config{
		Cols:              c.Grid.Cols,
		Rows:              c.Grid.Rows,
		TileSize:          c.Grid.TileSize,
		BreakableChance:   c.Grid.BreakableChance,
		Fuse:              c.Bombs.Fuse,
		Baseline:          c.Player.Baseline.toSim(),
		Max:               c.Player.Max.toSim(),
		PlayerHitCooldown: c.Player.HitCooldown,
		EnemiesPerLevel:   c.EnemiesPerLevel(),
		EnemySpawnChance:  c.Enemies.SpawnChance,
		EnemyTurnChance:   c.Enemies.TurnChance,
		EnemyHitCooldown:  c.Enemies.HitCooldown,
		PowerUpChance:     c.PowerUps.Chance,
		CompoundRarity:    c.PowerUps.CompoundRarity,
		ExitMinCol:        c.Levels.ExitMinCol,
		ExitMinRow:        c.Levels.ExitMinRow,
		LevelTransition:   c.Levels.Transition,
		Animation: sim.AnimationTicks{
			TileClear:     c.Animation.TileClear,
			Explosion:     c.Animation.Explosion,
			EnemyDeath:    c.Animation.EnemyDeath,
			PlayerDying:   c.Animation.PlayerDying,
			PlayerWinning: c.Animation.PlayerWinning,
		},
	}
}

// Validate reports every problem that would make the game unplayable.
func (c BombermanConfig) Validate() error {
	var errs []error
	if c.Loop.FPS <= 0 {
		errs = append(errs, fmt.Errorf("loop.fps must be positive, got %d", c.Loop.FPS))
	}
	if c.Loop.RenderFPS <= 0 {
		errs = append(errs, fmt.Errorf("loop.render_fps must be positive, got %d", c.Loop.RenderFPS))
	}
	if c.Input.HoldWindow <= 0 {
		errs = append(errs, errors.New("input.hold_window must be positive"))
	}
	if c.Difficulty.Preset != "" {
		if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
			errs = append(errs, err)
		}
	}
	if err := c.ToSim().Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid bomberman config: %w", errors.Join(errs...))
}
