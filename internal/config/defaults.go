package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/bomberman.yaml
var defaultBombermanYAML []byte

// DefaultBombermanConfig returns the default bomber configuration.
func DefaultBombermanConfig() BombermanConfig {
	return BombermanConfig{
		Loop: LoopConfig{
			FPS:       60,
			RenderFPS: 30,
			Spin:      true,
		},
		Input: InputConfig{
			HoldWindow: 180 * time.Millisecond,
		},
		Grid: GridConfig{
			Cols:            17,
			Rows:            13,
			TileSize:        48,
			BreakableChance: 0.4,
		},
		Player: PlayerConfig{
			Baseline:    StatsConfig{HP: 5, Speed: 3, Bombs: 1, Radius: 1},
			Max:         StatsConfig{HP: 9, Speed: 6, Bombs: 6, Radius: 4},
			HitCooldown: 6 * time.Second,
		},
		Bombs: BombConfig{
			Fuse: 2400 * time.Millisecond,
		},
		Enemies: EnemyConfig{
			PerLevel:    []int{3, 4, 5},
			SpawnChance: 0.1,
			TurnChance:  0.0033,
			HitCooldown: 2 * time.Second,
		},
		PowerUps: PowerUpConfig{
			Chance:         0.4,
			CompoundRarity: true,
		},
		Levels: LevelConfig{
			Count:      3,
			ExitMinCol: 5,
			ExitMinRow: 5,
			Transition: 3 * time.Second,
		},
		Animation: AnimationConfig{
			TileClear:     100,
			Explosion:     40,
			EnemyDeath:    20,
			PlayerDying:   60,
			PlayerWinning: 45,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "bomberman":
		return defaultBombermanYAML
	default:
		return nil
	}
}
