package config

import (
	"fmt"
	"math"
	"strings"
)

// presetAdjust describes how a preset shifts the file values.
type presetAdjust struct {
	enemyDelta     int     // added to every level's enemy count
	spawnScale     float64 // multiplies enemies.spawn_chance
	turnScale      float64 // multiplies enemies.turn_chance
	hpDelta        int     // added to the baseline HP
	bombsDelta     int     // added to the baseline bomb capacity
	powerUpScale   float64 // multiplies powerups.chance
	cooldownFactor float64 // multiplies player.hit_cooldown
}

var presets = map[DifficultyPreset]presetAdjust{
	DifficultyEasy: {
		enemyDelta:     -1,
		spawnScale:     1,
		turnScale:      1,
		hpDelta:        2,
		bombsDelta:     1,
		powerUpScale:   1.25,
		cooldownFactor: 1.5,
	},
	DifficultyNormal: {
		spawnScale:     1,
		turnScale:      1,
		powerUpScale:   1,
		cooldownFactor: 1,
	},
	DifficultyHard: {
		enemyDelta:     2,
		spawnScale:     1.5,
		turnScale:      2,
		hpDelta:        -2,
		powerUpScale:   0.75,
		cooldownFactor: 0.5,
	},
}

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a user-supplied name to a preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
	return p, nil
}

// ApplyBombermanPreset modifies the config based on a difficulty preset.
// Enemy counts stay at least 1 and baseline stats never exceed their caps.
func ApplyBombermanPreset(cfg *BombermanConfig, preset DifficultyPreset) {
	adj, ok := presets[preset]
	if !ok {
		return
	}
	cfg.Difficulty.Preset = preset

	perLevel := make([]int, len(cfg.Enemies.PerLevel))
	for i, n := range cfg.Enemies.PerLevel {
		perLevel[i] = max(1, n+adj.enemyDelta)
	}
	cfg.Enemies.PerLevel = perLevel

	cfg.Enemies.SpawnChance = clampF(cfg.Enemies.SpawnChance*adj.spawnScale, 0, 1)
	cfg.Enemies.TurnChance = clampF(cfg.Enemies.TurnChance*adj.turnScale, 0, 1)
	cfg.PowerUps.Chance = clampF(cfg.PowerUps.Chance*adj.powerUpScale, 0, 1)

	cfg.Player.Baseline.HP = min(cfg.Player.Max.HP, max(1, cfg.Player.Baseline.HP+adj.hpDelta))
	cfg.Player.Baseline.Bombs = min(cfg.Player.Max.Bombs, max(1, cfg.Player.Baseline.Bombs+adj.bombsDelta))
	cfg.Player.HitCooldown = scaleDuration(cfg.Player.HitCooldown, adj.cooldownFactor)
}

func scaleDuration[D ~int64](d D, factor float64) D {
	return D(math.Round(float64(d) * factor))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
