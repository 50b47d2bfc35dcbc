package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// PowerUpType is the kind of pickup hidden under a breakable tile.
type PowerUpType int

const (
	PowerUpBombUp PowerUpType = iota
	PowerUpAccelerator
	PowerUpFire
	PowerUpBomberman
	PowerUpRiceBall
	PowerUpApple
	PowerUpIceCreamCone
)

type powerUpSpec struct {
	name    string
	percent float64
	points  int
}

// powerUpTable is the weighted spawn table; percentages sum to 100.
var powerUpTable = [...]powerUpSpec{
	PowerUpBombUp:       {name: "bomb up", percent: 45, points: 10},
	PowerUpAccelerator:  {name: "accelerator", percent: 25, points: 400},
	PowerUpFire:         {name: "fire", percent: 15, points: 200},
	PowerUpBomberman:    {name: "bomberman", percent: 7.5, points: 500},
	PowerUpRiceBall:     {name: "rice ball", percent: 3.5, points: 5000},
	PowerUpApple:        {name: "apple", percent: 3, points: 8000},
	PowerUpIceCreamCone: {name: "ice cream cone", percent: 1, points: 50000},
}

// PowerUpTypes returns every pickup type in table order.
func PowerUpTypes() []PowerUpType {
	types := make([]PowerUpType, len(powerUpTable))
	for i := range powerUpTable {
		types[i] = PowerUpType(i)
	}
	return types
}

// String returns the pickup name.
func (t PowerUpType) String() string {
	if t < 0 || int(t) >= len(powerUpTable) {
		return "unknown"
	}
	return powerUpTable[t].name
}

// Percent returns the type's share of the spawn table.
func (t PowerUpType) Percent() float64 {
	return powerUpTable[t].percent
}

// Points returns the score awarded when the pickup is collected.
func (t PowerUpType) Points() int {
	return powerUpTable[t].points
}

// ScoreOnly reports whether the pickup changes no player stat.
func (t PowerUpType) ScoreOnly() bool {
	return t == PowerUpRiceBall || t == PowerUpApple || t == PowerUpIceCreamCone
}

// rollPowerUpType draws a type from the weighted table.
func rollPowerUpType(rng *rand.Rand) PowerUpType {
	r := rng.Float64() * 100
	acc := 0.0
	for i, spec := range powerUpTable {
		acc += spec.percent
		if r < acc {
			return PowerUpType(i)
		}
	}
	return PowerUpBombUp
}

// PowerUp is a pickup lying on (or hidden under) a cell.
type PowerUp struct {
	Cell      Cell
	Type      PowerUpType
	Collected bool
	Box       core.Rect
}
