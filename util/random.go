package util

import (
	"math/rand"
)

// RandomInt generates a random integer between min and max
func RandomInt(min, max int) int {
	return min + rand.Intn(max-min+1)
}

// RandomFloat generates a random float in [min, max)
func RandomFloat(min, max float64) float64 {
	return min + (max-min)*rand.Float64()
}

// RandomOptionType picks "call" or "put"
func RandomOptionType() string {
	types := []string{"call", "put"}
	return types[rand.Intn(len(types))]
}
