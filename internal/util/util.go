// Package util provides small helpers shared across packages.
package util

import (
	"github.com/lithammer/shortuuid/v4"
)

// GenUID generates a short unique identifier for a record.
func GenUID() string {
	return shortuuid.New()
}

// ClampFloat bounds v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
