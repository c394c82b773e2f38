package cbt

import (
	"math/rand"

	"github.com/mindwell/mindwell/internal/util"
)

// Estimator scores how well a technique is working for the user. Real
// outcome data does not exist yet, so estimates are usage-based stand-ins;
// the interface keeps the formula swappable.
type Estimator interface {
	Estimate(technique string, usageCount int) float64
}

// HeuristicEstimator is the deterministic default: confidence grows with
// usage and saturates at 0.95.
type HeuristicEstimator struct{}

func (HeuristicEstimator) Estimate(technique string, usageCount int) float64 {
	return util.ClampFloat(0.4+0.05*float64(usageCount), 0, 0.95)
}

// JitteredEstimator adds a random term so repeated demo views look "alive".
// Only wired when the demo-jitter profile flag is set; never the default,
// since randomness breaks reproducible analytics.
type JitteredEstimator struct {
	Rand *rand.Rand
}

func (e JitteredEstimator) Estimate(technique string, usageCount int) float64 {
	base := HeuristicEstimator{}.Estimate(technique, usageCount)
	jitter := 0.0
	if e.Rand != nil {
		jitter = (e.Rand.Float64() - 0.5) * 0.2
	}
	return util.ClampFloat(base+jitter, 0, 1)
}
