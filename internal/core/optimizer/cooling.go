package optimizer

import "math"

// CoolingSchedule computes the annealing temperature at an elapsed
// fraction p in [0,1] of the optimization time budget.
type CoolingSchedule interface {
	Temperature(p float64) float64
}

// ExponentialCooling interpolates between T0 and Tf along T0*(Tf/T0)^p,
// matching the smooth decay used by the rest of this family of
// annealers while anchoring both endpoints to schedule-specific values.
type ExponentialCooling struct {
	T0 float64
	Tf float64
}

// NewExponentialCooling derives T0 from the initial score (floored at
// 500) and fixes Tf at 0.01.
func NewExponentialCooling(initialScore float64) *ExponentialCooling {
	t0 := 0.05 * initialScore
	if t0 < 500 {
		t0 = 500
	}
	return &ExponentialCooling{T0: t0, Tf: 0.01}
}

// Temperature returns T0*(Tf/T0)^p.
func (c *ExponentialCooling) Temperature(p float64) float64 {
	if p <= 0 {
		return c.T0
	}
	if p >= 1 {
		return c.Tf
	}
	return c.T0 * math.Pow(c.Tf/c.T0, p)
}
