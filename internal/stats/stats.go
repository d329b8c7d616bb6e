// Package stats holds the running statistics used to summarise benchmark
// games.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const Epsilon = 1e-6

// FuzzyEqual reports whether a and b differ by less than Epsilon.
func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic accumulates mean and variance in one pass (Welford).
type Statistic struct {
	n    int
	mean float64
	m2   float64
	min  float64
	max  float64
}

// Push adds one observation.
func (s *Statistic) Push(val float64) {
	s.n++
	if s.n == 1 {
		s.mean = val
		s.m2 = 0
		s.min, s.max = val, val
		return
	}
	delta := val - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (val - s.mean)
	s.min = math.Min(s.min, val)
	s.max = math.Max(s.max, val)
}

func (s *Statistic) Mean() float64 {
	if s.n > 0 {
		return s.mean
	}
	return 0.0
}

// Variance is the sample variance; 0 with fewer than two observations.
func (s *Statistic) Variance() float64 {
	if s.n <= 1 {
		return 0.0
	}
	return s.m2 / float64(s.n-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

// StandardError returns the standard error of the mean.
func (s *Statistic) StandardError() float64 {
	if s.n == 0 {
		return 0.0
	}
	return math.Sqrt(s.Variance() / float64(s.n))
}

func (s *Statistic) Min() float64 { return s.min }
func (s *Statistic) Max() float64 { return s.max }

func (s *Statistic) Iterations() int {
	return s.n
}

// ConfidenceInterval returns the two-sided interval around the mean for a
// confidence level given in percent.
func (s *Statistic) ConfidenceInterval(pct float64) (lo, hi float64) {
	half := ZVal(pct) * s.StandardError()
	return s.Mean() - half, s.Mean() + half
}

// ZVal returns the two-tailed z-value for a confidence level in percent.
func ZVal(pct float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	return dist.Quantile((1 + pct/100) / 2)
}
