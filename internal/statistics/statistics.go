// Package statistics accumulates sample moments for Monte Carlo estimates.
package statistics

import "math"

// Sample tracks the running moments of a series of observations. The zero
// value is an empty sample.
type Sample struct {
	N     int
	Sum   float64
	SumSq float64 // for variance
}

// Add records one observation.
func (s *Sample) Add(x float64) {
	s.N++
	s.Sum += x
	s.SumSq += x * x
}

// AddN records n identical observations.
func (s *Sample) AddN(x float64, n int) {
	s.N += n
	s.Sum += x * float64(n)
	s.SumSq += x * x * float64(n)
}

// Merge folds other into s.
func (s *Sample) Merge(other Sample) {
	s.N += other.N
	s.Sum += other.Sum
	s.SumSq += other.SumSq
}

// Mean returns the arithmetic mean
func (s Sample) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Variance returns the sample variance
func (s Sample) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumSq - float64(s.N)*mean*mean) / float64(s.N-1)
	// rounding can push a constant series slightly negative
	return math.Max(v, 0)
}

// StdDev returns the sample standard deviation
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s Sample) StdError() float64 {
	if s.N == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.N))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s Sample) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}
