package ptv

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SpeedStats summarises the speed distribution of one trajectory.
type SpeedStats struct {
	Mean float64
	Peak float64
	P50  float64
	P85  float64
	P95  float64
}

// Speeds returns the speed magnitude of every sample in the trajectory.
func Speeds(tr *Trajectory) []float64 {
	speeds := make([]float64, len(tr.Samples))
	for i, s := range tr.Samples {
		speeds[i] = math.Sqrt(s.Vel[0]*s.Vel[0] + s.Vel[1]*s.Vel[1] + s.Vel[2]*s.Vel[2])
	}
	return speeds
}

// ComputeSpeedStats computes mean, peak and percentile speeds for a
// trajectory. A zero-length speed history yields the zero value.
func ComputeSpeedStats(tr *Trajectory) SpeedStats {
	speeds := Speeds(tr)
	if len(speeds) == 0 {
		return SpeedStats{}
	}

	sorted := make([]float64, len(speeds))
	copy(sorted, speeds)
	sort.Float64s(sorted)

	return SpeedStats{
		Mean: stat.Mean(speeds, nil),
		Peak: floats.Max(speeds),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P85:  stat.Quantile(0.85, stat.Empirical, sorted, nil),
		P95:  stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
}
