// Package ptv reconstructs time-ordered particle trajectories from
// heterogeneous per-frame detection records and answers windowed queries
// against them. It is a pure computation library: it performs no logging
// and retains no state across calls.
package ptv

// Sample is one observation of a particle at a single frame.
type Sample struct {
	Pos  [3]float64 // position, meters
	Vel  [3]float64 // velocity, meters/second
	Time int        // frame index
}

// Trajectory is the time-ordered path of one physical particle across
// frames. Sample times are strictly increasing and the sample list is never
// empty. Once returned to a caller a trajectory is not mutated again.
type Trajectory struct {
	ID      int64
	Samples []Sample
}

// Len returns the number of samples in the trajectory.
func (tr *Trajectory) Len() int {
	return len(tr.Samples)
}

// StartFrame returns the frame index of the first sample.
func (tr *Trajectory) StartFrame() int {
	return tr.Samples[0].Time
}

// EndFrame returns the frame index of the last sample.
func (tr *Trajectory) EndFrame() int {
	return tr.Samples[len(tr.Samples)-1].Time
}

// SampleAt returns the index of the sample taken at the given frame, or -1
// if the trajectory has no sample for that frame. Sample times are strictly
// increasing, so a binary search suffices.
func (tr *Trajectory) SampleAt(frame int) int {
	lo, hi := 0, len(tr.Samples)
	for lo < hi {
		mid := (lo + hi) / 2
		if tr.Samples[mid].Time < frame {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(tr.Samples) && tr.Samples[lo].Time == frame {
		return lo
	}
	return -1
}

// ParticleState is a particle's state at one frame, detached from its
// trajectory. TrajID is -1 when the source carries no trajectory identity
// (raw age-tagged frame files).
type ParticleState struct {
	Pos    [3]float64
	Vel    [3]float64
	Time   int
	TrajID int64
}

// Segment is a pair of consecutive-frame states of one particle, used for
// finite-difference acceleration estimates. Next.Time is always
// Current.Time+1 and both samples belong to the trajectory named by TrajID.
type Segment struct {
	TrajID  int64
	Current Sample
	Next    Sample
}
