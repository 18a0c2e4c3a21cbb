package ptv

// LinkRow is one detection in a link-based frame file. Prev points at a row
// of the immediately preceding frame, in the format's own index base; values
// below the base mean the row starts a new trajectory.
type LinkRow struct {
	Prev int
	Pos  [3]float64
	Vel  [3]float64
}

// LinkFrame is one frame's worth of link-based rows. An empty row list is
// valid and simply contributes nothing.
type LinkFrame struct {
	Frame int
	Rows  []LinkRow
}

// LinkerConfig holds configuration for trajectory linking.
type LinkerConfig struct {
	// FrameRate converts one-frame position differences into velocities.
	FrameRate float64

	// LinkBase is the index value of the first valid row in Prev links.
	// It is fixed per raw format and never auto-detected.
	LinkBase int

	// HasVelocity marks formats that carry velocity columns. When false,
	// velocities are estimated by one-frame backward differences after
	// linking.
	HasVelocity bool
}

// DefaultLinkerConfig returns a linker configuration for formats with
// zero-based links and no velocity columns.
func DefaultLinkerConfig() LinkerConfig {
	return LinkerConfig{
		FrameRate:   1.0,
		LinkBase:    0,
		HasVelocity: false,
	}
}

// LinkTrajectories links an ascending sequence of link-based frames into
// trajectories. Every row of the first frame starts a trajectory; a later
// row continues the trajectory of the previous-frame row its link points
// at, and any other row starts a new one. When several rows of one frame
// link the same predecessor, only the first contributes a sample; a
// trajectory never holds two samples for one frame. Trajectory ids are
// dense integers allocated in discovery order, so the id space is exactly
// {0..n-1}.
//
// Linking and velocity estimation run as two separate passes: frames are
// first linked with velocities deferred, then each trajectory is walked
// once computing backward differences. Published samples are never mutated
// retroactively.
func LinkTrajectories(frames []LinkFrame, cfg LinkerConfig) ([]*Trajectory, error) {
	for i := 1; i < len(frames); i++ {
		if frames[i].Frame <= frames[i-1].Frame {
			return nil, &InvalidOrderError{Prev: frames[i-1].Frame, Next: frames[i].Frame}
		}
	}

	var (
		samples [][]Sample // per trajectory id, in time order
		prevIDs []int64    // trajectory id of each row in the previous frame
	)

	for fix, frame := range frames {
		ids := make([]int64, len(frame.Rows))
		for rix, row := range frame.Rows {
			p := row.Prev - cfg.LinkBase
			if fix > 0 && p >= 0 && p < len(prevIDs) {
				ids[rix] = prevIDs[p]
			} else {
				ids[rix] = int64(len(samples))
				samples = append(samples, nil)
			}
			id := ids[rix]
			if n := len(samples[id]); n > 0 && samples[id][n-1].Time == frame.Frame {
				// A second row linked the same predecessor; the first
				// row already claimed this trajectory for the frame.
				continue
			}
			samples[id] = append(samples[id], Sample{
				Pos:  row.Pos,
				Vel:  row.Vel,
				Time: frame.Frame,
			})
		}
		prevIDs = ids
	}

	trajects := make([]*Trajectory, len(samples))
	for id := range samples {
		trajects[id] = &Trajectory{ID: int64(id), Samples: samples[id]}
	}

	if !cfg.HasVelocity {
		backfillVelocities(trajects, cfg.FrameRate)
	}

	return trajects, nil
}

// backfillVelocities estimates sample velocities by one-frame backward
// differences: v[t] = (pos[t+1] - pos[t]) * rate. The final sample of each
// trajectory keeps its zero velocity; no forward-looking estimate is
// attempted.
func backfillVelocities(trajects []*Trajectory, rate float64) {
	for _, tr := range trajects {
		for i := 0; i+1 < len(tr.Samples); i++ {
			for c := 0; c < 3; c++ {
				tr.Samples[i].Vel[c] = (tr.Samples[i+1].Pos[c] - tr.Samples[i].Pos[c]) * rate
			}
		}
	}
}
