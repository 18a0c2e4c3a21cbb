package ptv

import "errors"

// AgeRow is one detection in an age-tagged frame file. Age is the number of
// frames elapsed since the row's trajectory first appeared.
type AgeRow struct {
	Pos [3]float64
	Vel [3]float64
	Age int
}

// FrameSource yields the raw age-tagged table for a frame number. A frame
// with no backing file returns a MissingFileError; the scanner treats that
// as the end of its backward walk.
type FrameSource interface {
	Frame(frame int) ([]AgeRow, error)
}

// CollectParticles walks backward over age-tagged frame tables starting at
// the target frame, collecting the state of every particle alive at that
// frame: a row of the table loaded for frame cur belongs to the target
// frame when its age equals frame-cur. The walk stops at the first frame
// contributing no rows, since no earlier trajectory can reach the target.
//
// Rows from different source frames can represent the same physical
// particle (independently restarted detections), so the accumulated table
// is dedup-filtered by position before returning.
func CollectParticles(src FrameSource, frame int) ([]ParticleState, error) {
	var collected []ParticleState
	for cur := frame; ; cur-- {
		table, err := src.Frame(cur)
		if err != nil {
			var missing *MissingFileError
			if errors.As(err, &missing) {
				break
			}
			return nil, err
		}

		age := frame - cur
		n := len(collected)
		for _, row := range table {
			if row.Age == age {
				collected = append(collected, ParticleState{
					Pos:    row.Pos,
					Vel:    row.Vel,
					Time:   frame,
					TrajID: -1,
				})
			}
		}
		if len(collected) == n {
			break
		}
	}

	return uniqueStates(collected), nil
}

// CollectParticleSegments is the segment-mode variant of CollectParticles:
// a row qualifies only when its immediate successor in file order carries
// age+1, and the two rows are paired as the particle's state at the target
// frame and at the next frame. The returned layers are index-aligned; the
// dedup mask computed on the target-frame layer is applied to both.
func CollectParticleSegments(src FrameSource, frame int) (cur, next []ParticleState, err error) {
	for at := frame; ; at-- {
		table, err := src.Frame(at)
		if err != nil {
			var missing *MissingFileError
			if errors.As(err, &missing) {
				break
			}
			return nil, nil, err
		}

		age := frame - at
		n := len(cur)
		for i := 0; i+1 < len(table); i++ {
			if table[i].Age == age && table[i+1].Age == age+1 {
				cur = append(cur, ParticleState{
					Pos: table[i].Pos, Vel: table[i].Vel, Time: frame, TrajID: -1,
				})
				next = append(next, ParticleState{
					Pos: table[i+1].Pos, Vel: table[i+1].Vel, Time: frame + 1, TrajID: -1,
				})
			}
		}
		if len(cur) == n {
			break
		}
	}

	keep := UniquePositionIndices(statePositions(cur))
	maskedCur := make([]ParticleState, len(keep))
	maskedNext := make([]ParticleState, len(keep))
	for i, ix := range keep {
		maskedCur[i] = cur[ix]
		maskedNext[i] = next[ix]
	}
	return maskedCur, maskedNext, nil
}

// CollectFromTrajectories collects from already-materialized trajectories
// the particles appearing at the given frame. Output is dedup-filtered by
// position like the file-based scan.
func CollectFromTrajectories(trajects []*Trajectory, frame int) []ParticleState {
	var collected []ParticleState
	for _, tr := range trajects {
		ix := tr.SampleAt(frame)
		if ix < 0 {
			continue
		}
		s := tr.Samples[ix]
		collected = append(collected, ParticleState{
			Pos:    s.Pos,
			Vel:    s.Vel,
			Time:   s.Time,
			TrajID: tr.ID,
		})
	}
	return uniqueStates(collected)
}

// CollectSegmentsFromTrajectories is the segment-mode variant of
// CollectFromTrajectories: a trajectory contributes only when its sample at
// the target frame is immediately followed by a sample at frame+1 — the
// adjacency must hold within the trajectory, mere co-presence of both
// frames is not enough. The two layers stay index-aligned through the
// shared dedup mask.
func CollectSegmentsFromTrajectories(trajects []*Trajectory, frame int) (cur, next []ParticleState) {
	for _, tr := range trajects {
		ix := tr.SampleAt(frame)
		if ix < 0 || ix+1 >= len(tr.Samples) || tr.Samples[ix+1].Time != frame+1 {
			continue
		}
		s, sn := tr.Samples[ix], tr.Samples[ix+1]
		cur = append(cur, ParticleState{Pos: s.Pos, Vel: s.Vel, Time: s.Time, TrajID: tr.ID})
		next = append(next, ParticleState{Pos: sn.Pos, Vel: sn.Vel, Time: sn.Time, TrajID: tr.ID})
	}

	keep := UniquePositionIndices(statePositions(cur))
	maskedCur := make([]ParticleState, len(keep))
	maskedNext := make([]ParticleState, len(keep))
	for i, ix := range keep {
		maskedCur[i] = cur[ix]
		maskedNext[i] = next[ix]
	}
	return maskedCur, maskedNext
}
