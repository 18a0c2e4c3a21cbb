package ptv

// PathSegments returns one (current, next) sample pair for every trajectory
// whose sample at the target frame is immediately followed by a sample at
// frame+1. Trajectories lacking that adjacency — a gap or an endpoint at
// the target frame — contribute nothing. Duplicate physical particles are
// removed by position of the current-frame sample, keeping the pair for
// the first occurrence.
func PathSegments(trajects []*Trajectory, frame int) []Segment {
	var (
		segments []Segment
		pos      [][3]float64
	)
	for _, tr := range trajects {
		ix := tr.SampleAt(frame)
		if ix < 0 || ix+1 >= len(tr.Samples) || tr.Samples[ix+1].Time != frame+1 {
			continue
		}
		segments = append(segments, Segment{
			TrajID:  tr.ID,
			Current: tr.Samples[ix],
			Next:    tr.Samples[ix+1],
		})
		pos = append(pos, tr.Samples[ix].Pos)
	}

	keep := UniquePositionIndices(pos)
	out := make([]Segment, len(keep))
	for i, ix := range keep {
		out[i] = segments[ix]
	}
	return out
}
