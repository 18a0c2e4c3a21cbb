package ptv

import "sort"

// UniquePositionIndices returns ascending indices selecting exactly one row
// per distinct position triple in pos, so that each physical particle is
// counted once. Among rows sharing an identical position the one with the
// lowest original index survives; callers must not depend on the content of
// any later duplicate.
func UniquePositionIndices(pos [][3]float64) []int {
	if len(pos) == 0 {
		return nil
	}

	order := make([]int, len(pos))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		pa, pb := pos[order[a]], pos[order[b]]
		for c := 0; c < 3; c++ {
			if pa[c] != pb[c] {
				return pa[c] < pb[c]
			}
		}
		return order[a] < order[b]
	})

	keep := make([]int, 0, len(pos))
	keep = append(keep, order[0])
	last := pos[order[0]]
	for _, ix := range order[1:] {
		if pos[ix] != last {
			keep = append(keep, ix)
			last = pos[ix]
		}
	}

	sort.Ints(keep)
	return keep
}

// statePositions extracts the position column of a particle state table for
// dedup filtering.
func statePositions(states []ParticleState) [][3]float64 {
	pos := make([][3]float64, len(states))
	for i, s := range states {
		pos[i] = s.Pos
	}
	return pos
}

// uniqueStates applies the dedup filter to a particle state table.
func uniqueStates(states []ParticleState) []ParticleState {
	keep := UniquePositionIndices(statePositions(states))
	out := make([]ParticleState, len(keep))
	for i, ix := range keep {
		out[i] = states[ix]
	}
	return out
}
