package ptv

import "testing"

func TestPathSegments(t *testing.T) {
	trajects := []*Trajectory{
		trajAt(0, []int{9, 10, 11}, 1),
		trajAt(1, []int{10}, 2),       // endpoint at target: no segment
		trajAt(2, []int{10, 12}, 3),   // gap: no segment
		trajAt(3, []int{10, 11}, 4),   // segment
		trajAt(4, []int{11, 12}, 5),   // not at target frame
	}

	segments := PathSegments(trajects, 10)
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}

	for _, seg := range segments {
		if seg.Next.Time-seg.Current.Time != 1 {
			t.Errorf("segment for trajectory %d spans %d -> %d, want consecutive frames",
				seg.TrajID, seg.Current.Time, seg.Next.Time)
		}
	}
	if segments[0].TrajID != 0 || segments[1].TrajID != 3 {
		t.Errorf("unexpected segment trajectories: %d, %d",
			segments[0].TrajID, segments[1].TrajID)
	}
}

func TestPathSegments_DedupByCurrentPosition(t *testing.T) {
	a := &Trajectory{ID: 0, Samples: []Sample{
		{Pos: [3]float64{1, 1, 1}, Time: 5},
		{Pos: [3]float64{2, 2, 2}, Time: 6},
	}}
	b := &Trajectory{ID: 1, Samples: []Sample{
		{Pos: [3]float64{1, 1, 1}, Time: 5},
		{Pos: [3]float64{3, 3, 3}, Time: 6},
	}}

	segments := PathSegments([]*Trajectory{a, b}, 5)
	if len(segments) != 1 {
		t.Fatalf("duplicate position must collapse to 1 segment, got %d", len(segments))
	}
	if segments[0].TrajID != 0 {
		t.Errorf("lowest-index duplicate must survive, got trajectory %d", segments[0].TrajID)
	}
}

func TestPathSegments_Empty(t *testing.T) {
	if segments := PathSegments(nil, 3); len(segments) != 0 {
		t.Errorf("expected no segments, got %d", len(segments))
	}
}
