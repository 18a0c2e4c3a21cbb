package ptv

import (
	"errors"
	"testing"
)

// chainFrames builds three single-row frames whose rows chain 0 -> 1 -> 2
// by previous-row index, moving one meter in x per frame.
func chainFrames() []LinkFrame {
	return []LinkFrame{
		{Frame: 0, Rows: []LinkRow{{Prev: -1, Pos: [3]float64{0, 0, 0}}}},
		{Frame: 1, Rows: []LinkRow{{Prev: 0, Pos: [3]float64{1, 0, 0}}}},
		{Frame: 2, Rows: []LinkRow{{Prev: 0, Pos: [3]float64{2, 0, 0}}}},
	}
}

func TestLinkTrajectories_SingleChain(t *testing.T) {
	const rate = 2.5
	cfg := DefaultLinkerConfig()
	cfg.FrameRate = rate

	trajects, err := LinkTrajectories(chainFrames(), cfg)
	if err != nil {
		t.Fatalf("link failed: %v", err)
	}

	if len(trajects) != 1 {
		t.Fatalf("expected 1 trajectory, got %d", len(trajects))
	}
	tr := trajects[0]
	if tr.Len() != 3 {
		t.Fatalf("expected 3 samples, got %d", tr.Len())
	}

	for i, want := range []int{0, 1, 2} {
		if tr.Samples[i].Time != want {
			t.Errorf("sample %d at frame %d, want %d", i, tr.Samples[i].Time, want)
		}
	}

	// Backward difference velocity, exactly (1,0,0)*rate, no smoothing.
	for i := 0; i < 2; i++ {
		if tr.Samples[i].Vel != [3]float64{rate, 0, 0} {
			t.Errorf("sample %d velocity %v, want (%v, 0, 0)", i, tr.Samples[i].Vel, rate)
		}
	}
	// The final sample is never continued into and keeps zero velocity.
	if tr.Samples[2].Vel != [3]float64{} {
		t.Errorf("final sample velocity %v, want zero", tr.Samples[2].Vel)
	}
}

func TestLinkTrajectories_IDSpace(t *testing.T) {
	frames := []LinkFrame{
		{Frame: 3, Rows: []LinkRow{
			{Prev: -1, Pos: [3]float64{0, 0, 0}},
			{Prev: -1, Pos: [3]float64{1, 1, 1}},
		}},
		{Frame: 4, Rows: []LinkRow{
			{Prev: 1, Pos: [3]float64{1.1, 1, 1}}, // continues id 1
			{Prev: -1, Pos: [3]float64{5, 5, 5}},  // new id 2
			{Prev: 0, Pos: [3]float64{0.1, 0, 0}}, // continues id 0
		}},
		{Frame: 5, Rows: []LinkRow{
			{Prev: 1, Pos: [3]float64{5.1, 5, 5}}, // continues id 2 via row 1
			{Prev: -1, Pos: [3]float64{9, 9, 9}},  // new id 3
		}},
	}

	trajects, err := LinkTrajectories(frames, DefaultLinkerConfig())
	if err != nil {
		t.Fatalf("link failed: %v", err)
	}

	if len(trajects) != 4 {
		t.Fatalf("expected ids 0..3, got %d trajectories", len(trajects))
	}
	for i, tr := range trajects {
		if tr.ID != int64(i) {
			t.Errorf("trajectory %d has id %d, want dense ids", i, tr.ID)
		}
		if tr.Len() < 1 {
			t.Errorf("trajectory %d is empty", i)
		}
		for j := 1; j < tr.Len(); j++ {
			if tr.Samples[j].Time <= tr.Samples[j-1].Time {
				t.Errorf("trajectory %d times not strictly increasing: %v",
					i, tr.Samples)
			}
		}
	}

	// The row continuing id 2 must extend that trajectory to frame 5.
	if trajects[2].EndFrame() != 5 {
		t.Errorf("trajectory 2 ends at %d, want 5", trajects[2].EndFrame())
	}
}

func TestLinkTrajectories_LinkBase(t *testing.T) {
	// With a one-based link, Prev=1 names the first previous-frame row and
	// Prev=0 is the no-predecessor sentinel.
	frames := []LinkFrame{
		{Frame: 0, Rows: []LinkRow{{Prev: 0, Pos: [3]float64{0, 0, 0}}}},
		{Frame: 1, Rows: []LinkRow{{Prev: 1, Pos: [3]float64{1, 0, 0}}}},
	}

	cfg := DefaultLinkerConfig()
	cfg.LinkBase = 1
	trajects, err := LinkTrajectories(frames, cfg)
	if err != nil {
		t.Fatalf("link failed: %v", err)
	}
	if len(trajects) != 1 || trajects[0].Len() != 2 {
		t.Fatalf("one-based link not honoured: got %d trajectories", len(trajects))
	}
}

func TestLinkTrajectories_VelocityPassthrough(t *testing.T) {
	vel := [3]float64{4, 5, 6}
	frames := []LinkFrame{
		{Frame: 0, Rows: []LinkRow{{Prev: -1, Pos: [3]float64{0, 0, 0}, Vel: vel}}},
		{Frame: 1, Rows: []LinkRow{{Prev: 0, Pos: [3]float64{9, 9, 9}, Vel: vel}}},
	}

	cfg := DefaultLinkerConfig()
	cfg.HasVelocity = true
	trajects, err := LinkTrajectories(frames, cfg)
	if err != nil {
		t.Fatalf("link failed: %v", err)
	}
	for _, s := range trajects[0].Samples {
		if s.Vel != vel {
			t.Errorf("format velocity overwritten: got %v, want %v", s.Vel, vel)
		}
	}
}

func TestLinkTrajectories_DuplicateLink(t *testing.T) {
	// Two frame-1 rows both claim the frame-0 row as predecessor. Only the
	// first may continue the trajectory; the second would otherwise land a
	// second sample at frame 1.
	frames := []LinkFrame{
		{Frame: 0, Rows: []LinkRow{{Prev: -1, Pos: [3]float64{0, 0, 0}}}},
		{Frame: 1, Rows: []LinkRow{
			{Prev: 0, Pos: [3]float64{1, 0, 0}},
			{Prev: 0, Pos: [3]float64{7, 7, 7}},
		}},
		{Frame: 2, Rows: []LinkRow{{Prev: 0, Pos: [3]float64{2, 0, 0}}}},
	}

	trajects, err := LinkTrajectories(frames, DefaultLinkerConfig())
	if err != nil {
		t.Fatalf("link failed: %v", err)
	}
	if len(trajects) != 1 {
		t.Fatalf("expected 1 trajectory, got %d", len(trajects))
	}

	tr := trajects[0]
	if tr.Len() != 3 {
		t.Fatalf("expected 3 samples, got %d", tr.Len())
	}
	for i := 1; i < tr.Len(); i++ {
		if tr.Samples[i].Time <= tr.Samples[i-1].Time {
			t.Fatalf("times not strictly increasing: %d then %d",
				tr.Samples[i-1].Time, tr.Samples[i].Time)
		}
	}
	// The first row wins and the discarded one must not disturb the
	// backward-difference velocities.
	if tr.Samples[1].Pos != [3]float64{1, 0, 0} {
		t.Errorf("frame 1 position %v, want first row's (1, 0, 0)", tr.Samples[1].Pos)
	}
	for i := 0; i < 2; i++ {
		if tr.Samples[i].Vel != [3]float64{1, 0, 0} {
			t.Errorf("sample %d velocity %v, want (1, 0, 0)", i, tr.Samples[i].Vel)
		}
	}
}

func TestLinkTrajectories_EmptyFrame(t *testing.T) {
	frames := []LinkFrame{
		{Frame: 0, Rows: []LinkRow{{Prev: -1, Pos: [3]float64{0, 0, 0}}}},
		{Frame: 1}, // zero rows: valid, contributes nothing
		{Frame: 2, Rows: []LinkRow{{Prev: 0, Pos: [3]float64{1, 0, 0}}}},
	}

	trajects, err := LinkTrajectories(frames, DefaultLinkerConfig())
	if err != nil {
		t.Fatalf("empty frame should not fail: %v", err)
	}
	// Frame 2's link points into the empty frame 1, so it starts anew.
	if len(trajects) != 2 {
		t.Fatalf("expected 2 trajectories, got %d", len(trajects))
	}
}

func TestLinkTrajectories_InvalidOrder(t *testing.T) {
	frames := []LinkFrame{
		{Frame: 2},
		{Frame: 1},
	}

	_, err := LinkTrajectories(frames, DefaultLinkerConfig())
	var orderErr *InvalidOrderError
	if !errors.As(err, &orderErr) {
		t.Fatalf("expected InvalidOrderError, got %v", err)
	}
	if orderErr.Prev != 2 || orderErr.Next != 1 {
		t.Errorf("error carries frames (%d, %d), want (2, 1)", orderErr.Prev, orderErr.Next)
	}
}

func TestLinkTrajectories_NoFrames(t *testing.T) {
	trajects, err := LinkTrajectories(nil, DefaultLinkerConfig())
	if err != nil {
		t.Fatalf("no frames should not fail: %v", err)
	}
	if len(trajects) != 0 {
		t.Errorf("expected no trajectories, got %d", len(trajects))
	}
}
