package rivals

import "testing"

func TestWindow(t *testing.T) {
	cases := []struct {
		name        string
		boardLen    int
		phase       Phase
		windowStart int
		wantLen     int
		wantFirst   string
	}{
		{
			name:     "playing shows four rows",
			boardLen: 15, phase: PhasePlaying, windowStart: 0,
			wantLen: 4, wantFirst: "rival-00",
		},
		{
			name:     "playing window offset",
			boardLen: 15, phase: PhasePlaying, windowStart: 5,
			wantLen: 4, wantFirst: "rival-05",
		},
		{
			name:     "playing window clamps at the end without wrapping",
			boardLen: 5, phase: PhasePlaying, windowStart: 3,
			wantLen: 2, wantFirst: "rival-03",
		},
		{
			name:     "playing window past the end is empty",
			boardLen: 5, phase: PhasePlaying, windowStart: 9,
			wantLen: 0,
		},
		{
			name:     "game over shows top ten",
			boardLen: 16, phase: PhaseGameOver, windowStart: 3,
			wantLen: 10, wantFirst: "rival-00",
		},
		{
			name:     "game over with a short board shows everything",
			boardLen: 6, phase: PhaseGameOver, windowStart: 0,
			wantLen: 6, wantFirst: "rival-00",
		},
		{
			name:     "menu shows nothing",
			boardLen: 15, phase: PhaseMenu, windowStart: 0,
			wantLen: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Window(fullBoard(tc.boardLen), tc.phase, tc.windowStart)
			if len(got) != tc.wantLen {
				t.Fatalf("window len: got %d, want %d", len(got), tc.wantLen)
			}
			if tc.wantLen > 0 && got[0].Name != tc.wantFirst {
				t.Fatalf("window first: got %q, want %q", got[0].Name, tc.wantFirst)
			}
		})
	}
}

func TestAdvanceWindow_RotationPeriod(t *testing.T) {
	// With a board of n entries the strip returns to its start after
	// exactly max(1, n-3) ticks.
	cases := []struct {
		n    int
		want int
	}{
		{n: 15, want: 12},
		{n: 5, want: 2},
		{n: 4, want: 1},
		{n: 2, want: 1},
		{n: 0, want: 1},
	}

	for _, tc := range cases {
		start := 0
		ticks := 0
		for {
			start = AdvanceWindow(start, tc.n)
			ticks++
			if start == 0 {
				break
			}
			if ticks > 100 {
				t.Fatalf("n=%d: window never returned to start", tc.n)
			}
		}
		if ticks != tc.want {
			t.Fatalf("n=%d: got period %d, want %d", tc.n, ticks, tc.want)
		}
	}
}

func TestRank(t *testing.T) {
	b := fullBoard(5)
	b = append(Board{{Name: PlayerName, Score: 2000}}, b...)

	rank, ok := Rank(b, PlayerName)
	if !ok || rank != 1 {
		t.Fatalf("want rank 1, got %d (ok=%v)", rank, ok)
	}

	rank, ok = Rank(b, "rival-03")
	if !ok || rank != 5 {
		t.Fatalf("want rank 5, got %d (ok=%v)", rank, ok)
	}

	if _, ok := Rank(b, "nobody"); ok {
		t.Fatalf("expected absent result for unknown name")
	}
}
