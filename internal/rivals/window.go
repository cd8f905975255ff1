package rivals

// Phase governs which generation, merge and windowing rules apply.
type Phase string

const (
	PhaseMenu     Phase = "menu"
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

const (
	playingRows  = 4
	gameOverRows = 10
)

// Window selects the slice of b visible to the presentation layer for
// the given phase: a rotating strip of up to 4 rows while playing, the
// top 10 on game over. The strip does not wrap; it just comes up short
// when windowStart runs past the end.
func Window(b Board, phase Phase, windowStart int) Board {
	switch phase {
	case PhasePlaying:
		start := windowStart
		if start < 0 {
			start = 0
		}
		if start > len(b) {
			start = len(b)
		}
		end := start + playingRows
		if end > len(b) {
			end = len(b)
		}
		return b[start:end]
	case PhaseGameOver:
		end := gameOverRows
		if end > len(b) {
			end = len(b)
		}
		return b[:end]
	default:
		return nil
	}
}

// AdvanceWindow steps the rotating strip one row, wrapping over the
// rotatable range of a board with n entries.
func AdvanceWindow(windowStart, n int) int {
	m := n - (playingRows - 1)
	if m < 1 {
		m = 1
	}
	return (windowStart + 1) % m
}
