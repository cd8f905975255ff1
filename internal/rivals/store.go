package rivals

// LiveCap bounds the board size under live insertion.
const LiveCap = 15

// Store owns the current board for the lifetime of one phase. Every
// mutation builds the next board off to the side and swaps it in whole,
// so a reader holding a copy never observes a half-inserted sequence.
type Store struct {
	board Board
}

func NewStore() *Store {
	return &Store{board: Board{}}
}

// Replace swaps the owned board wholesale. Used on phase transitions.
func (s *Store) Replace(b Board) {
	next := make(Board, len(b))
	copy(next, b)
	sortDesc(next)
	s.board = next
}

// InsertLive adds one mid-run entry. The candidate set is the new entry
// plus the first LiveCap-1 entries of the prior order, so eviction is by
// prior position rather than by score, and the board never exceeds
// LiveCap afterwards.
func (s *Store) InsertLive(e Entry) {
	e.Score = clampScore(e.Score)
	keep := len(s.board)
	if keep > LiveCap-1 {
		keep = LiveCap - 1
	}
	next := make(Board, 0, keep+1)
	next = append(next, e)
	next = append(next, s.board[:keep]...)
	sortDesc(next)
	s.board = next
}

// InsertPlayer merges the player's own entry at run end. No trimming:
// the board may grow past LiveCap here.
func (s *Store) InsertPlayer(e Entry) {
	e.Score = clampScore(e.Score)
	next := make(Board, 0, len(s.board)+1)
	next = append(next, s.board...)
	next = append(next, e)
	sortDesc(next)
	s.board = next
}

func (s *Store) Len() int { return len(s.board) }

// Board returns a copy of the owned board, never an alias of it.
func (s *Store) Board() Board {
	out := make(Board, len(s.board))
	copy(out, s.board)
	return out
}
