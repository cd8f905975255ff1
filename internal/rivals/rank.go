package rivals

// Rank returns the 1-based position of the first entry named name.
// ok is false when the board holds no such entry.
func Rank(b Board, name string) (rank int, ok bool) {
	for i, e := range b {
		if e.Name == name {
			return i + 1, true
		}
	}
	return 0, false
}
