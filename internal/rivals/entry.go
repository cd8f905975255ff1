package rivals

import "sort"

// MinScore is the floor applied everywhere a score is synthesized or
// merged. Bad input (negative, zero) is clamped, never rejected.
const MinScore = 50

// PlayerName is the reserved identifier for the player's own entry.
const PlayerName = "You"

// Entry is one leaderboard record. Live marks an entry that just
// appeared mid-run so the client can highlight it.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Live  bool   `json:"live"`
}

// Board is the full ordered leaderboard at a point in time. Invariant:
// sorted by score descending after every mutation.
type Board []Entry

func clampScore(s int) int {
	if s < MinScore {
		return MinScore
	}
	return s
}

// sortDesc orders entries by score descending. The sort is stable, so
// entries with equal scores keep their insertion order across repeated
// sorts.
func sortDesc(b Board) {
	sort.SliceStable(b, func(i, j int) bool {
		return b[i].Score > b[j].Score
	})
}
