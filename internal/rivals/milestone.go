package rivals

// NextMilestone returns the index of the first threshold above best and
// the distance remaining to it. ok is false once best meets or exceeds
// every threshold. thresholds must be ascending.
func NextMilestone(best int, thresholds []int) (idx, remaining int, ok bool) {
	for i, t := range thresholds {
		if t > best {
			return i, t - best, true
		}
	}
	return 0, 0, false
}

// NewlyUnlocked returns the index of the first tier whose threshold lies
// in (prevBest, newBest], i.e. a tier the just-ended run crossed.
func NewlyUnlocked(prevBest, newBest int, thresholds []int) (idx int, ok bool) {
	for i, t := range thresholds {
		if t > prevBest && t <= newBest {
			return i, true
		}
	}
	return 0, false
}
