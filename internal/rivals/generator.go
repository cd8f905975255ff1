package rivals

// Source is the uniform randomness the generator consumes.
// *math/rand.Rand satisfies it; tests inject seeded or fixed sources.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// DefaultBatch is how many rivals seed a fresh board.
const DefaultBatch = 15

const liveChance = 0.3

// Generate produces a batch of synthetic rivals anchored to
// referenceScore. Names are drawn without repetition within one call;
// count is capped at the pool size rather than retrying for a free
// name. The result is sorted by score descending.
func Generate(rng Source, referenceScore, count int) Board {
	base := 500.0
	if referenceScore > 100 {
		base = float64(referenceScore)
	}
	variance := base * 0.8

	if count > len(namePool) {
		count = len(namePool)
	}
	remaining := make([]string, len(namePool))
	copy(remaining, namePool)

	b := make(Board, 0, count)
	for i := 0; i < count; i++ {
		j := rng.Intn(len(remaining))
		name := remaining[j]
		remaining = append(remaining[:j], remaining[j+1:]...)

		score := clampScore(int(base + (rng.Float64()-0.3)*variance))
		b = append(b, Entry{
			Name:  name,
			Score: score,
			Live:  rng.Float64() < liveChance,
		})
	}
	sortDesc(b)
	return b
}

// LiveEntry synthesizes one mid-run rival anchored to the player's
// current score. Unlike Generate, names may repeat across calls.
func LiveEntry(rng Source, playerScore int) Entry {
	return Entry{
		Name:  namePool[rng.Intn(len(namePool))],
		Score: clampScore(int(float64(playerScore) * (0.5 + rng.Float64()))),
		Live:  true,
	}
}
