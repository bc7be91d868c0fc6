package cube

import "math/rand"

// Scramble returns start after n uniformly random quarter-turn moves.
func Scramble(start State, n int) (State, []Move) {
	return ScrambleSeeded(start, n, rand.New(rand.NewSource(rand.Int63())))
}

// ScrambleSeeded is Scramble with a caller-supplied source of
// randomness, so tests can produce a reproducible scramble.
func ScrambleSeeded(start State, n int, rng *rand.Rand) (State, []Move) {
	moves := AllMoves()
	applied := make([]Move, n)
	s := start
	for i := 0; i < n; i++ {
		mv := moves[rng.Intn(len(moves))]
		s = ApplyMove(s, mv)
		applied[i] = mv
	}
	return s, applied
}
