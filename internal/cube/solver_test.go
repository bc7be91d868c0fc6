package cube

import "testing"

func TestEstimatedStates(t *testing.T) {
	tests := []struct {
		depth int
		want  int
	}{
		{0, 1},
		{1, 12},
		{2, 144},
		{5, maxEstimatedStates}, // 12^5 = 248832 is over the cap
		{20, maxEstimatedStates},
	}

	for _, tt := range tests {
		if got := estimatedStates(tt.depth); got != tt.want {
			t.Errorf("estimatedStates(%d) = %d, want %d", tt.depth, got, tt.want)
		}
	}
}

func TestEstimatedStatesNeverExceedsCap(t *testing.T) {
	for depth := 0; depth <= 20; depth++ {
		if got := estimatedStates(depth); got > maxEstimatedStates {
			t.Errorf("estimatedStates(%d) = %d, exceeds cap %d", depth, got, maxEstimatedStates)
		}
	}
}

func TestSolveAlreadySolved(t *testing.T) {
	for _, mode := range []Mode{ColorOnly, FullyOriented} {
		result := Solve(Solved(), DefaultMaxDepthColorOnly, mode)
		if !result.Found {
			t.Fatalf("mode %v: Solve(Solved()) should find a solution", mode)
		}
		if len(result.Moves) != 0 {
			t.Errorf("mode %v: Solve(Solved()) should return an empty solution, got %v", mode, result.Moves)
		}
	}
}

func TestSolveColorOnlySingleMoveScramble(t *testing.T) {
	for _, mv := range AllMoves() {
		t.Run(mv.String(), func(t *testing.T) {
			scrambled := ApplyMove(Solved(), mv)
			result := Solve(scrambled, DefaultMaxDepthColorOnly, ColorOnly)
			if !result.Found {
				t.Fatalf("no solution found for single move %v", mv)
			}
			final := ApplyMoves(scrambled, result.Moves)
			if !final.IsColorSolved() {
				t.Errorf("applying solution %v did not color-solve the cube", result.Moves)
			}
			if len(result.Moves) != 1 {
				t.Errorf("single-move scramble %v solved in %d moves, want 1", mv, len(result.Moves))
			}
		})
	}
}

func TestSolveFullyOrientedSingleMoveScramble(t *testing.T) {
	for _, mv := range AllMoves() {
		t.Run(mv.String(), func(t *testing.T) {
			scrambled := ApplyMove(Solved(), mv)
			result := Solve(scrambled, DefaultMaxDepthFullyOriented, FullyOriented)
			if !result.Found {
				t.Fatalf("no fully-oriented solution found for single move %v", mv)
			}
			final := ApplyMoves(scrambled, result.Moves)
			if !IsFullySolved(final) {
				t.Errorf("applying solution %v did not reach a fully-oriented goal", result.Moves)
			}
		})
	}
}

func TestSolveNoSolutionWithinDepthZero(t *testing.T) {
	scrambled := ApplyMove(Solved(), Move{Right, CW})
	result := Solve(scrambled, 0, ColorOnly)
	if result.Found {
		t.Error("Solve() with maxDepth 0 should not find a solution for a scrambled cube")
	}
	if result.Moves != nil {
		t.Errorf("an unfound Solution should have nil Moves, got %v", result.Moves)
	}
}

func TestSolveMultiMoveScrambleColorOnly(t *testing.T) {
	scrambled, moves := ScrambleSeeded(Solved(), 6, newTestRand(5))
	result := Solve(scrambled, DefaultMaxDepthColorOnly, ColorOnly)
	if !result.Found {
		t.Fatalf("no solution found for scramble %v", moves)
	}
	final := ApplyMoves(scrambled, result.Moves)
	if !final.IsColorSolved() {
		t.Errorf("solution %v did not color-solve scramble %v", result.Moves, moves)
	}
}

func TestSolveNeverImmediatelyUndoesPreviousMove(t *testing.T) {
	scrambled, _ := ScrambleSeeded(Solved(), 6, newTestRand(21))
	result := Solve(scrambled, DefaultMaxDepthColorOnly, ColorOnly)
	if !result.Found {
		t.Fatal("expected a solution")
	}
	for i := 1; i < len(result.Moves); i++ {
		if result.Moves[i] == result.Moves[i-1].Inverse() {
			t.Errorf("move %d (%v) immediately undoes move %d (%v)", i, result.Moves[i], i-1, result.Moves[i-1])
		}
	}
}

func TestSolveWithProgressReportsFinalCompletion(t *testing.T) {
	scrambled, _ := ScrambleSeeded(Solved(), 4, newTestRand(2))
	progress := make(chan float32, 64)
	result := SolveWithProgress(scrambled, DefaultMaxDepthColorOnly, ColorOnly, progress)
	close(progress)

	if !result.Found {
		t.Fatal("expected a solution")
	}

	var last float32 = -1
	for v := range progress {
		last = v
	}
	if last != 1.0 {
		t.Errorf("last progress update = %v, want 1.0", last)
	}
}

func TestSolveWithProgressNilChannelIsSafe(t *testing.T) {
	scrambled, _ := ScrambleSeeded(Solved(), 4, newTestRand(8))
	result := SolveWithProgress(scrambled, DefaultMaxDepthColorOnly, ColorOnly, nil)
	if !result.Found {
		t.Error("expected a solution even with a nil progress channel")
	}
}
