package cube

import "fmt"

// clockwisePattern is the orientation fingerprint every face carries on
// a fully-oriented, solved cube: reading a face's four slots in index
// order, a sticker's orientation equals clockwisePattern[slot].
var clockwisePattern = [4]int{1, 2, 0, 3}

// solvedColors assigns each face its solved color, in Face order:
// Up=White, Down=Yellow, Left=Green, Right=Blue, Front=Red, Back=Orange.
var solvedColors = [6]Color{White, Yellow, Green, Blue, Red, Orange}

// State is the whole state of a 2x2x2 cube: 24 fixed sticker slots,
// four per face, face-major (face F occupies Stickers[4*F:4*F+4]).
// State is a plain comparable value - it can be used directly as a
// map key or compared with ==, with no Hash method or wrapper type
// needed.
type State struct {
	Stickers [24]Sticker
}

// Solved returns the canonical fully-oriented solved cube: every face
// shows a single color, and every sticker's orientation matches the
// clockwise fingerprint for its slot.
func Solved() State {
	var s State
	for f := Face(0); f < 6; f++ {
		base := f.baseIndex()
		for slot := 0; slot < 4; slot++ {
			s.Stickers[base+slot] = Sticker{
				Color:       solvedColors[f],
				Orientation: clockwisePattern[slot],
			}
		}
	}
	return s
}

// FromColors builds a State from 24 sticker colors in face-major order.
// Orientation is reset to the clockwise fingerprint on every sticker
// (the board parser gets the same result by calling FromColors): colors
// alone never carry orientation information in from the outside.
func FromColors(colors [24]Color) (State, error) {
	if err := IsColorValid(colors); err != nil {
		return State{}, err
	}
	var s State
	for i, c := range colors {
		s.Stickers[i] = Sticker{Color: c}
	}
	return s.WithClockwiseOrientations(), nil
}

// Colors extracts the 24 sticker colors in face-major order, discarding
// orientation.
func (s State) Colors() [24]Color {
	var colors [24]Color
	for i, st := range s.Stickers {
		colors[i] = st.Color
	}
	return colors
}

// SetColor replaces the color of a single sticker and resets its
// orientation to zero, mirroring a single-facelet repaint.
func (s State) SetColor(index int, c Color) State {
	s.Stickers[index] = Sticker{Color: c, Orientation: 0}
	return s
}

// IsColorSolved reports whether every face shows a single uniform
// color, ignoring orientation.
func (s State) IsColorSolved() bool {
	for f := Face(0); f < 6; f++ {
		base := f.baseIndex()
		want := s.Stickers[base].Color
		for slot := 1; slot < 4; slot++ {
			if s.Stickers[base+slot].Color != want {
				return false
			}
		}
	}
	return true
}

// IsFullyOriented reports whether, in addition to being color-solved,
// every sticker's orientation matches the clockwise fingerprint for its
// slot.
func (s State) IsFullyOriented() bool {
	if !s.IsColorSolved() {
		return false
	}
	for f := Face(0); f < 6; f++ {
		base := f.baseIndex()
		for slot := 0; slot < 4; slot++ {
			if s.Stickers[base+slot].Orientation != clockwisePattern[slot] {
				return false
			}
		}
	}
	return true
}

// Normalized returns a copy of s with every sticker's orientation
// zeroed. It is the canonical key used by color-only search and
// equivalence checks: two states normalize to the same value exactly
// when they agree on color, regardless of orientation.
func (s State) Normalized() State {
	for i := range s.Stickers {
		s.Stickers[i].Orientation = 0
	}
	return s
}

// WithClockwiseOrientations returns a copy of s with every sticker's
// orientation reset to the clockwise fingerprint for its slot, colors
// unchanged. Re-seeding to this fixed pattern is how a color
// arrangement is turned into one specific fully-oriented representative
// of that arrangement.
func (s State) WithClockwiseOrientations() State {
	for f := Face(0); f < 6; f++ {
		base := f.baseIndex()
		for slot := 0; slot < 4; slot++ {
			s.Stickers[base+slot].Orientation = clockwisePattern[slot]
		}
	}
	return s
}

// ApplyOrientationSolution recovers full orientation information for s
// after a color-only solve. solution must be a Solution that, applied
// to a cube with s's color arrangement, reaches a color-solved state;
// ApplyOrientationSolution replays the inverse of that path from the
// goal state with the same colors as the state the solution reaches
// (any of the 24 whole-cube rotations, not only Solved()) to
// reconstruct the sticker permutation s was reached through, then
// copies orientation (never color) from that reconstruction onto s
// index by index.
//
// An error here means solution does not actually correspond to s's
// color arrangement - under correct use (solution produced by Solve
// against this exact s) the color comparison always succeeds.
func (s State) ApplyOrientationSolution(solution Solution) (State, error) {
	reached := ApplyMoves(s, solution.Moves).Colors()
	ref := Solved()
	for _, goal := range GoalStates() {
		if goal.Colors() == reached {
			ref = goal
			break
		}
	}
	for i := len(solution.Moves) - 1; i >= 0; i-- {
		ref = ApplyMove(ref, solution.Moves[i].Inverse())
	}

	result := s
	for i := range result.Stickers {
		if result.Stickers[i].Color != ref.Stickers[i].Color {
			return State{}, fmt.Errorf("internal error: color mismatch at index %d", i)
		}
		result.Stickers[i].Orientation = ref.Stickers[i].Orientation
	}
	return result, nil
}

// String renders the state using the board package's cross format is
// NOT done here - see internal/board.Format. String gives a compact
// debugging form only.
func (s State) String() string {
	out := make([]byte, 0, 24)
	for _, st := range s.Stickers {
		out = append(out, st.Color.Letter())
	}
	return string(out)
}
