package cube

import "testing"

func TestCanonicalKeyColorOnlyIgnoresOrientation(t *testing.T) {
	a := Solved()
	b := Solved()
	b.Stickers[0].Orientation = 2

	if CanonicalKey(a, ColorOnly) != CanonicalKey(b, ColorOnly) {
		t.Error("ColorOnly canonical keys should match regardless of orientation")
	}
}

func TestCanonicalKeyFullyOrientedDistinguishesOrientation(t *testing.T) {
	a := Solved()
	b := Solved()
	b.Stickers[0].Orientation = 2

	if CanonicalKey(a, FullyOriented) == CanonicalKey(b, FullyOriented) {
		t.Error("FullyOriented canonical keys should distinguish orientation")
	}
}

func TestIsSolvedColorOnly(t *testing.T) {
	s := Solved().Normalized()
	if !IsSolved(s, ColorOnly) {
		t.Error("color-normalized solved cube should satisfy IsSolved under ColorOnly")
	}
}

func TestIsSolvedFullyOrientedRequiresGoalMembership(t *testing.T) {
	s := Solved().Normalized()
	if IsSolved(s, FullyOriented) {
		t.Error("a color-only-normalized state should not satisfy IsSolved under FullyOriented")
	}
	if !IsSolved(Solved(), FullyOriented) {
		t.Error("the canonical solved state should satisfy IsSolved under FullyOriented")
	}
}
