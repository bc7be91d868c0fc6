package cube

// Mode selects what two states must agree on to count as "the same"
// for goal detection and BFS state-map keys.
type Mode int

const (
	// ColorOnly treats two states as equal when every sticker's color
	// matches; orientation is ignored.
	ColorOnly Mode = iota
	// FullyOriented requires color and orientation to match exactly.
	FullyOriented
)

// CanonicalKey returns the value used as a map key / equality check
// for s under mode. Because State is itself a plain comparable value,
// canonicalizing is just zeroing out the fields the mode doesn't care
// about - no separate key type or hashing step is needed.
func CanonicalKey(s State, mode Mode) State {
	if mode == ColorOnly {
		return s.Normalized()
	}
	return s
}

// IsSolved reports whether s counts as solved under mode.
func IsSolved(s State, mode Mode) bool {
	if mode == ColorOnly {
		return s.IsColorSolved()
	}
	return IsFullySolved(s)
}
