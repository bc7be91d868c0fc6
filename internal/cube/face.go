package cube

// Face names one of the six faces of the cube and doubles as the base
// index into State.Stickers: face F occupies slots [4*F, 4*F+4).
type Face int

const (
	Up Face = iota
	Down
	Left
	Right
	Front
	Back
)

func (f Face) String() string {
	switch f {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Front:
		return "Front"
	case Back:
		return "Back"
	default:
		return "Unknown"
	}
}

// baseIndex returns the sticker index of this face's first slot.
func (f Face) baseIndex() int {
	return int(f) * 4
}
