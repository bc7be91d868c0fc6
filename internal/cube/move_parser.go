package cube

import (
	"fmt"
	"strings"
)

// ParseMove parses a single move token such as "R", "R'", or "R2".
func ParseMove(token string) (Move, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Move{}, fmt.Errorf("cube: empty move token")
	}

	letter := token[0]
	suffix := token[1:]

	var face Face
	switch letter {
	case 'U', 'u':
		face = Up
	case 'D', 'd':
		face = Down
	case 'L', 'l':
		face = Left
	case 'R', 'r':
		face = Right
	case 'F', 'f':
		face = Front
	case 'B', 'b':
		face = Back
	default:
		return Move{}, fmt.Errorf("cube: unknown face letter %q in move %q", letter, token)
	}

	turn := CW
	switch suffix {
	case "":
		turn = CW
	case "'":
		turn = CCW
	case "2":
		turn = Double
	default:
		return Move{}, fmt.Errorf("cube: unrecognized move modifier %q in move %q", suffix, token)
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a sequence of already-split move tokens, one move
// per element.
func ParseMoves(tokens []string) ([]Move, error) {
	moves := make([]Move, 0, len(tokens))
	for _, tok := range tokens {
		mv, err := ParseMove(tok)
		if err != nil {
			return nil, err
		}
		moves = append(moves, mv)
	}
	return moves, nil
}

// ParseScramble parses a whitespace-separated move string, e.g.
// "R U R' U'", ignoring any run of extra whitespace between tokens.
func ParseScramble(s string) ([]Move, error) {
	fields := strings.Fields(s)
	return ParseMoves(fields)
}

// FormatMoves renders a sequence of moves back to standard notation,
// space-separated.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, mv := range moves {
		parts[i] = mv.String()
	}
	return strings.Join(parts, " ")
}
