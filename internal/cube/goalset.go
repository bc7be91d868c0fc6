package cube

import "sync"

// goalRotations are whole-cube rotation generators: applying any one
// pair of moves spins the whole cube in place (U face turns one way,
// D turns the opposite way, etc.) without disturbing which stickers
// are grouped on which face.
var goalRotations = [3][2]Move{
	{{Up, CW}, {Down, CCW}},
	{{Right, CW}, {Left, CCW}},
	{{Front, CW}, {Back, CCW}},
}

var (
	goalStatesOnce  sync.Once
	cachedGoalStates []State
)

// GoalStates returns the 24 fully-oriented states that represent
// "solved" up to whole-cube rotation - one for every way the solved
// cube can be held in the hand. The set is generated once and cached.
func GoalStates() []State {
	goalStatesOnce.Do(func() {
		cachedGoalStates = generateGoalStates()
	})
	return cachedGoalStates
}

func generateGoalStates() []State {
	base := Solved()

	visited := make(map[State]struct{})
	var states []State
	queue := []State{base}
	visited[base.Normalized()] = struct{}{}
	states = append(states, base)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, rotation := range goalRotations {
			next := current
			for _, mv := range rotation {
				next = ApplyMove(next, mv)
			}

			key := next.Normalized()
			if _, seen := visited[key]; seen {
				continue
			}
			visited[key] = struct{}{}
			states = append(states, next)
			queue = append(queue, next)
		}
	}

	oriented := make([]State, len(states))
	for i, s := range states {
		oriented[i] = s.WithClockwiseOrientations()
	}
	return oriented
}

// IsFullySolved reports whether s is exactly one of the 24 goal
// states: color-solved and oriented the way a real solved cube would
// be after some whole-cube rotation.
func IsFullySolved(s State) bool {
	for _, goal := range GoalStates() {
		if s == goal {
			return true
		}
	}
	return false
}
