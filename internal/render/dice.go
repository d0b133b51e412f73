package render

import "strings"

// DiceLines is the height of one die face
const DiceLines = 5

var faces = map[int][DiceLines]string{
	1: {"┌───────┐", "│       │", "│   ●   │", "│       │", "└───────┘"},
	2: {"┌───────┐", "│ ●     │", "│       │", "│     ● │", "└───────┘"},
	3: {"┌───────┐", "│ ●     │", "│   ●   │", "│     ● │", "└───────┘"},
	4: {"┌───────┐", "│ ●   ● │", "│       │", "│ ●   ● │", "└───────┘"},
	5: {"┌───────┐", "│ ●   ● │", "│   ●   │", "│ ●   ● │", "└───────┘"},
	6: {"┌───────┐", "│ ●   ● │", "│ ●   ● │", "│ ●   ● │", "└───────┘"},
}

// DieFace returns the box art for a face; anything outside 1..6 draws a one
func DieFace(n int) []string {
	face, ok := faces[n]
	if !ok {
		face = faces[1]
	}
	return face[:]
}

// TwoDice draws two faces side by side, one string per line
func TwoDice(a, b int) []string {
	left, right := DieFace(a), DieFace(b)

	lines := make([]string, DiceLines)
	for i := range lines {
		lines[i] = left[i] + "   " + right[i]
	}
	return lines
}

// Join renders lines as a block terminated by a newline
func Join(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}
