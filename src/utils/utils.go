package utils

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"liftsim/src/types"
)

const queueWidth = 10

// ClearScreen moves the cursor home and clears the terminal.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// Render draws the building top floor first. Each floor shows its queue as a bar of
// queueWidth cells with one '*' per waiting passenger, its call and order lamps, and an
// arrow at the cabin.
func Render(w io.Writer, f types.Frame) {
	var b strings.Builder
	s := f.State
	width := len(strconv.Itoa(len(s.Waiting) - 1))

	fmt.Fprintf(&b, "Time: %d", f.Time)
	if f.Paused {
		b.WriteString("  [paused]")
	}
	b.WriteString("\n")

	for floor := len(s.Waiting) - 1; floor >= 0; floor-- {
		fmt.Fprintf(&b, "%*d: %s |%s%s", width, floor, queueBar(s.Waiting[floor]),
			lamp(s.Calls[floor], 'C'), lamp(s.Orders[floor], 'O'))
		if floor == s.Floor {
			b.WriteString(" <-")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "State: %s", s.Phase)
	if s.DoorsOpen {
		b.WriteString(" (doors open)")
	}
	b.WriteString("\n")
	b.WriteString("Target: ")
	if s.Target != types.NoTarget {
		b.WriteString(strconv.Itoa(s.Target))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Cabin: %d\n", len(s.Cabin))
	b.WriteString("Passengers:")
	for _, dest := range s.Cabin {
		fmt.Fprintf(&b, " %d", dest)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Delivered: %d\n", s.Delivered)
	b.WriteString("ETA:")
	for _, floor := range sortedKeys(f.ETA) {
		fmt.Fprintf(&b, " %d:%d", floor, f.ETA[floor])
	}
	b.WriteString("\n")

	io.WriteString(w, b.String())
}

// Queues longer than the bar fill it completely.
func queueBar(waiting int) string {
	stars := min(waiting, queueWidth)
	return strings.Repeat("-", queueWidth-stars) + strings.Repeat("*", stars)
}

func lamp(on bool, mark rune) string {
	if on {
		return " " + string(mark)
	}
	return "  "
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
