package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goqlearn/environment/gridworld"
)

var arrows = map[gridworld.Action]string{
	gridworld.Up:    "^",
	gridworld.Down:  "v",
	gridworld.Left:  "<",
	gridworld.Right: ">",
}

// PrintPolicy writes the greedy action of every cell of g as an arrow.
// Goals, pits and walls are drawn with their layout characters, and
// cells without a greedy action with a dot. Colours are used if colors
// is true.
func PrintPolicy(w io.Writer, g *gridworld.GridWorld,
	greedy func(gridworld.Cell) (gridworld.Action, bool), colors bool) error {
	au := aurora.NewAurora(colors)
	r, c := g.Dims()

	var b strings.Builder
	for row := 0; row < r; row++ {
		for col := 0; col < c; col++ {
			cell := gridworld.Cell{Row: row, Col: col}

			switch kind := g.At(cell); kind {
			case gridworld.Goal:
				b.WriteString(au.Green(string(kind)).String())
			case gridworld.Pit:
				b.WriteString(au.Red(string(kind)).String())
			case gridworld.Wall:
				b.WriteString(au.Blue(string(kind)).String())
			default:
				if a, ok := greedy(cell); ok {
					b.WriteString(au.Yellow(arrows[a]).String())
				} else {
					b.WriteString(".")
				}
			}
			if col < c-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// FormatValues formats a matrix of state values for printing
func FormatValues(values mat.Matrix) string {
	fa := mat.Formatted(values, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%.3f", fa)
}
