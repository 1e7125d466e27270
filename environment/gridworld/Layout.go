package gridworld

import (
	"errors"
	"fmt"
)

// Layout characters
const (
	Free  byte = '.'
	Start byte = 'S'
	Goal  byte = 'G'
	Pit   byte = 'X'
	Wall  byte = '#'
)

// ErrInvalidLayout is returned when a layout cannot be parsed
var ErrInvalidLayout = errors.New("invalid layout")

// CliffWalking is the 4 × 12 cliff walking layout
var CliffWalking = []string{
	"............",
	"............",
	"............",
	"SXXXXXXXXXXG",
}

// parse parses a layout into a grid and the list of its starting cells
func parse(layout []string) ([][]byte, []Cell, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, nil, fmt.Errorf("empty layout: %w", ErrInvalidLayout)
	}

	cols := len(layout[0])
	grid := make([][]byte, len(layout))
	var starts []Cell

	for row, line := range layout {
		if len(line) != cols {
			return nil, nil, fmt.Errorf("row %d has %d columns, want %d: %w",
				row, len(line), cols, ErrInvalidLayout)
		}

		grid[row] = []byte(line)
		for col := 0; col < cols; col++ {
			switch line[col] {
			case Start:
				starts = append(starts, Cell{row, col})
			case Free, Goal, Pit, Wall:
			default:
				return nil, nil, fmt.Errorf("unknown cell %q at (%d, %d): %w",
					line[col], row, col, ErrInvalidLayout)
			}
		}
	}

	if len(starts) == 0 {
		return nil, nil, fmt.Errorf("no start cell: %w", ErrInvalidLayout)
	}
	return grid, starts, nil
}
