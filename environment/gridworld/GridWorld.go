// Package gridworld implements 2D gridworld environments with discrete
// cells as states
package gridworld

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goqlearn/environment"
	"github.com/samuelfneumann/goqlearn/timestep"
)

var (
	// ErrIllegalAction is returned when stepping with an action that is
	// not legal in the current cell
	ErrIllegalAction = errors.New("illegal action")

	// ErrEpisodeOver is returned when stepping after the episode ended
	ErrEpisodeOver = errors.New("episode is over, call Reset")
)

// Cell is a (row, column) position in a GridWorld. Row 0 is the top
// row of the layout.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Action is a move in a GridWorld
type Action int

const (
	Up Action = iota
	Down
	Left
	Right
)

// Actions lists every action in the order LegalActions reports them
var Actions = []Action{Up, Down, Left, Right}

func (a Action) String() string {
	switch a {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// offset returns the change in row and column caused by the action
func (a Action) offset() (int, int) {
	switch a {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// GridWorld represents a deterministic gridworld environment.
//
// Moving off the grid or into a wall is not a legal action. Goal and pit
// cells are terminal and have no legal actions.
type GridWorld struct {
	Rewards
	environment.Starter[Cell]

	grid     [][]byte
	r, c     int
	discount float64

	position    Cell
	currentStep timestep.TimeStep[Cell]
}

// New creates a new GridWorld from a layout, a reward scheme and a
// discount factor. Starting cells are sampled uniformly from the S
// cells of the layout using seed. The first TimeStep is returned with
// the GridWorld.
func New(layout []string, rewards Rewards, discount float64,
	seed uint64) (*GridWorld, timestep.TimeStep[Cell], error) {
	grid, starts, err := parse(layout)
	if err != nil {
		return nil, timestep.TimeStep[Cell]{}, fmt.Errorf("new: %w", err)
	}

	starter, err := environment.NewCategoricalStarter(starts, seed)
	if err != nil {
		return nil, timestep.TimeStep[Cell]{}, fmt.Errorf("new: %w", err)
	}

	g := &GridWorld{
		Rewards:  rewards,
		Starter:  starter,
		grid:     grid,
		r:        len(grid),
		c:        len(grid[0]),
		discount: discount,
	}

	step, err := g.Reset()
	return g, step, err
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.r, g.c
}

// Position returns the current cell of the agent
func (g *GridWorld) Position() Cell {
	return g.position
}

// At returns the layout character of cell
func (g *GridWorld) At(cell Cell) byte {
	if !g.inBounds(cell) {
		return Wall
	}
	return g.grid[cell.Row][cell.Col]
}

// Terminal returns whether an episode ends upon entering cell
func (g *GridWorld) Terminal(cell Cell) bool {
	kind := g.At(cell)
	return kind == Goal || kind == Pit
}

// Cells returns every non-wall cell in row-major order
func (g *GridWorld) Cells() []Cell {
	var cells []Cell
	for row := 0; row < g.r; row++ {
		for col := 0; col < g.c; col++ {
			if g.grid[row][col] != Wall {
				cells = append(cells, Cell{row, col})
			}
		}
	}
	return cells
}

// LegalActions returns the actions that move the agent from cell to an
// adjacent non-wall cell. Terminal cells and walls have no legal
// actions.
func (g *GridWorld) LegalActions(cell Cell) []Action {
	if g.At(cell) == Wall || g.Terminal(cell) {
		return nil
	}

	actions := make([]Action, 0, len(Actions))
	for _, a := range Actions {
		if g.At(move(cell, a)) != Wall {
			actions = append(actions, a)
		}
	}
	return actions
}

// Reset resets the environment to a starting cell
func (g *GridWorld) Reset() (timestep.TimeStep[Cell], error) {
	g.position = g.Start()

	step := timestep.New(timestep.First, 0, g.discount, g.position, 0)
	g.currentStep = step
	return step, nil
}

// Step takes one step in the environment. Stepping with an action that
// is not legal in the current cell returns ErrIllegalAction and leaves
// the environment unchanged.
func (g *GridWorld) Step(action Action) (timestep.TimeStep[Cell], bool, error) {
	if g.currentStep.Last() {
		return timestep.TimeStep[Cell]{}, true, ErrEpisodeOver
	}
	if !g.legal(g.position, action) {
		return timestep.TimeStep[Cell]{}, false, fmt.Errorf("step: %v in %v: %w",
			action, g.position, ErrIllegalAction)
	}

	next := move(g.position, action)
	g.position = next

	stepType := timestep.Mid
	if g.Terminal(next) {
		stepType = timestep.Last
	}
	reward := g.Reward(g.At(next))

	step := timestep.New(stepType, reward, g.discount, next,
		g.currentStep.Number+1)
	g.currentStep = step

	return step, step.Last(), nil
}

// CurrentTimeStep returns the last TimeStep produced
func (g *GridWorld) CurrentTimeStep() timestep.TimeStep[Cell] {
	return g.currentStep
}

// ValueGrid returns an r × c matrix holding value(cell) for each
// non-wall cell. Walls hold 0.
func (g *GridWorld) ValueGrid(value func(Cell) float64) *mat.Dense {
	values := mat.NewDense(g.r, g.c, nil)
	for _, cell := range g.Cells() {
		values.Set(cell.Row, cell.Col, value(cell))
	}
	return values
}

func (g *GridWorld) String() string {
	var b strings.Builder
	for row := 0; row < g.r; row++ {
		for col := 0; col < g.c; col++ {
			if (Cell{row, col}) == g.position {
				b.WriteByte('@')
			} else {
				b.WriteByte(g.grid[row][col])
			}
		}
		if row < g.r-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (g *GridWorld) legal(cell Cell, action Action) bool {
	for _, a := range g.LegalActions(cell) {
		if a == action {
			return true
		}
	}
	return false
}

func (g *GridWorld) inBounds(cell Cell) bool {
	return cell.Row >= 0 && cell.Row < g.r && cell.Col >= 0 &&
		cell.Col < g.c
}

func move(cell Cell, action Action) Cell {
	dr, dc := action.offset()
	return Cell{cell.Row + dr, cell.Col + dc}
}
