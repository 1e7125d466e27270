package gridworld

// Rewards is the reward scheme of a GridWorld: the reward received
// depends only on the kind of cell entered
type Rewards struct {
	Step float64 `yaml:"step" json:"step"` // entering a free or start cell
	Goal float64 `yaml:"goal" json:"goal"`
	Pit  float64 `yaml:"pit" json:"pit"`
}

// DefaultRewards penalizes each step and rewards reaching the goal
var DefaultRewards = Rewards{Step: -0.1, Goal: 1.0, Pit: -1.0}

// Reward returns the reward for entering a cell of the given kind
func (r Rewards) Reward(kind byte) float64 {
	switch kind {
	case Goal:
		return r.Goal
	case Pit:
		return r.Pit
	default:
		return r.Step
	}
}
