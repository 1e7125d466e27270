package trackers

import (
	ts "github.com/samuelfneumann/goqlearn/timestep"
)

// Return tracks and saves the episodic return in an experiment. When
// an environment returns a TimeStep, this Tracker will extract the
// reward and accumulate the return for each episode in the experiment.
//
// An episode's return is recorded when its last TimeStep is tracked,
// or, for episodes cut off before reaching a terminal state, when the
// first TimeStep of the following episode is tracked. The return of a
// final unfinished episode is not saved.
type Return[S any] struct {
	inEpisode      bool
	currentReturn  float64
	episodeReturns []float64
	filename       string
}

// NewReturn creates and returns a new *Return Tracker which saves to
// filename
func NewReturn[S any](filename string) *Return[S] {
	return &Return[S]{filename: filename}
}

// Track tracks the rewards seen on a timestep
func (r *Return[S]) Track(step ts.TimeStep[S]) {
	if step.First() {
		if r.inEpisode {
			r.flush()
		}
		r.inEpisode = true
		r.currentReturn = 0
		return
	}

	r.currentReturn += step.Reward
	if step.Last() {
		r.flush()
	}
}

// flush caches the current episode's return
func (r *Return[S]) flush() {
	r.episodeReturns = append(r.episodeReturns, r.currentReturn)
	r.currentReturn = 0
	r.inEpisode = false
}

// Data returns the returns of all recorded episodes
func (r *Return[S]) Data() []float64 {
	return append([]float64(nil), r.episodeReturns...)
}

// Save saves the data tracked by the Return Tracker to disk
func (r *Return[S]) Save() error {
	return save(r.filename, r.episodeReturns)
}
