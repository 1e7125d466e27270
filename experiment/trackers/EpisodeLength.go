package trackers

import (
	"github.com/samuelfneumann/goqlearn/timestep"
)

// EpisodeLength tracks and saves the lengths of episodes in an
// experiment. Lengths are recorded under the same rules as Return.
type EpisodeLength[S any] struct {
	inEpisode      bool
	currentLength  int
	episodeLengths []float64
	filename       string
}

// NewEpisodeLength returns a new EpisodeLength tracker which will save
// its data at the specified location filename
func NewEpisodeLength[S any](filename string) *EpisodeLength[S] {
	return &EpisodeLength[S]{filename: filename}
}

// Track tracks the episode lengths in an experiment
func (e *EpisodeLength[S]) Track(t timestep.TimeStep[S]) {
	if t.First() {
		if e.inEpisode {
			e.flush()
		}
		e.inEpisode = true
		e.currentLength = 0
		return
	}

	e.currentLength = t.Number
	if t.Last() {
		e.flush()
	}
}

func (e *EpisodeLength[S]) flush() {
	e.episodeLengths = append(e.episodeLengths, float64(e.currentLength))
	e.inEpisode = false
}

// Data returns the lengths of all recorded episodes
func (e *EpisodeLength[S]) Data() []float64 {
	return append([]float64(nil), e.episodeLengths...)
}

// Save saves the data tracked by the EpisodeLength Tracker to disk
func (e *EpisodeLength[S]) Save() error {
	return save(e.filename, e.episodeLengths)
}
