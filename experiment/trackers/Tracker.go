// Package trackers implements Trackers, which track and save data in an
// experiment
package trackers

import (
	"encoding/gob"
	"fmt"
	"os"

	"gonum.org/v1/gonum/stat"

	ts "github.com/samuelfneumann/goqlearn/timestep"
)

// Tracker keeps track of experiment data and saves the data after the
// experiment has finished
type Tracker[S any] interface {
	Track(t ts.TimeStep[S])
	Save() error
}

// Data is implemented by Trackers that expose the data tracked so far
type Data interface {
	Data() []float64
}

// LoadData loads and returns the data saved by a Tracker
func LoadData(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loadData: could not open data file: %w", err)
	}
	defer file.Close()

	var data []float64
	if err := gob.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("loadData: could not decode data: %w", err)
	}
	return data, nil
}

// save gob encodes data to filename
func save(filename string, data []float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save: could not open save file: %w", err)
	}

	if err := gob.NewEncoder(file).Encode(data); err != nil {
		file.Close()
		return fmt.Errorf("save: could not encode data: %w", err)
	}
	return file.Close()
}

// Summary returns the mean and sample standard deviation of the last n
// values of data. If n <= 0 or exceeds len(data), all of data is used.
func Summary(data []float64, n int) (mean, std float64) {
	if len(data) == 0 {
		return 0, 0
	}
	if n > 0 && n < len(data) {
		data = data[len(data)-n:]
	}
	return stat.MeanStdDev(data, nil)
}
