package checkpointer

// nStep implements checkpointing every N episodes
type nStep struct {
	interval int
	object   Serializable // Object to save

	// filename returns the string filename of the file to save the object
	// in.
	//
	// If each serialized object should be saved in a separate file with
	// each file having an incremented number as a suffix (e.g.
	// file1.bin, file2.bin, ..., fileK.bin), then simply use the
	// static function FilenameEnumerator, which will return a function
	// that will enumerate filenames.
	//
	// Otherwise, if each serialized object should be saved in a
	// separate file, but the filename does not matter, use the
	// static function FileTimer to generate the required naming
	// function. For example:
	//
	// n := NewNStep(10, object, FileTimer("filename", ".bin"))
	filename func() string
}

// NewNStep returns a checkpointer that checkpoints every n episodes. If
// n < 1, the checkpointer never saves.
func NewNStep(n int, object Serializable,
	filename func() string) Checkpointer {
	return &nStep{
		interval: n,
		object:   object,
		filename: filename,
	}
}

// Checkpoint saves the tracked object if episode is a multiple of the
// interval
func (n *nStep) Checkpoint(episode int) error {
	if n.interval < 1 || episode%n.interval != 0 {
		return nil
	}
	return n.object.Save(n.filename())
}

// FixedName returns a function which always returns filename, so that
// each checkpoint overwrites the last
func FixedName(filename string) func() string {
	return func() string { return filename }
}
