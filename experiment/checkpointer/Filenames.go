package checkpointer

import (
	"fmt"
	"time"
)

// FilenameEnumerator returns a function which returns filenames with an
// increasing integer suffix: the first call returns
// name + (start+1) + extension, the next name + (start+2) + extension
// and so on.
func FilenameEnumerator(start int, name, extension string) func() string {
	i := start
	return func() string {
		i++
		return fmt.Sprintf("%v%v%v", name, i, extension)
	}
}

// FileTimer returns a function which returns name suffixed with the
// number of nanoseconds since January 1, 1970
func FileTimer(name, extension string) func() string {
	return func() string {
		return fmt.Sprintf("%v-%v%v", name, time.Now().UnixNano(), extension)
	}
}
