package progressbar

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManualProgressBar(t *testing.T) {
	var buf bytes.Buffer
	p := NewManualProgressBar(&buf, 10, 4)

	assert.Equal(t, 0.0, p.Progress())
	for i := 0; i < 6; i++ {
		p.Increment()
	}
	assert.Equal(t, 1.0, p.Progress())
	assert.True(t, strings.HasPrefix(p.String(), "|"+strings.Repeat("█", 10)+"|"))
	assert.Contains(t, p.String(), "100.00%")

	p.Display()
	p.Close()
	assert.Contains(t, buf.String(), "100.00%")
}

func TestManualProgressBarHalf(t *testing.T) {
	p := NewManualProgressBar(&bytes.Buffer{}, 10, 4)
	p.Increment()
	p.Increment()

	assert.Equal(t, 0.5, p.Progress())
	assert.True(t, strings.HasPrefix(p.String(),
		"|"+strings.Repeat("█", 5)+strings.Repeat(" ", 5)+"|"))
}
