package corpus

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressTracker_Increment(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10)

	tracker.Start(100)
	assert.True(t, tracker.started, "should be started")

	tracker.Increment(25)
	tracker.Increment(25)
	tracker.Increment(50)
	time.Sleep(time.Millisecond)

	elapsed := tracker.Elapsed()
	assert.Greater(t, elapsed, time.Duration(0), "elapsed time should be positive")

	output := buf.String()
	assert.Contains(t, output, "100/100", "should show completion")
	assert.Contains(t, output, "100.0%", "should show 100%")
}

func TestProgressTracker_CapsAtTotal(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 1)

	tracker.Start(3)
	tracker.Increment(5)

	assert.Equal(t, 3, tracker.Current())
}

func TestProgressTracker_NotStarted(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 1)

	tracker.Increment(1)
	tracker.Finish()

	assert.Equal(t, 0, tracker.Current())
	assert.Empty(t, buf.String(), "nothing is printed before Start")
	assert.Equal(t, time.Duration(0), tracker.Elapsed())
}

func TestProgressTracker_Finish(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10)

	tracker.Start(4)
	tracker.Increment(4)
	tracker.Finish()

	output := buf.String()
	assert.Contains(t, output, "4/4", "finish should report the final count")
	assert.Contains(t, output, "\n", "finish should print newline")
	assert.False(t, tracker.started)
}
