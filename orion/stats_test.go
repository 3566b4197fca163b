package orion

import (
	"testing"
	"time"
)

func TestFrameTimesTick(t *testing.T) {
	current := time.Unix(0, 0)

	times := FrameTimes{now: func() time.Time { return current }}

	var reports int
	for range 120 {
		if times.Tick() {
			reports++
		}

		current = current.Add(16 * time.Millisecond)
	}

	if times.FrameCount != 120 {
		t.Fatalf("expected 120 frames, got %d", times.FrameCount)
	}

	if reports != 2 {
		t.Fatalf("expected a report every 60 frames, got %d", reports)
	}

	if times.Delta != 16*time.Millisecond {
		t.Fatalf("expected delta of 16ms, got %s", times.Delta)
	}

	if fps := times.FPS(); fps < 62 || fps > 63 {
		t.Fatalf("expected about 62.5 fps, got %f", fps)
	}
}

func TestFrameTimesFPSWithoutFrames(t *testing.T) {
	var times FrameTimes
	if times.FPS() != 0 {
		t.Fatalf("expected 0 fps before the first frame")
	}
}
