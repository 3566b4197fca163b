package pulse

import "testing"

type countingReleaser struct {
	count int
}

func (c *countingReleaser) Release() {
	c.count++
}

func TestReleaseGuardReleasesOnce(t *testing.T) {
	var r countingReleaser

	guard := NewReleaseGuard(&r)
	guard.Release()
	guard.Release()

	if r.count != 1 {
		t.Fatalf("expected exactly one release, got %d", r.count)
	}
}
