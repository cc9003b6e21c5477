package pathbuilder

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gopikchr/pikchr/geom"
)

func TestMoveByAccumulates(t *testing.T) {
	b := New(geom.Point{})
	b.MoveBy(geom.East, geom.Inches(1))
	b.Then()
	b.MoveBy(geom.North, geom.Inches(1))
	got := b.Vertices()
	want := []geom.Point{{}, {X: geom.Inches(1)}, {X: geom.Inches(1), Y: geom.Inches(1)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Vertices() mismatch (-want +got):\n%s", diff)
	}
}

func TestMoveByMergesCollinearWithoutThen(t *testing.T) {
	b := New(geom.Point{})
	b.MoveBy(geom.East, geom.Inches(1))
	b.MoveBy(geom.East, geom.Inches(1)) // no Then() -> merges
	got := b.Vertices()
	if len(got) != 2 {
		t.Fatalf("len(Vertices) = %d, want 2 (merged): %v", len(got), got)
	}
	if got[1] != (geom.Point{X: geom.Inches(2)}) {
		t.Errorf("merged endpoint = %v, want (2,0)", got[1])
	}
}

func TestClose(t *testing.T) {
	b := New(geom.Point{})
	b.MoveBy(geom.East, geom.Inches(1))
	b.Then()
	b.MoveBy(geom.North, geom.Inches(1))
	b.Close()
	got := b.Vertices()
	if got[len(got)-1] != got[0] {
		t.Errorf("closed path should end where it started")
	}
	if !b.IsClosed() {
		t.Errorf("IsClosed() = false")
	}
}

func TestChopEndpoints(t *testing.T) {
	b := New(geom.Point{})
	b.MoveBy(geom.East, geom.Inches(2))
	start := geom.Point{X: geom.Inches(0.25)}
	end := geom.Point{X: geom.Inches(1.75)}
	b.ChopEndpoints(&start, &end)
	got := b.Vertices()
	if got[0] != start || got[len(got)-1] != end {
		t.Errorf("chop did not apply: %v", got)
	}
}
