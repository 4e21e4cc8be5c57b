package caw

import "testing"

func TestFaceVisibleAtWorldBoundary(t *testing.T) {
	const edge = 3
	g := solidGrid(edge)
	for _, c := range ChunkCoords(edge) {
		for d := PlusX; d <= MinusZ; d++ {
			n := c.Add(d.Normal())
			outside := !g.Contains(n)
			if got := IsFaceVisible(g, c, d); got != outside {
				t.Fatalf("voxel %v %s: visible=%v, neighbour outside=%v", c, d, got, outside)
			}
		}
	}
}

func TestFaceVisibleIgnoresValueBeyondBoundary(t *testing.T) {
	// A one-voxel world: every face touches the boundary whatever sits next
	// to it in memory.
	g := solidGrid(1)
	for d := PlusX; d <= MinusZ; d++ {
		if !IsFaceVisible(g, Coord{}, d) {
			t.Fatalf("%s should be visible at the world boundary", d)
		}
	}
}

func TestFaceVisibleNonSolidNeighbour(t *testing.T) {
	for _, v := range []byte{0, 1, 128, 254} {
		g := solidGrid(3)
		g.Set(Coord{2, 1, 1}, v)
		if !IsFaceVisible(g, Coord{1, 1, 1}, PlusX) {
			t.Fatalf("neighbour value %d should not hide +X", v)
		}
		if IsFaceVisible(g, Coord{1, 1, 1}, MinusX) {
			t.Fatalf("solid -X neighbour should hide the face")
		}
	}
}

func TestRemainAlwaysVisible(t *testing.T) {
	g := solidGrid(3)
	if !IsFaceVisible(g, Coord{1, 1, 1}, Remain) {
		t.Fatalf("REMAIN must always be visible")
	}
	if got := visibleFaces(g, Coord{1, 1, 1}, 0); got != NewDirectionSet(Remain) {
		t.Fatalf("buried voxel emits %v, want only REMAIN", got)
	}
}

func TestVisibleFacesNonSolidVoxel(t *testing.T) {
	g := NewWorldGrid(3)
	g.Set(Coord{1, 1, 1}, 7)
	if got := visibleFaces(g, Coord{1, 1, 1}, AllDirections); got != 0 {
		t.Fatalf("non-solid voxel emits %v", got)
	}
}

func TestVisibleFacesAlwaysEmit(t *testing.T) {
	g := solidGrid(3)
	always := NewDirectionSet(PlusX, MinusY, MinusZ)
	want := NewDirectionSet(PlusX, MinusY, MinusZ, Remain)
	if got := visibleFaces(g, Coord{1, 1, 1}, always); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUnknownDirection(t *testing.T) {
	g := solidGrid(1)
	for _, d := range []Direction{DirectionCount, 200} {
		if IsFaceVisible(g, Coord{}, d) {
			t.Fatalf("%d reported visible", d)
		}
		if n := d.Normal(); n != (Coord{}) {
			t.Fatalf("%d has normal %v", d, n)
		}
	}
}
