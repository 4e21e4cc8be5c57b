package caw

// IsFaceVisible reports whether a solid voxel at abs emits its template
// vertices for d. A face is visible when its neighbour lies outside the
// world or holds anything but Solid. REMAIN is always visible and an
// unknown direction never is. The caller must only ask for solid voxels.
func IsFaceVisible(g *WorldGrid, abs Coord, d Direction) bool {
	if int(d) >= DirectionCount {
		return false
	}
	f := faces[d]
	if !f.culls {
		return true
	}
	n := abs.Add(f.delta)
	if !g.Contains(n) {
		return true
	}
	return g.At(n) != Solid
}

// visibleFaces is the single helper both passes use to decide which
// sub-lists a voxel stamps. It returns the empty set for non-solid voxels.
func visibleFaces(g *WorldGrid, abs Coord, always DirectionSet) DirectionSet {
	if !g.IsSolid(abs) {
		return 0
	}
	var set DirectionSet
	for _, f := range faces {
		if always.Has(f.dir) || IsFaceVisible(g, abs, f.dir) {
			set |= 1 << f.dir
		}
	}
	return set
}
