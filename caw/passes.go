package caw

import "github.com/pkg/errors"

// extraction bundles the read-only inputs of one chunk's passes.
type extraction struct {
	grid   *WorldGrid
	tmpl   *Template
	chunk  Chunk
	coords []Coord
	always DirectionSet
}

// CountPass returns, for every voxel in coords, how many vertices it
// stamps: zero for non-solid voxels, otherwise the summed sub-list lengths
// of its visible directions.
func CountPass(pool *Pool, g *WorldGrid, t *Template, c Chunk, coords []Coord, opts Options) ([]int, error) {
	opts = opts.withDefaults()
	e := extraction{grid: g, tmpl: t, chunk: c, coords: coords, always: opts.AlwaysEmit}
	counts := make([]int, len(coords))
	err := pool.parallelFor(len(coords), opts.BatchSize, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			counts[i] = e.count(i)
		}
	})
	if err != nil {
		return nil, errors.WithMessage(err, "count pass")
	}
	return counts, nil
}

func (e *extraction) count(i int) int {
	set := visibleFaces(e.grid, e.chunk.Absolute(e.coords[i]), e.always)
	if set == 0 {
		return 0
	}
	n := 0
	for _, f := range faces {
		if set.Has(f.dir) {
			n += e.tmpl.Count(f.dir)
		}
	}
	return n
}

// ComputeOffsets turns per-voxel counts into exclusive write offsets and
// returns the total vertex count.
func ComputeOffsets(counts []int) ([]int, int) {
	offsets := make([]int, len(counts))
	total := 0
	for i, n := range counts {
		offsets[i] = total
		total += n
	}
	return offsets, total
}

// WritePass stamps every voxel's visible sub-lists into out starting at
// offsets[i], translating positions by the voxel's local coordinate. Each
// voxel owns the disjoint range its count reserved, so batches never touch
// the same bytes. out must hold the total from ComputeOffsets.
func WritePass(pool *Pool, g *WorldGrid, t *Template, c Chunk, coords []Coord, offsets []int, out []byte, opts Options) error {
	if len(offsets) != len(coords) {
		return errors.Errorf("write pass: %d offsets for %d voxels", len(offsets), len(coords))
	}
	if len(out)%t.layout.Stride != 0 {
		return errors.Errorf("write pass: buffer of %d bytes is not a whole number of %d byte records", len(out), t.layout.Stride)
	}
	opts = opts.withDefaults()
	e := extraction{grid: g, tmpl: t, chunk: c, coords: coords, always: opts.AlwaysEmit}
	err := pool.parallelFor(len(coords), opts.BatchSize, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			e.write(i, offsets[i], out)
		}
	})
	return errors.WithMessage(err, "write pass")
}

func (e *extraction) write(i, offset int, out []byte) {
	local := e.coords[i]
	set := visibleFaces(e.grid, e.chunk.Absolute(local), e.always)
	if set == 0 {
		return
	}
	layout := e.tmpl.layout
	stride := layout.Stride
	dst := offset * stride
	shift := [3]float32{float32(local.X), float32(local.Y), float32(local.Z)}
	for _, f := range faces {
		if !set.Has(f.dir) {
			continue
		}
		src := e.tmpl.SubList(f.dir)
		n := copy(out[dst:dst+len(src)], src)
		for v := dst; v < dst+n; v += stride {
			rec := out[v : v+stride]
			p := layout.Position(rec)
			layout.SetPosition(rec, [3]float32{p[0] + shift[0], p[1] + shift[1], p[2] + shift[2]})
		}
		dst += n
	}
}

// WriteIndices fills the trivial triangle-list index buffer 0..n-1.
func WriteIndices(pool *Pool, n int, opts Options) ([]uint32, error) {
	opts = opts.withDefaults()
	indices := make([]uint32, n)
	err := pool.parallelFor(n, opts.IndexBatchSize, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			indices[i] = uint32(i)
		}
	})
	if err != nil {
		return nil, errors.WithMessage(err, "index pass")
	}
	return indices, nil
}
