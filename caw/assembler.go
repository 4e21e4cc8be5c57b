package caw

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Sink receives finished chunk meshes. It is the rendering side of the
// pipeline and owns whatever happens to the buffers afterwards.
type Sink interface {
	AddChunk(m *ChunkMesh) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(m *ChunkMesh) error

func (f SinkFunc) AddChunk(m *ChunkMesh) error { return f(m) }

// BuildStats summarises a whole-world build.
type BuildStats struct {
	Chunks   int // chunks extracted
	Emitted  int // chunks handed to the sink
	Skipped  int // chunks with no vertices
	Vertices int
	Elapsed  time.Duration
}

// Assembler drives count, offset and write passes per chunk over one
// shared world grid and template. BuildChunk is safe for concurrent use.
type Assembler struct {
	grid   *WorldGrid
	tmpl   *Template
	dims   Dimensions
	opts   Options
	pool   *Pool
	coords []Coord
}

// NewAssembler validates the configuration before any extraction work.
func NewAssembler(g *WorldGrid, t *Template, dims Dimensions, opts Options) (*Assembler, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.Wrap(ErrConfiguration, "no cube template")
	}
	if g == nil || g.Edge != dims.WorldEdge || len(g.Voxels) != g.Edge*g.Edge*g.Edge {
		return nil, errors.Wrapf(ErrConfiguration, "world grid does not match world edge %d", dims.WorldEdge)
	}
	opts = opts.withDefaults()
	return &Assembler{
		grid:   g,
		tmpl:   t,
		dims:   dims,
		opts:   opts,
		pool:   NewPool(opts.Workers),
		coords: ChunkCoords(dims.ChunkEdge),
	}, nil
}

// Close stops the worker pool.
func (a *Assembler) Close() { a.pool.Close() }

func (a *Assembler) Dimensions() Dimensions { return a.dims }

// BuildChunk extracts the chunk at offset (in chunk units). It returns a
// nil mesh when the chunk stamps no vertices. On error nothing is returned.
func (a *Assembler) BuildChunk(offset Coord) (*ChunkMesh, error) {
	n := a.dims.ChunksPerEdge()
	if offset.X < 0 || offset.Y < 0 || offset.Z < 0 || offset.X >= n || offset.Y >= n || offset.Z >= n {
		return nil, errors.Wrapf(ErrConfiguration, "chunk offset %v outside %d chunks per edge", offset, n)
	}
	c := Chunk{Offset: offset, Edge: a.dims.ChunkEdge}

	counts, err := CountPass(a.pool, a.grid, a.tmpl, c, a.coords, a.opts)
	if err != nil {
		return nil, errors.WithMessagef(err, "chunk %v", offset)
	}
	offsets, total := ComputeOffsets(counts)
	if total == 0 {
		return nil, nil
	}
	vertices := make([]byte, total*a.tmpl.layout.Stride)
	if err := WritePass(a.pool, a.grid, a.tmpl, c, a.coords, offsets, vertices, a.opts); err != nil {
		return nil, errors.WithMessagef(err, "chunk %v", offset)
	}
	indices, err := WriteIndices(a.pool, total, a.opts)
	if err != nil {
		return nil, errors.WithMessagef(err, "chunk %v", offset)
	}
	return &ChunkMesh{
		Chunk:       c,
		Layout:      a.tmpl.layout,
		Vertices:    vertices,
		Indices:     indices,
		VertexCount: total,
		Bounds:      chunkBounds(c.Edge),
	}, nil
}

// Build extracts every chunk in x, y, z order and hands non-empty meshes
// to sink. ctx is checked between chunks; a chunk in progress always
// finishes.
func (a *Assembler) Build(ctx context.Context, sink Sink) (BuildStats, error) {
	var stats BuildStats
	start := time.Now()
	for _, c := range a.dims.Chunks() {
		if err := ctx.Err(); err != nil {
			stats.Elapsed = time.Since(start)
			return stats, err
		}
		m, err := a.BuildChunk(c.Offset)
		if err != nil {
			stats.Elapsed = time.Since(start)
			return stats, err
		}
		stats.Chunks++
		if m == nil {
			stats.Skipped++
			continue
		}
		if err := sink.AddChunk(m); err != nil {
			stats.Elapsed = time.Since(start)
			return stats, errors.WithMessagef(err, "sink rejected chunk %v", c.Offset)
		}
		stats.Emitted++
		stats.Vertices += m.VertexCount
	}
	stats.Elapsed = time.Since(start)
	return stats, nil
}
