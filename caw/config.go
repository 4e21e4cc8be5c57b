package caw

import (
	"runtime"

	"github.com/pkg/errors"
)

const (
	DefaultWorldEdge = 256
	// BaseChunkEdge is the chunk edge at level 0; each level doubles it.
	BaseChunkEdge = 16
	MaxChunkLevel = 3
	// MaxChunkEdge keeps translated half-float positions exact to a quarter
	// voxel (half floats have 0.25 spacing between 256 and 512).
	MaxChunkEdge = 256
)

// ChunkEdgeForLevel returns BaseChunkEdge * 2^level for level 0..MaxChunkLevel.
func ChunkEdgeForLevel(level int) (int, error) {
	if level < 0 || level > MaxChunkLevel {
		return 0, errors.Wrapf(ErrConfiguration, "chunk level %d outside 0..%d", level, MaxChunkLevel)
	}
	return BaseChunkEdge << level, nil
}

// Dimensions fixes how a world is cut into chunks.
type Dimensions struct {
	WorldEdge int
	ChunkEdge int
}

// Validate rejects dimensions that do not tile the world exactly.
func (d Dimensions) Validate() error {
	switch {
	case d.WorldEdge <= 0:
		return errors.Wrapf(ErrConfiguration, "world edge %d", d.WorldEdge)
	case d.ChunkEdge <= 0:
		return errors.Wrapf(ErrConfiguration, "chunk edge %d", d.ChunkEdge)
	case d.ChunkEdge > MaxChunkEdge:
		return errors.Wrapf(ErrConfiguration, "chunk edge %d above %d", d.ChunkEdge, MaxChunkEdge)
	case d.WorldEdge%d.ChunkEdge != 0:
		return errors.Wrapf(ErrConfiguration, "chunk edge %d does not divide world edge %d", d.ChunkEdge, d.WorldEdge)
	}
	return nil
}

// ChunksPerEdge is the number of chunks along each axis.
func (d Dimensions) ChunksPerEdge() int { return d.WorldEdge / d.ChunkEdge }

// VoxelsPerChunk is ChunkEdge cubed.
func (d Dimensions) VoxelsPerChunk() int { return d.ChunkEdge * d.ChunkEdge * d.ChunkEdge }

// Chunks lists every chunk of the world, x outermost and z innermost.
func (d Dimensions) Chunks() []Chunk {
	n := d.ChunksPerEdge()
	out := make([]Chunk, 0, n*n*n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				out = append(out, Chunk{Offset: Coord{x, y, z}, Edge: d.ChunkEdge})
			}
		}
	}
	return out
}

// Options tune extraction. The zero value is usable; unset fields take
// the defaults below.
type Options struct {
	// AlwaysEmit lists directions whose vertices are stamped even when a
	// solid neighbour hides them. Useful for templates whose faces do not
	// reach the cube boundary.
	AlwaysEmit DirectionSet
	// BatchSize is the number of voxels per pool task in the count and
	// write passes.
	BatchSize int
	// IndexBatchSize is the number of indices per pool task.
	IndexBatchSize int
	// Workers caps pool concurrency; 0 means runtime.NumCPU().
	Workers int
}

const (
	defaultBatchSize      = 2048
	defaultIndexBatchSize = 1 << 14
)

func (o Options) withDefaults() Options {
	if o.BatchSize <= 0 {
		o.BatchSize = defaultBatchSize
	}
	if o.IndexBatchSize <= 0 {
		o.IndexBatchSize = defaultIndexBatchSize
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	return o
}
