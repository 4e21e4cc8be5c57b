package caw

import (
	xxhash "github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// Solid is the only occupancy value that hides a neighbour's face.
const Solid byte = 255

// WorldGrid is the whole world's occupancy, one byte per voxel, addressed
// by absolute coordinate as x*Edge*Edge + y*Edge + z. Every chunk reads
// from the same grid so faces at chunk seams see their real neighbours.
type WorldGrid struct {
	Edge   int
	Voxels []byte
}

func NewWorldGrid(edge int) *WorldGrid {
	return &WorldGrid{Edge: edge, Voxels: make([]byte, edge*edge*edge)}
}

// WrapWorldGrid uses voxels in place as a grid of the given edge.
func WrapWorldGrid(edge int, voxels []byte) (*WorldGrid, error) {
	if edge <= 0 {
		return nil, errors.Wrapf(ErrConfiguration, "world edge %d", edge)
	}
	if len(voxels) != edge*edge*edge {
		return nil, errors.Wrapf(ErrInvalidFormat, "world payload is %d bytes, want %d for edge %d",
			len(voxels), edge*edge*edge, edge)
	}
	return &WorldGrid{Edge: edge, Voxels: voxels}, nil
}

func (g *WorldGrid) Index(c Coord) int {
	return c.X*g.Edge*g.Edge + c.Y*g.Edge + c.Z
}

func (g *WorldGrid) Contains(c Coord) bool {
	return c.X >= 0 && c.X < g.Edge && c.Y >= 0 && c.Y < g.Edge && c.Z >= 0 && c.Z < g.Edge
}

func (g *WorldGrid) At(c Coord) byte { return g.Voxels[g.Index(c)] }

func (g *WorldGrid) Set(c Coord, v byte) { g.Voxels[g.Index(c)] = v }

func (g *WorldGrid) IsSolid(c Coord) bool { return g.Voxels[g.Index(c)] == Solid }

// SolidCount counts voxels holding the Solid sentinel.
func (g *WorldGrid) SolidCount() int {
	n := 0
	for _, v := range g.Voxels {
		if v == Solid {
			n++
		}
	}
	return n
}

// Checksum hashes the raw occupancy bytes.
func (g *WorldGrid) Checksum() uint64 { return xxhash.Sum64(g.Voxels) }
