package caw

import "github.com/go-gl/mathgl/mgl32"

// Coord is an integer voxel or chunk coordinate.
type Coord struct{ X, Y, Z int }

func (c Coord) Add(o Coord) Coord { return Coord{c.X + o.X, c.Y + o.Y, c.Z + o.Z} }

func (c Coord) Scale(k int) Coord { return Coord{c.X * k, c.Y * k, c.Z * k} }

func (c Coord) Vec3() mgl32.Vec3 { return mgl32.Vec3{float32(c.X), float32(c.Y), float32(c.Z)} }

// ChunkCoords enumerates the local coordinates of a chunk with x outermost
// and z innermost; entry i is the voxel whose results live in slot i of
// every per-voxel pass.
func ChunkCoords(edge int) []Coord {
	coords := make([]Coord, edge*edge*edge)
	for x := 0; x < edge; x++ {
		for y := 0; y < edge; y++ {
			for z := 0; z < edge; z++ {
				coords[x*edge*edge+y*edge+z] = Coord{x, y, z}
			}
		}
	}
	return coords
}

// Chunk is a cubic region of the world grid. Offset is in chunk units.
type Chunk struct {
	Offset Coord
	Edge   int
}

// Origin is the absolute voxel coordinate of the chunk's local (0,0,0).
func (c Chunk) Origin() Coord { return c.Offset.Scale(c.Edge) }

// Absolute translates a local voxel coordinate into the world grid.
func (c Chunk) Absolute(local Coord) Coord { return local.Add(c.Origin()) }

// ChunkMesh is the artifact handed to a Sink: packed vertex records in the
// template layout, positions relative to the chunk origin, and the
// triangle-list index buffer 0..VertexCount-1.
type ChunkMesh struct {
	Chunk       Chunk
	Layout      VertexLayout
	Vertices    []byte
	Indices     []uint32
	VertexCount int
	// Bounds is the chunk-local box: every stamped cube stays within half a
	// voxel of its cell.
	Bounds [2]mgl32.Vec3
}

// Vertex returns record i.
func (m *ChunkMesh) Vertex(i int) []byte {
	s := m.Layout.Stride
	return m.Vertices[i*s : (i+1)*s]
}

// Origin is the world-space translation of the chunk.
func (m *ChunkMesh) Origin() mgl32.Vec3 { return m.Chunk.Origin().Vec3() }

func chunkBounds(edge int) [2]mgl32.Vec3 {
	lo := mgl32.Vec3{-0.5, -0.5, -0.5}
	e := float32(edge) + 0.5
	return [2]mgl32.Vec3{lo, {e, e, e}}
}
