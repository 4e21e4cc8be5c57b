package utils

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/simplestargame/SimpleMeshWorldSample/caw"
)

// SceneSink collects chunk meshes into one glTF document, one node per
// chunk placed at the chunk origin. Chunks whose vertex buffers are
// byte-identical share a single glTF mesh.
type SceneSink struct {
	mu     sync.Mutex
	doc    *gltf.Document
	meshes map[uint64][]sharedMesh
	// Reused counts chunks that referenced an existing mesh.
	Reused int
}

type sharedMesh struct {
	vertices []byte
	index    uint32
}

func NewSceneSink(generator string) *SceneSink {
	doc := gltf.NewDocument()
	doc.Asset.Generator = generator
	pbr := &gltf.PBRMetallicRoughness{BaseColorFactor: &[4]float32{1, 1, 1, 1}, MetallicFactor: gltf.Float(0), RoughnessFactor: gltf.Float(1)}
	doc.Materials = []*gltf.Material{{PBRMetallicRoughness: pbr, AlphaMode: gltf.AlphaOpaque}}
	return &SceneSink{doc: doc, meshes: make(map[uint64][]sharedMesh)}
}

// AddChunk implements caw.Sink.
func (s *SceneSink) AddChunk(m *caw.ChunkMesh) error {
	if m.VertexCount == 0 || len(m.Indices) != m.VertexCount {
		return fmt.Errorf("chunk %v: %d indices for %d vertices", m.Chunk.Offset, len(m.Indices), m.VertexCount)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	meshIdx := s.lookup(m.Vertices)
	if meshIdx < 0 {
		meshIdx = int64(s.writeMesh(m))
	} else {
		s.Reused++
	}
	o := m.Chunk.Offset
	node := &gltf.Node{
		Name:        fmt.Sprintf("chunk_%d_%d_%d", o.X, o.Y, o.Z),
		Mesh:        gltf.Index(uint32(meshIdx)),
		Translation: m.Origin(),
	}
	s.doc.Nodes = append(s.doc.Nodes, node)
	s.doc.Scenes[0].Nodes = append(s.doc.Scenes[0].Nodes, uint32(len(s.doc.Nodes)-1))
	return nil
}

func (s *SceneSink) lookup(vertices []byte) int64 {
	for _, sm := range s.meshes[xxhash.Sum64(vertices)] {
		if bytes.Equal(sm.vertices, vertices) {
			return int64(sm.index)
		}
	}
	return -1
}

func (s *SceneSink) writeMesh(m *caw.ChunkMesh) uint32 {
	positions := make([][3]float32, m.VertexCount)
	normals := make([][3]float32, m.VertexCount)
	uvs := make([][2]float32, m.VertexCount)
	_, hasNormal := m.Layout.Normal(m.Vertex(0))
	_, hasUV := m.Layout.UV(m.Vertex(0))
	for i := range positions {
		rec := m.Vertex(i)
		positions[i] = m.Layout.Position(rec)
		normals[i], _ = m.Layout.Normal(rec)
		uvs[i], _ = m.Layout.UV(rec)
	}
	if !hasNormal {
		normals = flatNormals(positions)
	}

	attrs := map[string]uint32{
		gltf.POSITION: modeler.WritePosition(s.doc, positions),
		gltf.NORMAL:   modeler.WriteNormal(s.doc, normals),
	}
	if hasUV {
		attrs[gltf.TEXCOORD_0] = modeler.WriteTextureCoord(s.doc, uvs)
	}
	prim := &gltf.Primitive{
		Attributes: attrs,
		Indices:    gltf.Index(modeler.WriteIndices(s.doc, m.Indices)),
		Material:   gltf.Index(0),
	}
	o := m.Chunk.Offset
	s.doc.Meshes = append(s.doc.Meshes, &gltf.Mesh{
		Name:       fmt.Sprintf("chunk_%d_%d_%d", o.X, o.Y, o.Z),
		Primitives: []*gltf.Primitive{prim},
	})
	idx := uint32(len(s.doc.Meshes) - 1)
	key := xxhash.Sum64(m.Vertices)
	s.meshes[key] = append(s.meshes[key], sharedMesh{vertices: m.Vertices, index: idx})
	return idx
}

// flatNormals gives each triangle of a triangle list its face normal.
func flatNormals(positions [][3]float32) [][3]float32 {
	normals := make([][3]float32, len(positions))
	for i := 0; i+2 < len(positions); i += 3 {
		p0, p1, p2 := mgl32.Vec3(positions[i]), mgl32.Vec3(positions[i+1]), mgl32.Vec3(positions[i+2])
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		if n.Len() > 0 {
			n = n.Normalize()
		}
		normals[i], normals[i+1], normals[i+2] = n, n, n
	}
	return normals
}

// Document returns the collected glTF document.
func (s *SceneSink) Document() *gltf.Document { return s.doc }

// MeshCount is the number of distinct glTF meshes written.
func (s *SceneSink) MeshCount() int { return len(s.doc.Meshes) }

// Encode writes the scene as binary glTF.
func (s *SceneSink) Encode(w io.Writer) error {
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	return enc.Encode(s.doc)
}

// Save writes the scene to a .glb file.
func (s *SceneSink) Save(path string) error {
	return gltf.SaveBinary(s.doc, path)
}
