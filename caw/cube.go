package caw

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

type cubeVertex struct {
	pos    mgl32.Vec3
	normal mgl32.Vec3
	uv     [2]float32
}

// faceAxes gives, per face direction, tangent axes u and v with u × v equal
// to the outward normal so corner order 0..3 winds counter-clockwise.
var faceAxes = [6][2]mgl32.Vec3{
	PlusX:  {{0, 1, 0}, {0, 0, 1}},
	PlusY:  {{0, 0, 1}, {1, 0, 0}},
	PlusZ:  {{1, 0, 0}, {0, 1, 0}},
	MinusX: {{0, 0, 1}, {0, 1, 0}},
	MinusY: {{1, 0, 0}, {0, 0, 1}},
	MinusZ: {{0, 1, 0}, {1, 0, 0}},
}

var quadUV = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// MaxInset is the exclusive upper bound of an InsetCube inset.
const MaxInset = 0.5

// BasicCube is a unit cube centred on its voxel: two triangles per face,
// nothing in REMAIN.
func BasicCube(layout VertexLayout) (*Template, error) {
	return InsetCube(layout, 0)
}

// InsetCube shrinks every face quad by inset on each side while keeping it
// on the cube boundary, and fills REMAIN with the bevel strips along the
// twelve edges and the triangles at the eight corners. With inset 0 it is
// BasicCube.
func InsetCube(layout VertexLayout, inset float32) (*Template, error) {
	if inset < 0 || inset >= MaxInset {
		return nil, errors.Wrapf(ErrConfiguration, "inset %g outside [0, %g)", inset, MaxInset)
	}
	var lists [DirectionCount][]cubeVertex
	h := MaxInset - inset
	for d := PlusX; d <= MinusZ; d++ {
		n := d.Normal().Vec3()
		u, v := faceAxes[d][0], faceAxes[d][1]
		c := n.Mul(0.5)
		var q [4]cubeVertex
		for i, s := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			q[i] = cubeVertex{pos: c.Add(u.Mul(s[0] * h)).Add(v.Mul(s[1] * h)), normal: n, uv: quadUV[i]}
		}
		lists[d] = append(lists[d], q[0], q[1], q[2], q[0], q[2], q[3])
	}
	if inset > 0 {
		lists[Remain] = bevelVertices(h)
	}
	return buildTemplate(layout, lists)
}

func bevelVertices(h float32) []cubeVertex {
	var out []cubeVertex
	signs := [2]float32{-1, 1}
	// edges: faces on axes a and b meet along axis c
	for a := 0; a < 3; a++ {
		for b := a + 1; b < 3; b++ {
			c := 3 - a - b
			for _, sa := range signs {
				for _, sb := range signs {
					var p [4]mgl32.Vec3
					for i, sc := range signs {
						p[i][a], p[i][b], p[i][c] = sa*0.5, sb*h, sc*h
						p[3-i][a], p[3-i][b], p[3-i][c] = sa*h, sb*0.5, sc*h
					}
					var n mgl32.Vec3
					n[a], n[b] = sa, sb
					n = n.Normalize()
					out = appendOutward(out, n, p[0], p[1], p[2])
					out = appendOutward(out, n, p[0], p[2], p[3])
				}
			}
		}
	}
	// corners
	for _, sx := range signs {
		for _, sy := range signs {
			for _, sz := range signs {
				n := mgl32.Vec3{sx, sy, sz}.Normalize()
				out = appendOutward(out, n,
					mgl32.Vec3{sx * 0.5, sy * h, sz * h},
					mgl32.Vec3{sx * h, sy * 0.5, sz * h},
					mgl32.Vec3{sx * h, sy * h, sz * 0.5})
			}
		}
	}
	return out
}

// appendOutward appends triangle p0 p1 p2 wound so its face normal points
// along n.
func appendOutward(out []cubeVertex, n, p0, p1, p2 mgl32.Vec3) []cubeVertex {
	if p1.Sub(p0).Cross(p2.Sub(p0)).Dot(n) < 0 {
		p1, p2 = p2, p1
	}
	return append(out,
		cubeVertex{pos: p0, normal: n},
		cubeVertex{pos: p1, normal: n, uv: [2]float32{1, 0}},
		cubeVertex{pos: p2, normal: n, uv: [2]float32{1, 1}},
	)
}

func buildTemplate(layout VertexLayout, lists [DirectionCount][]cubeVertex) (*Template, error) {
	if err := layout.validate(); err != nil {
		return nil, err
	}
	var counts [DirectionCount]int
	var data []byte
	for d, list := range lists {
		counts[d] = len(list)
		for _, cv := range list {
			rec := make([]byte, layout.Stride)
			layout.SetPosition(rec, cv.pos)
			layout.SetNormal(rec, cv.normal)
			layout.SetUV(rec, cv.uv)
			data = append(data, rec...)
		}
	}
	return NewTemplate(layout, counts, data)
}
