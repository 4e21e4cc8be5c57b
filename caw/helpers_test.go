package caw

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// triangleTemplate has one triangle (3 vertices) on each of the six faces
// and an empty REMAIN.
func triangleTemplate(t *testing.T, layout VertexLayout) *Template {
	t.Helper()
	var lists [DirectionCount][]cubeVertex
	for d := PlusX; d <= MinusZ; d++ {
		n := d.Normal().Vec3()
		u, v := faceAxes[d][0], faceAxes[d][1]
		c := n.Mul(0.5)
		lists[d] = []cubeVertex{
			{pos: c.Sub(u.Mul(0.25)).Sub(v.Mul(0.25)), normal: n},
			{pos: c.Add(u.Mul(0.25)).Sub(v.Mul(0.25)), normal: n},
			{pos: c.Add(v.Mul(0.25)), normal: n},
		}
	}
	tmpl, err := buildTemplate(layout, lists)
	if err != nil {
		t.Fatalf("buildTemplate: %v", err)
	}
	return tmpl
}

func solidGrid(edge int) *WorldGrid {
	g := NewWorldGrid(edge)
	for i := range g.Voxels {
		g.Voxels[i] = Solid
	}
	return g
}

func testPool(t *testing.T) *Pool {
	t.Helper()
	p := NewPool(4)
	t.Cleanup(p.Close)
	return p
}

func sum(xs []int) int {
	n := 0
	for _, x := range xs {
		n += x
	}
	return n
}

func translated(layout VertexLayout, rec []byte, by Coord) [3]float32 {
	p := mgl32.Vec3(layout.Position(rec)).Add(by.Vec3())
	out := make([]byte, layout.Stride)
	layout.SetPosition(out, p)
	return layout.Position(out)
}
