package caw

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

func TestBasicCubeCounts(t *testing.T) {
	tmpl, err := BasicCube(DefaultLayout)
	if err != nil {
		t.Fatalf("BasicCube: %v", err)
	}
	want := [DirectionCount]int{6, 6, 6, 6, 6, 6, 0}
	if tmpl.Counts() != want {
		t.Fatalf("counts %v, want %v", tmpl.Counts(), want)
	}
	// every face vertex sits on its face plane
	for d := PlusX; d <= MinusZ; d++ {
		n := d.Normal().Vec3()
		for k := 0; k < tmpl.Count(d); k++ {
			p := mgl32.Vec3(DefaultLayout.Position(tmpl.Vertex(d, k)))
			if p.Dot(n) != 0.5 {
				t.Fatalf("%s vertex %d at %v is off the face plane", d, k, p)
			}
		}
	}
}

func TestInsetCubeCounts(t *testing.T) {
	tmpl, err := InsetCube(DefaultLayout, 0.125)
	if err != nil {
		t.Fatalf("InsetCube: %v", err)
	}
	// 12 edge strips of two triangles plus 8 corner triangles
	want := [DirectionCount]int{6, 6, 6, 6, 6, 6, 12*6 + 8*3}
	if tmpl.Counts() != want {
		t.Fatalf("counts %v, want %v", tmpl.Counts(), want)
	}
}

func TestCubeTrianglesFaceOutward(t *testing.T) {
	for _, inset := range []float32{0, 0.125, 0.25} {
		tmpl, err := InsetCube(DefaultLayout, inset)
		if err != nil {
			t.Fatalf("InsetCube(%g): %v", inset, err)
		}
		for d := Direction(0); d < DirectionCount; d++ {
			for k := 0; k+2 < tmpl.Count(d); k += 3 {
				var p [3]mgl32.Vec3
				for i := range p {
					p[i] = DefaultLayout.Position(tmpl.Vertex(d, k+i))
				}
				normal := p[1].Sub(p[0]).Cross(p[2].Sub(p[0]))
				centroid := p[0].Add(p[1]).Add(p[2]).Mul(1.0 / 3)
				if normal.Dot(centroid) <= 0 {
					t.Fatalf("inset %g %s triangle %d winds inward", inset, d, k/3)
				}
				stored, ok := DefaultLayout.Normal(tmpl.Vertex(d, k))
				if !ok || mgl32.Vec3(stored).Dot(normal) <= 0 {
					t.Fatalf("inset %g %s triangle %d: stored normal %v disagrees with winding", inset, d, k/3, stored)
				}
			}
		}
	}
}

func TestInsetCubeRejectsBadInset(t *testing.T) {
	for _, inset := range []float32{-0.1, MaxInset, 1} {
		if _, err := InsetCube(DefaultLayout, inset); !errors.Is(err, ErrConfiguration) {
			t.Fatalf("inset %g: got %v, want ErrConfiguration", inset, err)
		}
	}
}

func TestPositionOnlyCube(t *testing.T) {
	tmpl, err := BasicCube(PositionOnlyLayout)
	if err != nil {
		t.Fatalf("BasicCube: %v", err)
	}
	if got := len(EncodeTemplate(tmpl)); got != HeaderSize+36*PositionOnlyLayout.Stride {
		t.Fatalf("encoded %d bytes", got)
	}
	if _, ok := PositionOnlyLayout.Normal(tmpl.Vertex(PlusX, 0)); ok {
		t.Fatalf("position-only layout reported a normal")
	}
}
