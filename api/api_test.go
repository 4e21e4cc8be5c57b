package api

import (
	"bytes"
	"strings"
	"testing"

	"github.com/qmuntal/gltf"

	"github.com/simplestargame/SimpleMeshWorldSample/caw"
)

func TestCubeTemplateInfo(t *testing.T) {
	data, err := CubeTemplate(0.125)
	if err != nil {
		t.Fatalf("CubeTemplate: %v", err)
	}
	info, err := TemplateInfo(data)
	if err != nil {
		t.Fatalf("TemplateInfo: %v", err)
	}
	if !strings.Contains(info, "REMAIN 96") || !strings.Contains(info, "total  132") {
		t.Fatalf("unexpected summary:\n%s", info)
	}
	if _, err := TemplateInfo(data[:10]); err == nil {
		t.Fatalf("expected an error for a truncated template")
	}
}

func TestWorldToGLB(t *testing.T) {
	cube, err := CubeTemplate(0)
	if err != nil {
		t.Fatalf("CubeTemplate: %v", err)
	}
	grid := caw.NewWorldGrid(16)
	for i := range grid.Voxels {
		if i%2 == 0 {
			grid.Voxels[i] = caw.Solid
		}
	}
	world, err := caw.EncodeWorld(grid, caw.CodecGzip)
	if err != nil {
		t.Fatalf("EncodeWorld: %v", err)
	}
	glb, err := WorldToGLB(cube, world, 0, "")
	if err != nil {
		t.Fatalf("WorldToGLB: %v", err)
	}
	if !bytes.HasPrefix(glb, []byte("glTF")) {
		t.Fatalf("output is not binary glTF")
	}
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(bytes.NewReader(glb)).Decode(doc); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(doc.Nodes) != 1 || len(doc.Meshes) != 1 {
		t.Fatalf("%d nodes, %d meshes", len(doc.Nodes), len(doc.Meshes))
	}

	// 16³ does not tile into 32³ chunks
	if _, err := WorldToGLB(cube, world, 1, ""); err == nil {
		t.Fatalf("expected a configuration error for chunk level 1")
	}
}
