package api

import (
	"bytes"
	"context"

	"github.com/simplestargame/SimpleMeshWorldSample/caw"
	"github.com/simplestargame/SimpleMeshWorldSample/utils"
)

// TemplateInfo parses .caw bytes and returns a printable summary.
func TemplateInfo(cawBytes []byte) (string, error) {
	tmpl, err := caw.ParseTemplate(cawBytes, caw.DefaultLayout)
	if err != nil {
		return "", err
	}
	return utils.DescribeTemplate(tmpl), nil
}

// WorldToGLB meshes a world payload (raw, gzip, zstd or zlib; edge inferred
// from its size) with a .caw template and returns the scene as .glb bytes.
func WorldToGLB(cawBytes, worldBytes []byte, chunkLevel int, alwaysEmit string) ([]byte, error) {
	tmpl, err := caw.ParseTemplate(cawBytes, caw.DefaultLayout)
	if err != nil {
		return nil, err
	}
	always, err := caw.ParseDirectionSet(alwaysEmit)
	if err != nil {
		return nil, err
	}
	chunkEdge, err := caw.ChunkEdgeForLevel(chunkLevel)
	if err != nil {
		return nil, err
	}
	grid, err := caw.DecodeWorld(worldBytes, 0)
	if err != nil {
		return nil, err
	}
	sink := utils.NewSceneSink("CAW world -> GLB")
	dims := caw.Dimensions{WorldEdge: grid.Edge, ChunkEdge: chunkEdge}
	if _, err := utils.BuildScene(context.Background(), grid, tmpl, dims, caw.Options{AlwaysEmit: always}, sink); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := sink.Encode(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// CubeTemplate returns .caw bytes for a cube with the given bevel inset.
func CubeTemplate(inset float32) ([]byte, error) {
	tmpl, err := caw.InsetCube(caw.DefaultLayout, inset)
	if err != nil {
		return nil, err
	}
	return caw.EncodeTemplate(tmpl), nil
}
