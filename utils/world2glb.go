package utils

import (
	"context"
	"fmt"
	"log"

	"github.com/simplestargame/SimpleMeshWorldSample/caw"
)

// World2GLBConfig is everything RunWorld2GLB needs besides file paths.
type World2GLBConfig struct {
	// ChunkLevel picks the chunk edge 16 * 2^level.
	ChunkLevel int
	// WorldEdge is the expected world edge; 0 infers it from the payload
	// size. When set, it is validated against the chunk edge up front.
	WorldEdge int
	// AlwaysEmit is a direction list such as "+x,-y,-z".
	AlwaysEmit string
	Layout     caw.VertexLayout
}

func DefaultWorld2GLBConfig() World2GLBConfig {
	return World2GLBConfig{Layout: caw.DefaultLayout}
}

// RunWorld2GLB meshes a compressed world with a cube template and writes
// every non-empty chunk as a node of a .glb scene.
func RunWorld2GLB(ctx context.Context, templatePath, worldPath, outPath string, cfg World2GLBConfig) error {
	always, err := caw.ParseDirectionSet(cfg.AlwaysEmit)
	if err != nil {
		return err
	}
	chunkEdge, err := caw.ChunkEdgeForLevel(cfg.ChunkLevel)
	if err != nil {
		return err
	}
	if cfg.WorldEdge > 0 {
		if err := (caw.Dimensions{WorldEdge: cfg.WorldEdge, ChunkEdge: chunkEdge}).Validate(); err != nil {
			return err
		}
	}

	tmpl, err := caw.LoadTemplate(templatePath, cfg.Layout)
	if err != nil {
		return fmt.Errorf("load template: %w", err)
	}
	log.Printf("template %s: counts %v, fingerprint %016x", templatePath, tmpl.Counts(), tmpl.Fingerprint())

	grid, err := caw.LoadWorld(worldPath, cfg.WorldEdge)
	if err != nil {
		return fmt.Errorf("load world: %w", err)
	}
	log.Printf("world %s: edge %d, %d solid voxels, checksum %016x", worldPath, grid.Edge, grid.SolidCount(), grid.Checksum())

	sink := NewSceneSink("CAW world -> GLB")
	stats, err := BuildScene(ctx, grid, tmpl, caw.Dimensions{WorldEdge: grid.Edge, ChunkEdge: chunkEdge}, caw.Options{AlwaysEmit: always}, sink)
	if err != nil {
		return err
	}
	log.Printf("built %d chunks (%d empty) with %d vertices in %d ms, %d meshes reused",
		stats.Chunks, stats.Skipped, stats.Vertices, stats.Elapsed.Milliseconds(), sink.Reused)
	return sink.Save(outPath)
}

// BuildScene runs a whole-world build into sink.
func BuildScene(ctx context.Context, grid *caw.WorldGrid, tmpl *caw.Template, dims caw.Dimensions, opts caw.Options, sink caw.Sink) (caw.BuildStats, error) {
	asm, err := caw.NewAssembler(grid, tmpl, dims, opts)
	if err != nil {
		return caw.BuildStats{}, err
	}
	defer asm.Close()
	stats, err := asm.Build(ctx, sink)
	if err != nil {
		return stats, fmt.Errorf("build world: %w", err)
	}
	return stats, nil
}
