package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/simplestargame/SimpleMeshWorldSample/caw"
)

// GenerateNoiseWorld fills percentage% of an edge³ world with Solid at
// random positions. Everything else stays 0.
func GenerateNoiseWorld(edge int, percentage float64, r *rand.Rand) *caw.WorldGrid {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	grid := caw.NewWorldGrid(edge)
	total := len(grid.Voxels)
	want := int(float64(total)*(percentage/100.0) + 0.5)
	if want > total {
		want = total
	}

	// partial Fisher-Yates over voxel indices
	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < want; i++ {
		j := i + r.Intn(total-i)
		idx[i], idx[j] = idx[j], idx[i]
		grid.Voxels[idx[i]] = caw.Solid
	}
	return grid
}

// RunGenerateNoiseWorld writes a gzip world of the given edge with a
// random fill percentage.
func RunGenerateNoiseWorld(percentage float64, edge int, outPath string) error {
	if edge <= 0 {
		return fmt.Errorf("world edge must be positive, got %d", edge)
	}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	grid := GenerateNoiseWorld(edge, percentage, r)
	if err := caw.SaveWorld(grid, outPath, caw.CodecGzip); err != nil {
		return fmt.Errorf("save world %s: %w", outPath, err)
	}
	fmt.Printf("world saved: edge %d, %d solid voxels\n", edge, grid.SolidCount())
	return nil
}
