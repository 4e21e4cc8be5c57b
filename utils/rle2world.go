package utils

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/simplestargame/SimpleMeshWorldSample/caw"
)

// ParseRLEWorld expands a "count,value,count,value,..." list into a world
// grid, filling voxels in storage order. The runs must cover the world
// exactly; with edge 0 the edge is inferred from the run total.
func ParseRLEWorld(rleArg string, edge int) (*caw.WorldGrid, error) {
	rleStr := strings.Trim(rleArg, "[] ")
	var rle []int
	for _, p := range strings.Split(rleStr, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		i, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("parse RLE %q: %w", p, err)
		}
		rle = append(rle, i)
	}
	if len(rle)%2 != 0 {
		return nil, fmt.Errorf("RLE needs count-value pairs, got %d numbers", len(rle))
	}

	total := 0
	for i := 0; i < len(rle); i += 2 {
		if rle[i] < 0 {
			return nil, fmt.Errorf("negative run length %d", rle[i])
		}
		if v := rle[i+1]; v < 0 || v > 255 {
			return nil, fmt.Errorf("voxel value %d outside 0-255", v)
		}
		total += rle[i]
	}
	if edge <= 0 {
		edge = int(math.Round(math.Cbrt(float64(total))))
	}
	if edge <= 0 || edge*edge*edge != total {
		return nil, fmt.Errorf("RLE covers %d voxels, not a %d³ world", total, edge)
	}

	grid := caw.NewWorldGrid(edge)
	idx := 0
	for i := 0; i < len(rle); i += 2 {
		v := byte(rle[i+1])
		for j := 0; j < rle[i]; j++ {
			grid.Voxels[idx] = v
			idx++
		}
	}
	return grid, nil
}

// RunRLE2World writes an RLE world description as a gzip world payload.
func RunRLE2World(rleArg string, edge int, outPath string) error {
	grid, err := ParseRLEWorld(rleArg, edge)
	if err != nil {
		return err
	}
	if err := caw.SaveWorld(grid, outPath, caw.CodecGzip); err != nil {
		return fmt.Errorf("save world %s: %w", outPath, err)
	}
	if fi, err := os.Stat(outPath); err == nil {
		fmt.Printf("world saved (%d bytes, edge %d, %d solid)\n", fi.Size(), grid.Edge, grid.SolidCount())
	} else {
		fmt.Println("world saved.")
	}
	return nil
}
