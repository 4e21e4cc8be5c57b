//go:build !(js && wasm)

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/simplestargame/SimpleMeshWorldSample/utils"
)

func usage() {
	fmt.Println("Usage: cawmesh <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  world2glb template.caw world.gz output.glb [level] [alwaysEmit]")
	fmt.Println("        (mesh a world with a cube template; world edge inferred from the payload;")
	fmt.Println("         chunk edge = 16*2^level, level 0..3;")
	fmt.Println("         alwaysEmit lists directions never culled, e.g. +x,-y,-z)")
	fmt.Println("  gencube output.caw [inset]                 (write a cube template, bevelled when inset > 0)")
	fmt.Println("  gennoise <percentage> <edge> output.gz     (generate a random gzip world)")
	fmt.Println("  rle2world \"count,value,...\" output.gz    (expand an RLE voxel list into a gzip world)")
	fmt.Println("  cawinfo template.caw                       (print per-direction vertex counts)")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "world2glb":
		if len(os.Args) < 5 || len(os.Args) > 7 {
			usage()
			os.Exit(1)
		}
		cfg := utils.DefaultWorld2GLBConfig()
		if len(os.Args) >= 6 {
			if _, err := fmt.Sscan(os.Args[5], &cfg.ChunkLevel); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
		}
		if len(os.Args) == 7 {
			cfg.AlwaysEmit = os.Args[6]
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		err := utils.RunWorld2GLB(ctx, os.Args[2], os.Args[3], os.Args[4], cfg)
		stop()
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "gencube":
		if len(os.Args) != 3 && len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		var inset float32
		if len(os.Args) == 4 {
			if _, err := fmt.Sscan(os.Args[3], &inset); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
		}
		if err := utils.RunGenerateCube(os.Args[2], inset); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "gennoise":
		if len(os.Args) != 5 {
			usage()
			os.Exit(1)
		}
		var perc float64
		var edge int
		if _, err := fmt.Sscan(os.Args[2], &perc); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		if _, err := fmt.Sscan(os.Args[3], &edge); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		if err := utils.RunGenerateNoiseWorld(perc, edge, os.Args[4]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "rle2world":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunRLE2World(os.Args[2], 0, os.Args[3]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "cawinfo":
		if len(os.Args) != 3 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunCAWInfo(os.Args[2]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(1)
	}

	fmt.Println("Operation completed!")
}
