package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/eak1mov/go-slippymap/tile"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type coverCmd struct {
	box        string
	minZoom    uint
	maxZoom    uint
	scale      uint
	countOnly  bool
	outputPath string
}

func (c *coverCmd) Name() string { return "cover" }
func (c *coverCmd) Synopsis() string {
	return "enumerate tiles or metatiles covering a bounding box"
}
func (c *coverCmd) Usage() string {
	return "tilecover cover -b <top_lat,left_lon,bottom_lat,right_lon> -z <zoom> [-Z <zoom> -s <scale> -c -o <path>]\n"
}
func (c *coverCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.box, "b", "", "Bounding box in TLBR order")
	f.UintVar(&c.minZoom, "z", 0, "Zoom level (minimum when -Z is set)")
	f.UintVar(&c.maxZoom, "Z", 0, "Maximum zoom level (defaults to -z)")
	f.UintVar(&c.scale, "s", 0, "Metatile scale; 0 enumerates plain tiles")
	f.BoolVar(&c.countOnly, "c", false, "Print the tile count instead of tiles")
	f.StringVar(&c.outputPath, "o", "", "Output file path (default stdout)")
}

func (c *coverCmd) run() error {
	box, err := tile.ParseBBox(c.box)
	if err != nil {
		return err
	}
	minZoom, maxZoom := uint32(c.minZoom), uint32(c.maxZoom)
	if maxZoom < minZoom {
		maxZoom = minZoom
	}

	total := uint64(0)
	for z := minZoom; z <= maxZoom; z++ {
		n, ok := box.NumTilesAtZoom(z)
		if !ok {
			return fmt.Errorf("no coverage at zoom %d", z)
		}
		if c.scale > 0 {
			n = 0
			for range tile.CoverMetatiles(box, z, uint32(c.scale)) {
				n++
			}
		}
		total += n
	}
	if c.countOnly {
		fmt.Println(total)
		return nil
	}

	output := io.Writer(os.Stdout)
	var bar *progressbar.ProgressBar
	if c.outputPath != "" {
		file, err := os.Create(c.outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		buffered := bufio.NewWriter(file)
		defer buffered.Flush()
		output = buffered
		bar = progressbar.NewOptions(int(total), progressbar.OptionShowIts(), progressbar.OptionShowCount())
		defer bar.Finish()
	}

	write := func(line fmt.Stringer) error {
		if _, err := fmt.Fprintln(output, line); err != nil {
			return err
		}
		if bar != nil {
			bar.Add(1)
		}
		return nil
	}

	for z := minZoom; z <= maxZoom; z++ {
		if c.scale > 0 {
			for m := range tile.CoverMetatiles(box, z, uint32(c.scale)) {
				if err := write(m); err != nil {
					return err
				}
			}
			continue
		}
		for t := range tile.Cover(box, z) {
			if err := write(t); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *coverCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if err := c.run(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
