package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/eak1mov/go-slippymap/tile"
	"github.com/google/subcommands"
)

type childrenCmd struct {
	tilePath  string
	maxZoom   uint
	countOnly bool
}

func (c *childrenCmd) Name() string { return "children" }
func (c *childrenCmd) Synopsis() string {
	return "enumerate a tile and its descendants down to a zoom level"
}
func (c *childrenCmd) Usage() string {
	return "tilecover children -t <z/x/y> -Z <maxzoom> [-c]\n"
}
func (c *childrenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tilePath, "t", "", "Starting tile path")
	f.UintVar(&c.maxZoom, "Z", 0, "Maximum zoom level, inclusive")
	f.BoolVar(&c.countOnly, "c", false, "Print the tile count instead of tiles")
}

func (c *childrenCmd) run() error {
	t, err := tile.Parse(c.tilePath)
	if err != nil {
		return err
	}
	maxZoom := uint32(c.maxZoom)
	if maxZoom < t.Z {
		maxZoom = t.Z
	}
	if c.countOnly {
		fmt.Println(tile.DescendantCount(t, maxZoom))
		return nil
	}
	for d := range tile.Descendants(t, maxZoom) {
		fmt.Println(d)
	}
	return nil
}

func (c *childrenCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if err := c.run(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
