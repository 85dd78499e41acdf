package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/eak1mov/go-slippymap/tile"
	"github.com/eak1mov/go-slippymap/worldfile"
	"github.com/google/subcommands"
)

type boundsCmd struct {
	tilePath  string
	worldFile bool
	pixelSize uint
}

func (c *boundsCmd) Name() string { return "bounds" }
func (c *boundsCmd) Synopsis() string {
	return "print the bounding box or world file of a tile"
}
func (c *boundsCmd) Usage() string {
	return "tilecover bounds -t <z/x/y> [-w -p <pixels>]\n"
}
func (c *boundsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tilePath, "t", "", "Tile path")
	f.BoolVar(&c.worldFile, "w", false, "Print a world file instead of the box")
	f.UintVar(&c.pixelSize, "p", worldfile.DefaultTileSize, "Tile size in pixels for the world file")
}

func (c *boundsCmd) run() error {
	t, err := tile.Parse(c.tilePath)
	if err != nil {
		return err
	}
	if c.worldFile {
		fmt.Print(worldfile.For(t, uint32(c.pixelSize)))
		return nil
	}
	fmt.Println(t.Bounds())
	return nil
}

func (c *boundsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if err := c.run(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
