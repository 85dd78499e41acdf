package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/eak1mov/go-slippymap/tile"
	"github.com/eak1mov/go-slippymap/tilepath"
	"github.com/google/subcommands"
)

type locateCmd struct {
	tilePath     string
	metatilePath string
	layout       string
	ext          string
}

func (c *locateCmd) Name() string { return "locate" }
func (c *locateCmd) Synopsis() string {
	return "print the cache-store path for a tile or metatile"
}
func (c *locateCmd) Usage() string {
	return "tilecover locate -t <z/x/y> [-l <zxy|tc|mp|modtile> -e <ext>] | -m \"<scale> <z/x/y>\"\n"
}
func (c *locateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tilePath, "t", "", "Tile path")
	f.StringVar(&c.metatilePath, "m", "", "Metatile in \"scale z/x/y\" form (mod_tile meta layout)")
	f.StringVar(&c.layout, "l", "zxy", "Cache layout (zxy, tc, mp, modtile)")
	f.StringVar(&c.ext, "e", "png", "File extension")
}

func (c *locateCmd) run() error {
	if c.metatilePath != "" {
		m, err := tile.ParseMetatile(c.metatilePath)
		if err != nil {
			return err
		}
		fmt.Println(tilepath.ModTileMeta(m))
		return nil
	}

	t, err := tile.Parse(c.tilePath)
	if err != nil {
		return err
	}
	switch c.layout {
	case "zxy":
		fmt.Println(tilepath.ZXY(t, c.ext))
	case "tc":
		fmt.Println(tilepath.TC(t, c.ext))
	case "mp":
		fmt.Println(tilepath.MP(t, c.ext))
	case "modtile":
		fmt.Println(tilepath.ModTile(t, c.ext))
	default:
		return fmt.Errorf("invalid cache layout: %q", c.layout)
	}
	return nil
}

func (c *locateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if err := c.run(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
