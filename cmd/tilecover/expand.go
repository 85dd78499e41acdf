package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/eak1mov/go-slippymap/tile"
	"github.com/google/subcommands"
)

type expandCmd struct {
	metatilePath string
}

func (c *expandCmd) Name() string     { return "expand" }
func (c *expandCmd) Synopsis() string { return "list the base tiles of a metatile" }
func (c *expandCmd) Usage() string {
	return "tilecover expand -m \"<scale> <z/x/y>\"\n"
}
func (c *expandCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.metatilePath, "m", "", "Metatile in \"scale z/x/y\" form")
}

func (c *expandCmd) run() error {
	m, err := tile.ParseMetatile(c.metatilePath)
	if err != nil {
		return err
	}
	for t := range m.Tiles() {
		fmt.Println(t)
	}
	return nil
}

func (c *expandCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if err := c.run(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
