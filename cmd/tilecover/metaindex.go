package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/eak1mov/go-slippymap/metafile"
	"github.com/eak1mov/go-slippymap/tile"
	"github.com/google/subcommands"
)

type metaindexCmd struct {
	inputPath string
}

func (c *metaindexCmd) Name() string { return "metaindex" }
func (c *metaindexCmd) Synopsis() string {
	return "list the tiles stored in a serialized metatile file"
}
func (c *metaindexCmd) Usage() string {
	return "tilecover metaindex -i <path.meta>\n"
}
func (c *metaindexCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input metatile file path")
}

func (c *metaindexCmd) run() error {
	reader, err := metafile.NewFileReader(c.inputPath)
	if err != nil {
		return err
	}
	defer reader.Close()

	fmt.Printf("# metatile %v\n", reader.Metatile())
	for tileID, location := range tile.IterLocations(reader) {
		fmt.Printf("%v %d %d\n", tileID, location.Offset, location.Length)
	}
	return nil
}

func (c *metaindexCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if err := c.run(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
