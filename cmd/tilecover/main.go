package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(&coverCmd{}, "")
	subcommands.Register(&childrenCmd{}, "")
	subcommands.Register(&expandCmd{}, "")
	subcommands.Register(&locateCmd{}, "")
	subcommands.Register(&boundsCmd{}, "")
	subcommands.Register(&metaindexCmd{}, "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
