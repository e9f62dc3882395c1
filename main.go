package main

import (
	"os"

	"github.com/xanderflood/relayctl/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:]))
}
