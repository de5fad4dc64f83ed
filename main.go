package main

import (
	"os"

	"github.com/C-S-I-FIIT/egis/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
