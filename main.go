package main

import (
	"log"
	"os"

	"subsplit/pkg/cli"
)

func main() {
	if err := cli.Run(os.Args); err != nil {
		log.Fatalf("subsplit: %v", err)
	}
}
