// find-track-by-color - locate saved tracks by album-art colour.
package main

import (
	"os"

	"github.com/ekuinox/find-track-by-color/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
