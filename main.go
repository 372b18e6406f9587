package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/listo/cmd"
	"github.com/thenoetrevino/listo/internal/cli"
	"github.com/thenoetrevino/listo/internal/config"
	"github.com/thenoetrevino/listo/internal/logging"
)

func main() {
	closer, err := logging.Init(config.DataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logging.Discard()
	} else {
		defer closer.Close()
	}

	if err := cmd.Execute(); err != nil {
		code := cli.ExitCodeFor(err)
		if closer != nil {
			closer.Close()
		}
		os.Exit(code)
	}
}
