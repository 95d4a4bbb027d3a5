package main

import (
	"os"

	"github.com/sysc-tools/scdbg/cmd/scdbg/cmds"
)

func main() {
	if err := cmds.New().Execute(); err != nil {
		os.Exit(1)
	}
}
