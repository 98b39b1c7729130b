// Command vtx1 is the command-line interface to the VTX1 assembler.
package main

import (
	"context"
	"os"

	"github.com/itworks99/vtx1/internal/cli"
	"github.com/itworks99/vtx1/internal/cli/cmd"
)

var commands = []cli.Command{
	cmd.Assembler(),
	cmd.Browse(),
}

func main() {
	result :=
		cli.New(context.Background()).
			WithLogger(os.Stderr).
			WithCommands(commands).
			WithHelp(cmd.Help(commands)).
			Execute(os.Args[1:])

	os.Exit(result)
}
