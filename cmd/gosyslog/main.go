package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"gosyslog/internal/cli"
	"gosyslog/internal/logctx"
)

const progVersion string = "v1.0.0"

func main() {
	cliOpts := cli.DefineOptions()

	args := os.Args
	commandFlags := flag.NewFlagSet(args[0], flag.ExitOnError)
	requestedLogLevel := cli.SetGlobalArguments(commandFlags)

	commandFlags.Usage = func() {
		cli.PrintHelpMenu(commandFlags, cli.RootCLICommand, cliOpts)
	}
	if len(args) < 2 {
		cli.PrintHelpMenu(commandFlags, cli.RootCLICommand, cliOpts)
		os.Exit(1)
	}
	commandFlags.Parse(args[1:])

	// Retrieve command and args
	command := args[1]
	args = args[2:]

	// Setting global logging
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logger := logctx.NewLogger(*requestedLogLevel, os.Stderr)
	ctx = logctx.WithLogger(ctx, logger)

	// Process commands
	switch command {
	case "send":
		cli.SendMode(ctx, cliOpts, command, args)
	case "version":
		fmt.Printf("gosyslog %s\n", progVersion)
		fmt.Printf("Built using %s(%s) for %s on %s\n", runtime.Version(), runtime.Compiler, runtime.GOOS, runtime.GOARCH)
	default:
		cli.PrintHelpMenu(commandFlags, cli.RootCLICommand, cliOpts)
		os.Exit(1)
	}
}
