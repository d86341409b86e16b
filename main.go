package main

import "github.com/mamonu/syncroboverb/cmd"

// main is the entry point of the resgen CLI.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
