// Package main is the entry point for the piezo CLI.
//
// Usage:
//
//	piezo [flags] <command> [args]
//
// Commands:
//
//	list      - List built-in and stored songs
//	show      - Show a song's note table
//	events    - Show the tone/gap events a player performs
//	export    - Export a song as MIDI, YAML, JSON or msgpack
//	import    - Validate a song file and store it in the songbook
//	delete    - Remove a stored song
//	version   - Show version information
package main

import (
	"os"

	"github.com/haivivi/piezo/cmd/piezo/commands"
	"github.com/haivivi/piezo/pkg/cli"
)

func main() {
	if err := commands.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
