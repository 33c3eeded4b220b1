package main

import "github.com/HOKORISAMA/Triangle-Engine-Tools/cmd"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main start the cgf extraction cli
func main() {
	cmd.Run(version, commit, date)
}
