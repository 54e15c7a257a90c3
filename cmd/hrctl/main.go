package main

import (
	"os"

	"hr-agent-system/cmd/hrctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
