package main

import (
	"os"

	"github.com/samboofficeota-hue/finance-analysis/cmd/edinet/commands"
)

// main is the entry point for the EDINET CLI
// ⭐ 統合CLI入口: go run ./cmd/edinet [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
