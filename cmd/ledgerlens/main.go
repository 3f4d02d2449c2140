package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ledgerlens/ledgerlens/internal/commands"
)

func main() {
	// Optional .env, e.g. LEDGERLENS_REPO=~/finance.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
