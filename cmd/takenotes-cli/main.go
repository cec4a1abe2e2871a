package main

import (
	"github.com/joho/godotenv"

	"takenotes/cmd/takenotes-cli/cmd"
)

func main() {
	_ = godotenv.Load()
	cmd.Execute()
}
