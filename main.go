package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/ziadkadry99/folio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
