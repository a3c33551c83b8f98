package main

import (
	"os"

	"github.com/ignatzorin/sponsorship-backend/internal/logger"
)

func main() {
	logger.Init("warn")
	logger.SetTextFormatter()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
