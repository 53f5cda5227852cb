package main

import (
	"modella_backend/internal/app"
	"modella_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("application failed", "error", err)
	}
}
