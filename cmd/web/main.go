package main

import (
	"arenaapp_backend/internal/app"
	"arenaapp_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server exited", "error", err.Error())
	}
}
