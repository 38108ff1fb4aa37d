package main

import (
	"log"

	"wager_backend/internal/app"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
