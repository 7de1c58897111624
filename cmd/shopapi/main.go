package main

import (
	"log"

	"github.com/loomandfold/loom/internal/shop/app"
)

func main() {
	application, err := app.New(app.LoadConfig())
	if err != nil {
		log.Fatalf("shop-api failed to start: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("shop-api exited: %v", err)
	}
}
