package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/syncmarks/internal/server"
	"github.com/dmitrijs2005/syncmarks/internal/server/config"
)

func main() {

	ctx := context.Background()

	_ = godotenv.Load() // optional .env for local runs

	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
