package main

import (
	"context"
	"flag"

	log "github.com/sirupsen/logrus"

	"github.com/techted89/redtedcasino/internal/app"
)

var envPath = flag.String("env", ".env", "path to the env file")

func main() {
	flag.Parse()

	ctx := context.Background()

	a, err := app.NewApp(ctx, *envPath)
	if err != nil {
		log.Fatalf("failed to init app: %v", err)
	}

	if err := a.Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
