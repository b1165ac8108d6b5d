package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	server, err := InitializeServer()
	if err != nil {
		log.Fatalf("could not create server: %s", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = server.Run(ctx)
	if err != nil {
		log.Fatalf("server stopped: %s", err)
	}
}
