// Package main runs the chapter website.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/aichenitrkl/chapterweb/internal/cmd/web"
)

func main() {
	log.SetPrefix("[WEB] ")
	cfg, err := webcmd.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := webcmd.NewRootCommand(cfg, log.Default()).ExecuteContext(ctx); err != nil {
		log.Fatalf("chapterweb: %v", err)
	}
}
