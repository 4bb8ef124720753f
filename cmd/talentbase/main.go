package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"talentbase/internal/app"
	"talentbase/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer a.Close()

	if status, err := a.Syncer.Status(ctx); err == nil {
		log.Printf("sync status: pending=%v lastSyncAt=%v", status.PendingChanges, status.LastSyncAt)
	}

	go a.StartOnlineStatusWatcher(ctx)

	<-ctx.Done()
}
