package main

import (
	"context"
	"log"
	"time"

	"roomshare-server/config"
	"roomshare-server/di"
)

const cacheRefreshInterval = 15 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	container, err := di.NewContainer(cfg)
	if err != nil {
		log.Fatalf("init container: %v", err)
	}
	defer container.Postgres.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	container.CacheRefresher.RefreshViewports(ctx)
	container.CacheRefresher.StartPeriodicJob(ctx, cacheRefreshInterval)

	if err := container.HttpServer.Start(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
