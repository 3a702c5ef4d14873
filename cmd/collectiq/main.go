package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"CollectIQ/internal/config"
	"CollectIQ/internal/model"
	"CollectIQ/internal/pipeline"
	"CollectIQ/internal/scheduler"
	"CollectIQ/internal/source"
	"CollectIQ/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] CollectIQ starting...")

	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	profile := model.ProductProfile{
		Name:    cfg.Product.Name,
		SetName: cfg.Product.SetName,
		Single:  cfg.Product.Single,
	}

	// Init source
	var src source.Source
	if cfg.Source.ListingsFile != "" || cfg.Source.HistoryFile != "" {
		src = source.NewFileSource(cfg.Source.ListingsFile, cfg.Source.HistoryFile)
	} else {
		src = &source.MockSource{BasePrice: 150}
	}
	log.Printf("[INFO] listing source: %s", src.Name())

	// Init pipeline (no semantic classifier by default)
	p := pipeline.New(nil, nil, cfg.Pipeline.OutlierK)

	// Init store
	var st store.Store
	if cfg.Database.SQLitePath != "" {
		ss, err := store.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite store failed, using noop: %v", err)
			st = store.NewNoopStore()
		} else {
			st = ss
			defer ss.Close()
		}
	} else {
		st = store.NewNoopStore()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, src, p, st, profile)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing refresh now")
		go sched.RunRefreshNow()
	}

	log.Println("[INFO] CollectIQ is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] CollectIQ stopped")
}
