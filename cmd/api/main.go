package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/hamed0406/sharewatch/internal/config"
	"github.com/hamed0406/sharewatch/internal/fileshare"
	"github.com/hamed0406/sharewatch/internal/httpapi"
	apimw "github.com/hamed0406/sharewatch/internal/httpapi/middleware"
	"github.com/hamed0406/sharewatch/internal/logging"
	"github.com/hamed0406/sharewatch/internal/orchestrator"
	"github.com/hamed0406/sharewatch/internal/probe"
	"github.com/hamed0406/sharewatch/internal/scheduler"
	"github.com/hamed0406/sharewatch/internal/snapshot"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	websites := probe.NewWebsiteChecker(cfg.HTTPTimeout)
	shares := fileshare.NewShareChecker(fileshare.NewS3Opener(cfg.S3Region), cfg.StoreOpTimeout, logger)

	orch := orchestrator.New(logger, websites, shares, cfg.MaxConcurrentChecks)

	targets, err := config.LoadTargets(cfg.TargetsFile)
	if err != nil {
		log.Fatal(err)
	}
	orch.SetTargets(targets)

	store := snapshot.NewStore()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go scheduler.NewRunner(logger, orch, store, cfg.CheckInterval).Run(ctx)

	api := httpapi.NewServer(logger, orch, store, cfg.TargetsFile)
	keys := apimw.Keys{Public: cfg.PublicAPIKeys, Admin: cfg.AdminAPIKeys}
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.Router(keys, 120, 60, 60, 30),
	}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	logger.Info("api_listen",
		zap.String("addr", cfg.Addr),
		zap.Duration("check_interval", cfg.CheckInterval),
		zap.Int("targets", targets.Len()),
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
