package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/bootstrap"
	infrasentry "github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/infrastructure/sentry"
)

func main() {
	ctx := context.Background()

	svc, err := bootstrap.NewService(ctx)
	if err != nil {
		slog.Error("Service bootstrap failed", "error", err)
		os.Exit(1)
	}

	logger := bootstrap.NewLogger("api-coach")
	if err := infrasentry.Init(infrasentry.ConfigFromEnv("api-coach"), logger); err != nil {
		logger.Warn("Sentry init failed, continuing without it", "error", err)
	}
	defer infrasentry.Flush(2 * time.Second)

	server := NewServer(svc)
	addr := ":" + svc.Config.Port

	logger.Info("Coach API listening", "addr", addr)
	if err := http.ListenAndServe(addr, server.Router()); err != nil {
		logger.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
