package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"moneta/internal/config"
	"moneta/internal/mockapi"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	server := mockapi.NewServer(mockapi.NewStore())

	addr := fmt.Sprintf(":%d", cfg.MockAPI.Port)
	slog.Info("starting stub backend", "addr", addr)

	if err := http.ListenAndServe(addr, server.Handler()); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
