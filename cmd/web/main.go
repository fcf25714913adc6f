package main

import (
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/ignacioainol/Mern-Amazona/internal/api"
	"github.com/ignacioainol/Mern-Amazona/internal/config"
	apphttp "github.com/ignacioainol/Mern-Amazona/internal/http"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	apiClient := api.New(cfg.APIBaseURL)

	r := apphttp.NewRouter(logger, cfg, apiClient)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
