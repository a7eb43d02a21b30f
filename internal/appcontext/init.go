package appcontext

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/roypriyanshu02/graphic-walker-app/internal/config"
)

// Init wires config, logger and database into the shared context handed
// to every handler.
func Init() (*Context, error) {
	if err := godotenv.Load(); err != nil {
		zap.L().Warn("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger, err := config.InitLogger(cfg)
	if err != nil {
		return nil, err
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &Context{
		DB:     db,
		Logger: logger,
		Config: cfg,
	}, nil
}
