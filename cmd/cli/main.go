package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/mxradar/mxradar/internal/buildinfo"
	"github.com/mxradar/mxradar/internal/cli"
	"github.com/mxradar/mxradar/internal/config"
	"github.com/mxradar/mxradar/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
