package main

import (
	"flag"

	"RoomViewer/internal/config"
	"RoomViewer/internal/engine"
	"RoomViewer/internal/logger"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file")
	debug := flag.Bool("debug", false, "debug logging and wireframe rendering")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if *debug {
		cfg.Debug = true
	}
	logger.Init(cfg.Debug)
	defer logger.Sync()

	if err != nil {
		logger.Log.Fatal("Could not load config", zap.String("path", *configPath), zap.Error(err))
	}

	logger.Log.Info("Room viewer starting", zap.String("config", *configPath), zap.Bool("debug", cfg.Debug))

	viewer, err := engine.NewViewer(cfg)
	if err != nil {
		logger.Log.Fatal("Could not start viewer", zap.Error(err))
	}
	if err := viewer.Run(); err != nil {
		logger.Log.Fatal("Viewer stopped", zap.Error(err))
	}
}
