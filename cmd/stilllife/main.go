package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"StillLife3D/internal/config"
	"StillLife3D/internal/engine"
	"StillLife3D/internal/logger"

	"go.uber.org/zap"
)

func init() {
	// GLFW and OpenGL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the TOML configuration file")
	assetDir := flag.String("assets", "", "texture directory, overrides assets.dir")
	flag.Parse()

	os.Exit(run(*configPath, *assetDir))
}

func run(configPath, assetDir string) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if assetDir != "" {
		cfg.Assets.Dir = assetDir
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logger.Sync()

	logger.Log.Info("Still life starting",
		zap.String("config", configPath),
		zap.String("assets", cfg.Assets.Dir))

	if err := engine.New(cfg).Run(); err != nil {
		logger.Log.Error("Engine stopped", zap.Error(err))
		return 1
	}
	return 0
}
