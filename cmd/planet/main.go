package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"planet-viewer/config"
	"planet-viewer/internal/logger"
	"planet-viewer/io"
	"planet-viewer/scene"
)

func main() {
	configPath := flag.String("config", "planet.yaml", "Path to configuration file")
	exportPath := flag.String("export", "", "Write the torus mesh to this .obj, .gltf or .glb file and exit")
	statePath := flag.String("state", "", "Load the camera and sun from this JSON file and save them on exit")
	writeConfig := flag.String("write-config", "", "Write the effective configuration to this YAML file and exit")
	flag.Parse()

	cfg, cfgErr := config.LoadConfig(*configPath)

	if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		// fall back to the default level so the failure itself is visible
		_ = logger.Init("info", cfg.Log.Development)
		logger.Log.Warn("invalid log level", zap.Error(err))
	}
	defer logger.Sync()

	if cfgErr != nil {
		if errors.Is(cfgErr, fs.ErrNotExist) {
			logger.Log.Info("no config file, using defaults", zap.String("path", *configPath))
		} else {
			logger.Log.Fatal("failed to load configuration", zap.String("path", *configPath), zap.Error(cfgErr))
		}
	}
	if err := cfg.Validate(); err != nil {
		logger.Log.Fatal("invalid configuration", zap.Error(err))
	}

	if *writeConfig != "" {
		if err := config.SaveConfig(cfg, *writeConfig); err != nil {
			logger.Log.Fatal("failed to write configuration", zap.Error(err))
		}
		logger.Log.Info("wrote configuration", zap.String("path", *writeConfig))
		return
	}

	if *exportPath != "" {
		mesh := cfg.Torus.Shape().Mesh()
		if err := io.Export(*exportPath, []*scene.Mesh{mesh}); err != nil {
			logger.Log.Fatal("export failed", zap.Error(err))
		}
		logger.Log.Info("exported torus mesh",
			zap.String("path", *exportPath),
			zap.Int("vertices", len(mesh.Positions)),
			zap.Int("triangles", mesh.TriangleCount()),
		)
		return
	}

	a, err := newApp(cfg, *statePath)
	if err != nil {
		logger.Log.Error("startup failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer a.destroy()

	a.run()
}
