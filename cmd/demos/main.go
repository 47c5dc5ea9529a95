package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"

	"gldemos/internal/logger"
	"gldemos/pkg/config"
	"gldemos/pkg/demos"
	"gldemos/pkg/engine"
)

func init() {
	// GLFW requires the program to be running on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file (.yaml or .toml)")
	demoName := flag.String("demo", "", "Demo to run: "+strings.Join(demos.Names(), ", "))
	logLevel := flag.String("log-level", "", "Override the configured log level")
	list := flag.Bool("list", false, "List the available demos and exit")
	watch := flag.Bool("watch", false, "Reload the demo when the configuration file changes")
	writeConfig := flag.String("write-config", "", "Write the effective configuration to this path and exit")
	flag.Parse()

	if *list {
		for _, name := range demos.Names() {
			fmt.Println(name)
		}
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	missing := config.IsNotExist(err)
	if err != nil && !missing {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *demoName != "" {
		cfg.Demo = *demoName
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if *writeConfig != "" {
		if err := config.SaveConfig(cfg, *writeConfig); err != nil {
			log.Fatalf("Failed to write configuration: %v", err)
		}
		fmt.Printf("configuration written to %s\n", *writeConfig)
		return
	}

	logger := logger.NewLogger(cfg.LogLevel)
	if cfg.LogFile != "" {
		if logger, err = newMultiLogger(cfg); err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
	}
	defer logger.Close()

	if missing {
		logger.Warnf("%s not found, using built-in defaults", *configPath)
	}
	logger.Infof("Starting GL demos (%s)...", cfg.Demo)

	game, err := engine.NewEngine(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize engine: %v", err)
	}

	if *watch {
		if err := game.WatchConfig(*configPath, *demoName); err != nil {
			logger.Warnf("Config hot reload disabled: %v", err)
		}
	}

	logger.Info("Engine initialized, starting render loop...")
	game.Run()
}

func newMultiLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.NewMultiLogger(cfg.LogLevel, cfg.LogFile)
}
