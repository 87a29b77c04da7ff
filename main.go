package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/mordilloSan/onelinelogger/logger"
)

// Example demonstrating onelinelogger usage.
func main() {
	_ = godotenv.Load()

	cfg, err := logger.ConfigFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Usage: ./onelinelogger [logfile]
	// Example: ./onelinelogger ./app.log
	if len(os.Args) > 1 {
		cfg.FilePath = os.Args[1]
	}
	cfg.LabelPadWidth = 6

	settings := logger.NewSettings(cfg)
	defer settings.Flush() // wait for file appends before exit

	root := logger.New(settings, "")
	db := root.Create("db")
	api := root.Create("api")

	if cfg.FilePath != "" {
		root.Infof("Logging to file: %s", cfg.FilePath)
	} else {
		root.Info("Logging to console only (provide a log file path to enable file logging)")
	}

	db.Debug("opening pool", map[string]any{"host": "localhost", "port": 5432})
	db.Info("connected")
	api.Warn("slow request", map[string]any{"path": "/api/users", "ms": 742})
	api.Error("request failed", errors.New("connection reset"))
	root.Highlight("all systems go")

	// Raising the threshold through one logger affects every logger.
	if err := api.SetLevelName("warn"); err != nil {
		root.Error(err)
	}
	db.Info("this is suppressed")
	db.Log("LOG lines are never filtered; level is", db.LevelName())

	// Route package-level functions and the standard log package through root.
	root.BindAsGlobalConsole()
	logger.Highlight("package-level call")
	log.Println("standard library log call")
}
