package container

import (
	"fmt"
	"io"
	"os"

	"projects/showcase/internal/config"

	log "github.com/sirupsen/logrus"
)

// setupLogging configures the global logrus logger. While the TUI owns the
// terminal, logs go to log.file or nowhere.
func (c *Container) setupLogging() error {
	cfg := c.Config.Log

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		c.logFile = f
		log.SetOutput(f)
	case c.Config.UI.Mode == config.ModeTUI:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}

	return nil
}
