package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultYamlConfig = "config.yml"
	DefaultTomlConfig = "queries.toml"
)

var Version string

func setupLogging(level string, logFile string) error {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(parsed)

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	if logFile == "" {
		log.SetOutput(os.Stderr)
		return nil
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", logFile, err)
	}
	log.SetOutput(file)
	return nil
}

func main() {
	cli := NewCli(os.Stdout)
	if err := cli.Execute(); err != nil {
		// fatal diagnostics always reach stderr, even when logging to a file
		if log.StandardLogger().Out != os.Stderr {
			log.SetOutput(io.MultiWriter(log.StandardLogger().Out, os.Stderr))
		}
		log.Fatalf("Error executing command: %v", err)
	}
}
