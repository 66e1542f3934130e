package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const DefaultEnvFile = ".env"

// LoadEnvFile copies KEY=VALUE pairs from path into the process environment.
// Variables already present are left alone, so repeated calls are no-ops.
// A missing or unreadable file is never fatal.
func LoadEnvFile(path string) {
	if path == "" {
		path = DefaultEnvFile
	}

	err := godotenv.Load(path)
	switch {
	case err == nil:
		log.WithField("path", path).Debug("environment file loaded")
	case errors.Is(err, fs.ErrNotExist):
		log.WithField("path", path).Debug("environment file not found, skipping")
	default:
		log.WithFields(log.Fields{
			"path":  path,
			"error": err,
		}).Warn("failed to load environment file, continuing")
	}
}
