package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

type Logging struct {
	Level      logrus.Level
	File       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

func lookupInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	return v, nil
}

func NewLogging() (*Logging, error) {
	level := logrus.InfoLevel
	if Development() {
		level = logrus.DebugLevel
	}
	if levelStr, ok := os.LookupEnv("LOG_LEVEL"); ok {
		var err error
		level, err = logrus.ParseLevel(levelStr)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
	}

	maxSize, err := lookupInt("LOG_MAX_SIZE", 5)
	if err != nil {
		return nil, err
	}
	maxBackups, err := lookupInt("LOG_MAX_BACKUPS", 3)
	if err != nil {
		return nil, err
	}
	maxAge, err := lookupInt("LOG_MAX_AGE", 7)
	if err != nil {
		return nil, err
	}

	config := &Logging{
		Level:      level,
		File:       os.Getenv("LOG_FILE"),
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
	}

	return config, nil
}
