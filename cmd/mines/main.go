package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/Doct0rLekter/minesweeper/internal/config"
	"github.com/Doct0rLekter/minesweeper/internal/console"
	"github.com/Doct0rLekter/minesweeper/internal/mines"
)

var (
	log = logrus.New()

	envPath    string
	difficulty string
	custom     string
	seed       string
)

func init() {
	flag.StringVar(&envPath, "env", ".env", "dotenv file path")
	flag.StringVar(&difficulty, "difficulty", "", "easy, medium or hard (prompted when empty)")
	flag.StringVar(&difficulty, "d", "", "difficulty (shorthand)")
	flag.StringVar(&custom, "custom", "", `custom board, e.g. "width=9&height=9&mines=10" or "9:9:10"`)
	flag.StringVar(&seed, "seed", "", `PCG seed pair "seed1:seed2" for a reproducible layout`)
}

func setupLogging(cfg *config.Logging) {
	log.SetLevel(cfg.Level)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: config.Development()})

	if cfg.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Level:      cfg.Level,
			Formatter: &logrus.JSONFormatter{
				TimestampFormat: time.RFC3339,
			},
		})
		if err != nil {
			log.Fatal("unable to create log file hook: ", err)
		}
		log.AddHook(hook)
		// the terminal belongs to the game
		log.SetOutput(io.Discard)
	}

	mines.Log = log
}

func gameParams(cfg *config.Game) (*mines.GameParams, error) {
	if custom == "" {
		custom = cfg.Params
	}
	if custom != "" {
		p, err := mines.ParseQuery(custom)
		if err != nil {
			p, err = mines.ParseSeed(custom)
		}
		if err != nil {
			return nil, err
		}
		return &p, nil
	}

	if difficulty == "" {
		difficulty = cfg.Difficulty
	}
	if difficulty != "" {
		d, err := console.ParseDifficulty(difficulty)
		if err != nil {
			return nil, err
		}
		p := d.Params()
		return &p, nil
	}

	return nil, nil
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	if err := config.Load(envPath); err != nil {
		log.Fatal(err)
	}

	logCfg, err := config.NewLogging()
	if err != nil {
		log.Fatal("unable to read logging config: ", err)
	}
	setupLogging(logCfg)

	gameCfg, err := config.NewGame()
	if err != nil {
		log.Fatal("unable to read game config: ", err)
	}
	if seed != "" {
		if gameCfg.Seed, err = config.ParseRandSeed(seed); err != nil {
			log.Fatal(err)
		}
	}

	params, err := gameParams(gameCfg)
	if err != nil {
		log.Fatal("invalid game parameters: ", err)
	}

	log.WithFields(logrus.Fields{
		"params":   params,
		"seeded":   gameCfg.Seed != nil,
		"log_file": logCfg.File,
	}).Debug("config")

	session := &console.Session{
		In:     os.Stdin,
		Out:    os.Stdout,
		Log:    log,
		Params: params,
		Rand:   gameCfg.NewRand(),
	}

	if err := session.Run(mainCtx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("exit reason: %s", err)
	}
}
