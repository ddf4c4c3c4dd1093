package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/fixonz/malakainvadors/internal/config"
	"github.com/fixonz/malakainvadors/internal/core"
	"github.com/fixonz/malakainvadors/internal/engine"
	"github.com/fixonz/malakainvadors/internal/logging"
	"github.com/fixonz/malakainvadors/internal/platform"
	"github.com/fixonz/malakainvadors/internal/storage"
)

const defaultLogFile = "~/.invaders/invaders.log"

// app holds what every subcommand shares.
type app struct {
	rules   *engine.Rules
	store   engine.ScoreStore
	logger  *log.Logger
	runtime core.RuntimeConfig
	closers []io.Closer
}

// setup loads config and opens the score store and logger. logFile is
// used when --log-file is not given; empty logs to stderr.
func setup(logFile string) (*app, error) {
	a := &app{}

	if flagLogFile != "" {
		logFile = flagLogFile
	}
	logger, closer, err := logging.New(logging.Options{Level: flagLogLevel, File: logFile}, os.Stderr)
	if err != nil {
		return nil, err
	}
	a.logger = logger
	a.closers = append(a.closers, closer)

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		a.close()
		return nil, err
	}
	logger.Debug("config loaded", "source", source)

	a.rules, err = engine.NewRules(cfg)
	if err != nil {
		a.close()
		return nil, err
	}

	a.store = a.openStore()

	a.runtime = core.DefaultConfig()
	a.runtime.TickRate = flagFPS
	a.runtime.Seed = flagSeed
	a.runtime.Sound = flagSound
	if flagName != "" {
		a.runtime.PlayerName = flagName
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		a.runtime.ScreenW = w
		a.runtime.ScreenH = h
	}
	return a, nil
}

// openStore opens the configured score store. Failure is not fatal; the
// game runs without persistence.
func (a *app) openStore() engine.ScoreStore {
	if flagScoresFile != "" {
		fs, err := storage.OpenFile(flagScoresFile)
		if err != nil {
			a.logger.Warn("could not open scores file", "path", flagScoresFile, "err", err)
			return nil
		}
		return fs
	}

	db, err := storage.Open(flagDBPath)
	if err != nil {
		a.logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	a.closers = append(a.closers, db)
	return db
}

func (a *app) deps() platform.Deps {
	return platform.Deps{Rules: a.rules, Store: a.store, Logger: a.logger}
}

// machineOptions returns engine options derived from flags.
func machineOptions() ([]engine.Option, error) {
	if flagDifficulty == "" {
		return nil, nil
	}
	d, err := engine.ParseDifficulty(flagDifficulty)
	if err != nil {
		return nil, err
	}
	return []engine.Option{engine.WithDifficulty(d)}, nil
}

func (a *app) machine() (*engine.Machine, error) {
	opts, err := machineOptions()
	if err != nil {
		return nil, err
	}
	return platform.NewMachine(a.deps(), a.runtime, opts...), nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i].Close()
	}
	a.closers = nil
}

// fail prints err and exits.
func fail(what string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", what, err)
	os.Exit(1)
}
