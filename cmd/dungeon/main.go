// Package main provides the dungeon binary: a single-player text adventure
// played on the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/content"
	"github.com/cory-johannsen/dungeon/internal/config"
	"github.com/cory-johannsen/dungeon/internal/engine"
	"github.com/cory-johannsen/dungeon/internal/frontend/console"
	"github.com/cory-johannsen/dungeon/internal/game/dice"
	"github.com/cory-johannsen/dungeon/internal/observability"
	"github.com/cory-johannsen/dungeon/internal/server"
	"github.com/cory-johannsen/dungeon/internal/storage"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file; empty uses defaults and DUNGEON_* environment variables")
	contentDir := flag.String("content", "", "directory holding world.yaml, items.yaml and enemies.yaml; overrides game.content_dir")
	noSave := flag.Bool("no-save", false, "keep progress in memory only")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *contentDir != "" {
		cfg.Game.ContentDir = *contentDir
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, *noSave, logger); err != nil {
		logger.Error("dungeon failed", zap.Error(err), zap.Duration("uptime", time.Since(start)))
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("dungeon exited", zap.Duration("uptime", time.Since(start)))
}

func run(cfg config.Config, noSave bool, logger *zap.Logger) error {
	ctx := context.Background()

	gameContent, err := loadContent(cfg.Game.ContentDir)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(ctx, cfg, noSave, logger.Named("store"))
	if err != nil {
		return err
	}

	con := console.New(os.Stdin, os.Stdout, cfg.Console, logger.Named("console"))
	roller := dice.NewLoggedRoller(dice.NewCryptoSource(), logger.Named("dice"))
	opts := engine.Options{VictoryBanner: cfg.Game.VictoryBanner}

	lc := server.NewLifecycle(logger)
	lc.Add("store", &server.FuncService{
		StartFn: func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		},
		StopFn: closeStore,
	})
	lc.Add("game", &server.FuncService{
		StartFn: func(ctx context.Context) error {
			return play(ctx, gameContent, con, store, roller, opts, logger)
		},
	})
	return lc.Run(ctx)
}

// loadContent reads the game content from dir, or the embedded content when
// dir is empty, and checks it against the handler table.
func loadContent(dir string) (*engine.Content, error) {
	var fsys fs.FS = content.FS
	if dir != "" {
		fsys = os.DirFS(dir)
	}
	c, err := engine.LoadContent(fsys)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	if err := c.Validate(engine.DefaultHandlers()); err != nil {
		return nil, fmt.Errorf("validating content: %w", err)
	}
	return c, nil
}

// play runs sessions until the player leaves, the input ends or ctx is done.
func play(
	ctx context.Context,
	c *engine.Content,
	con *console.Console,
	store storage.Store,
	roller *dice.Roller,
	opts engine.Options,
	logger *zap.Logger,
) error {
	con.Banner()
	for {
		m := engine.NewMachine(c, con, con, store, roller, opts, logger.Named("engine"))
		res, err := m.Play(ctx)
		if err != nil {
			if errors.Is(err, console.ErrInputClosed) {
				return saveOnInputClosed(ctx, m, logger)
			}
			return err
		}
		logger.Debug("session ended", zap.Stringer("result", res.Kind))

		switch res.Kind {
		case engine.Restart:
			continue
		case engine.Died:
			again, err := m.OfferRestart(ctx)
			switch {
			case err != nil && (errors.Is(err, console.ErrInputClosed) || ctx.Err() != nil):
				return nil
			case err != nil:
				return err
			case again:
				continue
			}
			return nil
		default:
			return nil
		}
	}
}

func saveOnInputClosed(ctx context.Context, m *engine.Machine, logger *zap.Logger) error {
	if m.Profile() == nil {
		return nil
	}
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := m.Save(saveCtx); err != nil {
		return fmt.Errorf("saving after input closed: %w", err)
	}
	logger.Info("input closed; session saved", zap.String("player", m.Profile().Name()))
	return nil
}
