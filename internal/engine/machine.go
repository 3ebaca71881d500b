// Package engine runs one game session: it owns the player profile, walks the
// location tree and dispatches each location to its handler.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/game/combat"
	"github.com/cory-johannsen/dungeon/internal/game/command"
	"github.com/cory-johannsen/dungeon/internal/game/session"
	"github.com/cory-johannsen/dungeon/internal/game/world"
	"github.com/cory-johannsen/dungeon/internal/storage"
)

var (
	// ErrInvalidChoice marks input that is neither an offered option nor a control word.
	ErrInvalidChoice = errors.New("engine: invalid choice")
	// ErrExit is returned when the player leaves the game.
	ErrExit = errors.New("engine: exit requested")
	// ErrRestart is returned when the player confirms a restart.
	ErrRestart = errors.New("engine: restart requested")
	// ErrNoSession is returned by Run before a session is open.
	ErrNoSession = errors.New("engine: no open session")
)

// shutdownSaveTimeout bounds the save performed after the context is cancelled.
const shutdownSaveTimeout = 5 * time.Second

// ResultKind is how a session ended.
type ResultKind int

const (
	Exited ResultKind = iota
	Restart
	Died
	Interrupted
)

// String returns a lowercase name of the kind.
func (k ResultKind) String() string {
	switch k {
	case Exited:
		return "exited"
	case Restart:
		return "restart"
	case Died:
		return "died"
	case Interrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Result describes the end of a session.
type Result struct {
	Kind ResultKind
	// Fatal is set when Kind is Died.
	Fatal *session.FatalError
}

// Options tunes a Machine.
type Options struct {
	// VictoryBanner enables the one-time celebration when the victory set completes.
	VictoryBanner bool
}

// Machine is the navigation state machine of one session. It is not safe for
// concurrent use.
type Machine struct {
	content    *Content
	prompter   Prompter
	notifier   Notifier
	store      storage.Store
	resolver   *combat.Resolver
	commands   *command.Registry
	handlers   map[string]Handler
	opts       Options
	logger     *zap.Logger
	profile    *session.Profile
	celebrated bool
}

// NewMachine wires a Machine with the default handler table.
//
// Precondition: every argument must be non-nil; content should pass Validate(DefaultHandlers()).
func NewMachine(
	content *Content,
	prompter Prompter,
	notifier Notifier,
	store storage.Store,
	rng combat.Randomness,
	opts Options,
	logger *zap.Logger,
) *Machine {
	return &Machine{
		content:  content,
		prompter: prompter,
		notifier: notifier,
		store:    store,
		resolver: combat.NewResolver(rng, logger.Named("combat")),
		commands: command.DefaultRegistry(),
		handlers: DefaultHandlers(),
		opts:     opts,
		logger:   logger,
	}
}

// Profile returns the open session's profile, or nil before Open.
func (m *Machine) Profile() *session.Profile {
	return m.profile
}

// Play opens a session and runs it to completion.
//
// Postcondition: an exit requested while opening yields an Exited result.
func (m *Machine) Play(ctx context.Context) (Result, error) {
	if err := m.Open(ctx); err != nil {
		switch {
		case errors.Is(err, ErrExit):
			m.notifier.Notify(Event{Kind: EventFarewell})
			return Result{Kind: Exited}, nil
		case errors.Is(err, ErrRestart):
			return Result{Kind: Restart}, nil
		case ctx.Err() != nil:
			return Result{Kind: Interrupted}, nil
		}
		return Result{}, err
	}
	return m.Run(ctx)
}

// Open resumes the saved session or starts a new one, then saves it.
//
// Postcondition: on success Profile() is non-nil and the active slot holds it.
// A corrupt or unreadable save is logged and replaced by a fresh session.
func (m *Machine) Open(ctx context.Context) error {
	saved := m.loadSaved(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}

	resumed := false
	if saved != nil {
		choice, err := m.choose(ctx, "Do you want to start a new game or open your previous one? Type in 'open' to open your game or 'new' to start a new one", []string{"open", "new"})
		if err != nil {
			return err
		}
		if choice == "open" {
			m.profile = saved
			resumed = true
		}
	}
	if m.profile == nil {
		name, err := m.askName(ctx)
		if err != nil {
			return err
		}
		m.profile = session.NewProfile(name)
	}

	if err := m.store.Save(ctx, m.profile); err != nil {
		return fmt.Errorf("saving new session: %w", err)
	}
	m.logger.Info("session opened",
		zap.String("player", m.profile.Name()),
		zap.Stringer("path", m.profile.Path),
		zap.Bool("resumed", resumed),
	)
	m.notifier.Notify(Event{Kind: EventSessionStarted, Player: m.profile.Name(), Path: m.profile.Path, Resumed: resumed})
	return nil
}

func (m *Machine) loadSaved(ctx context.Context) *session.Profile {
	saved, err := m.store.Load(ctx)
	switch {
	case err != nil && errors.Is(err, session.ErrCorruptSession):
		m.logger.Warn("discarding corrupt saved session", zap.Error(err))
		return nil
	case err != nil:
		m.logger.Warn("loading saved session failed; starting fresh", zap.Error(err))
		return nil
	case saved == nil:
		return nil
	}
	if _, ok := m.content.World.Location(saved.Path); !ok {
		m.logger.Warn("discarding corrupt saved session",
			zap.Error(fmt.Errorf("%w: path %s not in world", session.ErrCorruptSession, saved.Path)),
		)
		return nil
	}
	return saved
}

func (m *Machine) askName(ctx context.Context) (string, error) {
	for {
		line, err := m.prompter.Ask(ctx, "Tell me your name")
		if err != nil {
			return "", err
		}
		name := strings.TrimSpace(line)
		if cmd, ok := m.commands.Resolve(name); ok && cmd.IsControl() {
			if err := m.control(ctx, cmd); err != nil {
				return "", err
			}
			continue
		}
		if name != "" {
			return name, nil
		}
	}
}

// Run drives the session until it ends.
//
// Precondition: Open must have succeeded.
// Postcondition: a cancelled ctx saves the profile and yields Interrupted.
func (m *Machine) Run(ctx context.Context) (Result, error) {
	if m.profile == nil {
		return Result{}, ErrNoSession
	}
	for {
		if ctx.Err() != nil {
			return m.interrupted(ctx), nil
		}
		t, err := m.step(ctx)
		if err != nil {
			var fatal *session.FatalError
			switch {
			case errors.As(err, &fatal):
				m.logger.Info("player died",
					zap.String("player", m.profile.Name()),
					zap.Stringer("path", m.profile.Path),
					zap.String("cause", fatal.Cause),
					zap.String("source", fatal.Source),
				)
				return Result{Kind: Died, Fatal: fatal}, nil
			case errors.Is(err, ErrExit):
				m.notifier.Notify(Event{Kind: EventFarewell, Player: m.profile.Name()})
				return Result{Kind: Exited}, nil
			case errors.Is(err, ErrRestart):
				return Result{Kind: Restart}, nil
			case ctx.Err() != nil:
				return m.interrupted(ctx), nil
			}
			return Result{}, err
		}
		if err := m.apply(t); err != nil {
			return Result{}, err
		}
	}
}

// step runs the handler of the current location.
func (m *Machine) step(ctx context.Context) (world.Transition, error) {
	loc, ok := m.content.World.Location(m.profile.Path)
	if !ok {
		return world.Transition{}, fmt.Errorf("engine: location %s not in world", m.profile.Path)
	}
	h, ok := m.handlers[loc.Path.Key()]
	if !ok {
		return world.Transition{}, fmt.Errorf("engine: no handler for %s", loc.Path)
	}
	if loc.Requires != "" && !m.profile.History.HasItem(loc.Requires) {
		fatal := &session.FatalError{Source: loc.Title, Cause: session.CauseLocation}
		m.notifier.Notify(Event{Kind: EventFatal, Player: m.profile.Name(), Path: loc.Path, Title: loc.Title, Text: loc.FatalText, Fatal: fatal})
		return world.Transition{}, fatal
	}
	return h(ctx, m, loc)
}

func (m *Machine) apply(t world.Transition) error {
	from := m.profile.Path
	next, returning, err := t.Apply(from)
	if err != nil {
		return fmt.Errorf("engine: applying %s at %s: %w", t, from, err)
	}
	m.profile.Path = next
	m.profile.Returning = returning
	m.logger.Debug("transition",
		zap.String("player", m.profile.Name()),
		zap.Stringer("from", from),
		zap.Stringer("transition", t),
		zap.Stringer("path", next),
	)
	return nil
}

func (m *Machine) interrupted(ctx context.Context) Result {
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownSaveTimeout)
	defer cancel()
	if err := m.store.Save(saveCtx, m.profile); err != nil {
		m.logger.Error("saving session on shutdown", zap.Error(err))
	} else {
		m.logger.Info("session saved on shutdown", zap.String("player", m.profile.Name()))
	}
	return Result{Kind: Interrupted}
}

// OfferRestart asks whether to play again after a death.
func (m *Machine) OfferRestart(ctx context.Context) (bool, error) {
	choice, err := m.confirm(ctx, "Would you like to play again? Type in 'restart' to restart, 'no' to end the game", []string{"restart", "no"})
	if err != nil {
		return false, err
	}
	if choice == "no" {
		m.notifier.Notify(Event{Kind: EventFarewell})
	}
	return choice == "restart", nil
}

// Save persists the open profile.
func (m *Machine) Save(ctx context.Context) error {
	if m.profile == nil {
		return ErrNoSession
	}
	start := time.Now()
	if err := m.store.Save(ctx, m.profile); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	m.logger.Info("session saved",
		zap.String("player", m.profile.Name()),
		zap.Stringer("path", m.profile.Path),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
