package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/game/command"
)

// choose asks until the player names one of options. Control words are
// handled in place: save persists and asks again, exit and restart may end
// the session with ErrExit or ErrRestart.
func (m *Machine) choose(ctx context.Context, message string, options []string) (string, error) {
	return m.ask(ctx, message, options, true)
}

// confirm is choose without control words.
func (m *Machine) confirm(ctx context.Context, message string, options []string) (string, error) {
	return m.ask(ctx, message, options, false)
}

func (m *Machine) ask(ctx context.Context, message string, options []string, allowControl bool) (string, error) {
	for {
		line, err := m.prompter.Choose(ctx, Prompt{Message: message, Options: options, Snapshot: m.snapshot()})
		if err != nil {
			return "", err
		}
		if opt, ok := command.Match(line, options); ok {
			return opt, nil
		}
		if cmd, ok := m.commands.Resolve(line); ok && cmd.IsControl() && allowControl {
			if err := m.control(ctx, cmd); err != nil {
				return "", err
			}
			continue
		}
		m.logger.Debug("rejected input",
			zap.Error(fmt.Errorf("%w: %q", ErrInvalidChoice, line)),
			zap.Strings("options", options),
		)
		m.notifier.Notify(Event{Kind: EventInvalidChoice, Options: options})
	}
}

// control acts on one control word. A nil return means the caller should ask again.
func (m *Machine) control(ctx context.Context, cmd *command.Command) error {
	switch cmd.Handler {
	case command.HandlerSave:
		m.saveAndNotify(ctx)
		return nil
	case command.HandlerExit:
		choice, err := m.confirm(ctx, "Do you want to save your current state of the game? Type in 'yes' to save your game or 'no' to just leave", []string{"yes", "no"})
		if err != nil {
			return err
		}
		if choice == "yes" {
			m.saveAndNotify(ctx)
		}
		return ErrExit
	case command.HandlerRestart:
		choice, err := m.confirm(ctx, "Are you sure? Type in 'yes' or 'no'", []string{"yes", "no"})
		if err != nil {
			return err
		}
		if choice == "yes" {
			return ErrRestart
		}
		return nil
	default:
		return nil
	}
}

func (m *Machine) saveAndNotify(ctx context.Context) {
	if m.profile == nil {
		m.notifier.Notify(Event{Kind: EventNarration, Text: "Sorry, but there is nothing to save."})
		return
	}
	if err := m.Save(ctx); err != nil {
		m.logger.Error("save failed", zap.Error(err))
		m.notifier.Notify(Event{Kind: EventNarration, Text: "Sorry, your progress could not be saved."})
		return
	}
	m.notifier.Notify(Event{Kind: EventSaved, Player: m.profile.Name(), Path: m.profile.Path})
}

func (m *Machine) snapshot() Snapshot {
	if m.profile == nil {
		return Snapshot{}
	}
	return Snapshot{
		Player: m.profile.Name(),
		Path:   m.profile.Path,
		Items:  m.profile.History.Items(),
	}
}
