package console_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/config"
	"github.com/cory-johannsen/dungeon/internal/engine"
	"github.com/cory-johannsen/dungeon/internal/frontend/console"
	"github.com/cory-johannsen/dungeon/internal/game/combat"
	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/npc"
	"github.com/cory-johannsen/dungeon/internal/game/session"
	"github.com/cory-johannsen/dungeon/internal/game/world"
)

func newConsole(input string) (*console.Console, *bytes.Buffer) {
	var out bytes.Buffer
	c := console.New(strings.NewReader(input), &out, config.ConsoleConfig{Color: false, Width: 80}, zap.NewNop())
	return c, &out
}

func TestChoose_ReturnsLineAndShowsPrompt(t *testing.T) {
	c, out := newConsole("left door\n")
	got, err := c.Choose(context.Background(), engine.Prompt{
		Message: "Through which one would you like to go?",
		Options: []string{"left door", "right door"},
	})
	require.NoError(t, err)
	assert.Equal(t, "left door", got)
	assert.Contains(t, out.String(), "Through which one would you like to go?")
	assert.Contains(t, out.String(), "[left door / right door]")
}

func TestChoose_StripsControlCharacters(t *testing.T) {
	c, _ := newConsole("take\r\n")
	got, err := c.Choose(context.Background(), engine.Prompt{Message: "?", Options: []string{"take"}})
	require.NoError(t, err)
	assert.Equal(t, "take", got)
}

func TestChoose_AnswersItemsLocally(t *testing.T) {
	c, out := newConsole("items\nleave\n")
	sword := inventory.Item{Name: "sword", Category: inventory.CategoryWeapon, Score: 10}
	got, err := c.Choose(context.Background(), engine.Prompt{
		Message:  "Write either 'take' or 'leave'",
		Options:  []string{"take", "leave"},
		Snapshot: engine.Snapshot{Items: []inventory.Item{sword}},
	})
	require.NoError(t, err)
	assert.Equal(t, "leave", got)
	assert.Contains(t, out.String(), "These are the current items in your bag: sword")
}

func TestChoose_EmptyBag(t *testing.T) {
	c, out := newConsole("I\nstay\n")
	_, err := c.Choose(context.Background(), engine.Prompt{Message: "?", Options: []string{"stay"}})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "You currently have no items in your bag.")
}

func TestChoose_AnswersMapAndHelpLocally(t *testing.T) {
	c, out := newConsole("map\nhelp\nreturn\n")
	got, err := c.Choose(context.Background(), engine.Prompt{
		Message:  "?",
		Options:  []string{"return"},
		Snapshot: engine.Snapshot{Path: world.PathOf(world.RightRoom)},
	})
	require.NoError(t, err)
	assert.Equal(t, "return", got)
	assert.Contains(t, out.String(), "left---middle----right")
	assert.Contains(t, out.String(), "Welcome to Dungeons and Dreagons.")
}

func TestChoose_PassesControlWordsThrough(t *testing.T) {
	c, _ := newConsole("save\n")
	got, err := c.Choose(context.Background(), engine.Prompt{Message: "?", Options: []string{"stay"}})
	require.NoError(t, err)
	assert.Equal(t, "save", got)
}

func TestAsk_ReturnsFreeText(t *testing.T) {
	c, out := newConsole("Ada Lovelace\n")
	got, err := c.Ask(context.Background(), "Tell me your name")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got)
	assert.Contains(t, out.String(), "Tell me your name")
}

func TestRead_LastLineWithoutNewline(t *testing.T) {
	c, _ := newConsole("exit")
	got, err := c.Ask(context.Background(), "?")
	require.NoError(t, err)
	assert.Equal(t, "exit", got)
}

func TestRead_InputClosed(t *testing.T) {
	c, _ := newConsole("")
	_, err := c.Ask(context.Background(), "?")
	require.ErrorIs(t, err, console.ErrInputClosed)
	assert.ErrorIs(t, err, io.EOF)

	_, err = c.Choose(context.Background(), engine.Prompt{Message: "?"})
	assert.ErrorIs(t, err, console.ErrInputClosed)
}

func TestRead_ContextCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	c := console.New(r, io.Discard, config.ConsoleConfig{Width: 80}, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.Ask(ctx, "?")
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestNotify_Doors(t *testing.T) {
	c, out := newConsole("")
	c.Notify(engine.Event{Kind: engine.EventDoors, Player: "Ada", Doors: []string{"left", "middle", "right"}})
	assert.Contains(t, out.String(), "Ok, Ada. I see that you are standing in front of 3 doors.")
	assert.Contains(t, out.String(), "  ___    ___    ___  ")
	assert.Contains(t, out.String(), " left  middle  right ")
}

func TestNotify_Location(t *testing.T) {
	c, out := newConsole("")
	c.Notify(engine.Event{Kind: engine.EventLocation, Title: "The Left Room", Text: "An empty room."})
	assert.Contains(t, out.String(), "The Left Room")
	assert.Contains(t, out.String(), "An empty room.")
}

func TestNotify_WrapsNarration(t *testing.T) {
	var out bytes.Buffer
	c := console.New(strings.NewReader(""), &out, config.ConsoleConfig{Width: 20}, zap.NewNop())
	c.Notify(engine.Event{Kind: engine.EventNarration, Text: "one two three four five six seven eight nine ten"})
	for _, l := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		assert.LessOrEqual(t, len(strings.TrimRight(l, " ")), 20, "line %q", l)
	}
}

func TestNotify_ItemFoundShowsImage(t *testing.T) {
	c, out := newConsole("")
	c.Notify(engine.Event{Kind: engine.EventItemFound, Item: &inventory.Item{Name: "ring", Image: "  __\n /  \\\n"}})
	assert.Contains(t, out.String(), "You found a new item: ring!")
	assert.Contains(t, out.String(), " /  \\")
}

func TestNotify_Combat(t *testing.T) {
	dragon := &npc.Enemy{Name: "dragon", Requires: []string{"sword"}, Condition: npc.MustParseCondition("damage>41&dice")}
	tests := []struct {
		name   string
		result combat.Result
		want   []string
	}{
		{
			name:   "ineligible",
			result: combat.Result{Enemy: "dragon", Action: combat.Fight, Outcome: combat.Loss, Consequence: npc.LossFatal},
			want:   []string{"fighting a Dragon without the right kind of weapons"},
		},
		{
			name:   "win",
			result: combat.Result{Enemy: "dragon", Action: combat.Fight, Outcome: combat.Win, Eligible: true, Roll: 3, Multiplier: 2, Damage: 60},
			want:   []string{"necessary weapons: sword", "You rolled a 3.", "You deal 60 damage.", "You defeated the Dragon!"},
		},
		{
			name:   "no multiplier",
			result: combat.Result{Enemy: "dragon", Action: combat.Fight, Outcome: combat.Loss, Eligible: true, Roll: 1, Multiplier: 1, Damage: 10},
			want:   []string{"no items which amplify"},
		},
		{
			name:   "evaded",
			result: combat.Result{Enemy: "dragon", Action: combat.Evade, Outcome: combat.Evaded},
			want:   []string{"lets you go"},
		},
		{
			name:   "cannot hide",
			result: combat.Result{Enemy: "dragon", Action: combat.Evade, Outcome: combat.Loss, Consequence: npc.LossItemWipe},
			want:   []string{"you can't hide from a Dragon", "lost all your items"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newConsole("")
			res := tt.result
			c.Notify(engine.Event{Kind: engine.EventCombat, Player: "Ada", Enemy: dragon, Combat: &res})
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestNotify_Fatal(t *testing.T) {
	tests := []struct {
		name  string
		event engine.Event
		want  string
	}{
		{
			name:  "hazard",
			event: engine.Event{Kind: engine.EventFatal, Fatal: &session.FatalError{Source: "suspicious berry", Cause: session.CauseHazard}},
			want:  "was toxic",
		},
		{
			name:  "combat",
			event: engine.Event{Kind: engine.EventFatal, Fatal: &session.FatalError{Source: "dragon", Cause: session.CauseCombat}},
			want:  "You got eaten by the dragon",
		},
		{
			name:  "location",
			event: engine.Event{Kind: engine.EventFatal, Text: "You fall.", Fatal: &session.FatalError{Source: "The Cliff", Cause: session.CauseLocation}},
			want:  "You fall. Sorry, you have died",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newConsole("")
			c.Notify(tt.event)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestNotify_InvalidChoiceListsOptions(t *testing.T) {
	c, out := newConsole("")
	c.Notify(engine.Event{Kind: engine.EventInvalidChoice, Options: []string{"take", "leave"}})
	assert.Contains(t, out.String(), "you have to type either 'take' or 'leave'.")
}

func TestNotify_Victory(t *testing.T) {
	c, out := newConsole("")
	c.Notify(engine.Event{Kind: engine.EventVictory, Player: "Ada"})
	assert.Contains(t, out.String(), "you have found all the enemies")
}

func TestBanner(t *testing.T) {
	c, out := newConsole("")
	c.Banner()
	assert.Contains(t, out.String(), "####")
	assert.Contains(t, out.String(), "'restart'")
}
