package console

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cory-johannsen/dungeon/internal/engine"
	"github.com/cory-johannsen/dungeon/internal/game/combat"
	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/npc"
	"github.com/cory-johannsen/dungeon/internal/game/session"
)

const helpText = "At any time, you can type 'exit' to quit the game, 'save' to save your current progress, " +
	"'restart' to start over, 'items' to see your current items, 'map' to see a map of the game " +
	"or 'help' to view this message again."

// renderer turns engine events and info requests into terminal text.
type renderer struct {
	pal   palette
	width int
	title cases.Caser
}

func newRenderer(pal palette, width int) *renderer {
	return &renderer{pal: pal, width: width, title: cases.Title(language.English)}
}

func (r *renderer) wrap(s string) string {
	return wordwrap.String(s, r.width)
}

func (r *renderer) para(s string) string {
	return r.pal.text.Render(r.wrap(s))
}

func (r *renderer) name(s string) string {
	return r.title.String(s)
}

func (r *renderer) rule() string {
	return r.pal.rule.Render(rule)
}

// banner is shown once when the program starts.
func (r *renderer) banner() string {
	return strings.Join([]string{r.rule(), r.pal.art.Render(bannerArt), r.rule()}, "\n")
}

// event renders e. An empty string means there is nothing to show.
func (r *renderer) event(e engine.Event) string {
	switch e.Kind {
	case engine.EventSessionStarted:
		return r.sessionStarted(e)
	case engine.EventLocation:
		if e.Text == "" {
			return r.pal.title.Render(e.Title)
		}
		return r.pal.title.Render(e.Title) + "\n" + r.para(e.Text)
	case engine.EventDoors:
		return r.para(fmt.Sprintf("Ok, %s. I see that you are standing in front of %d doors.", e.Player, len(e.Doors))) +
			"\n" + r.pal.art.Render(doorArt(e.Doors))
	case engine.EventNarration, engine.EventNothingFound:
		return r.para(e.Text)
	case engine.EventHint:
		return r.pal.hint.Render(r.wrap(e.Text))
	case engine.EventItemFound:
		return r.itemFound(e.Item)
	case engine.EventItemTaken:
		return r.para(fmt.Sprintf("You put the %s into your bag.", r.pal.item.Render(e.Item.Name)))
	case engine.EventItemLeft:
		return r.para(fmt.Sprintf("You leave the %s where it is.", e.Item.Name))
	case engine.EventEncounter:
		return r.para(fmt.Sprintf("Oh boy, you have encountered a %s. Would you like to fight it or hide and back off?",
			r.pal.enemy.Render(r.name(e.Enemy.Name))))
	case engine.EventCombat:
		return r.combat(e)
	case engine.EventVictory:
		return strings.Join([]string{
			r.rule(),
			r.pal.good.Render(victoryArt),
			r.rule(),
			r.para("Congratulations, you have found all the enemies in this place. You may now run around this place for as long as you want, or exit the game."),
		}, "\n")
	case engine.EventFatal:
		return r.fatal(e)
	case engine.EventSaved:
		return r.pal.good.Render("Your progress has been saved.")
	case engine.EventInvalidChoice:
		return r.pal.danger.Render(r.wrap("I am sorry, but you have to type either " + quoteOptions(e.Options) + "."))
	case engine.EventFarewell:
		if e.Player == "" {
			return r.para("Goodbye, see you next time.")
		}
		return r.para(fmt.Sprintf("Goodbye, %s. See you next time.", e.Player))
	default:
		return ""
	}
}

func (r *renderer) sessionStarted(e engine.Event) string {
	if e.Resumed {
		return r.para(fmt.Sprintf("Welcome back, %s! Your adventure continues where you left it.", e.Player))
	}
	return r.para(fmt.Sprintf("Hello, %s! I am so happy that you joined our game world. "+
		"In order to play, you will have to talk to me and take some decisions. Are you ready? Great! Let's go.", e.Player))
}

func (r *renderer) itemFound(it *inventory.Item) string {
	out := r.para(fmt.Sprintf("You found a new item: %s! Do you want to take it?", r.pal.item.Render(it.Name)))
	if it.Image != "" {
		out += "\n" + r.pal.art.Render(strings.TrimRight(it.Image, "\n"))
	}
	return out
}

func (r *renderer) combat(e engine.Event) string {
	res := e.Combat
	enemy := r.name(res.Enemy)
	var lines []string
	if res.Action == combat.Fight {
		if !res.Eligible {
			lines = append(lines, fmt.Sprintf("Uf, fighting a %s without the right kind of weapons, this was hopeless.", enemy))
		} else if e.Enemy != nil && len(e.Enemy.Requires) > 0 {
			lines = append(lines, "Luckily, you have all the necessary weapons: "+strings.Join(e.Enemy.Requires, ", "))
		}
		if res.Eligible && e.Enemy != nil && e.Enemy.Condition.Kind == npc.ConditionDamage && res.Multiplier == 1 {
			lines = append(lines, "But I noticed you have no items which amplify the strength of your weapon. What a pity.")
		}
		if res.Roll > 0 {
			lines = append(lines, fmt.Sprintf("You rolled a %d.", res.Roll))
		}
		if res.Damage > 0 {
			lines = append(lines, fmt.Sprintf("You deal %d damage.", res.Damage))
		}
	}
	switch res.Outcome {
	case combat.Win:
		lines = append(lines, r.pal.good.Render(fmt.Sprintf("Congratulations, %s! You defeated the %s!", e.Player, enemy)))
	case combat.Evaded:
		lines = append(lines, fmt.Sprintf("You back off and the %s lets you go.", enemy))
	case combat.Loss:
		if res.Action == combat.Evade {
			lines = append(lines, fmt.Sprintf("Ups, you can't hide from a %s.", enemy))
		}
		if res.Consequence == npc.LossItemWipe {
			lines = append(lines, r.pal.danger.Render("Whoa, this did not end up lucky for you. You have lost all your items."))
		}
	}
	for i, l := range lines {
		lines[i] = r.wrap(l)
	}
	return strings.Join(lines, "\n")
}

func (r *renderer) fatal(e engine.Event) string {
	var msg string
	switch {
	case e.Fatal == nil:
		msg = "You have died and lost the game."
	case e.Fatal.Cause == session.CauseHazard:
		msg = fmt.Sprintf("Uf, taking this %s wasn't a good choice. As your gaze begins to rotate, you realize the %s was toxic. You die and lose the game.",
			e.Fatal.Source, e.Fatal.Source)
	case e.Fatal.Cause == session.CauseCombat:
		msg = fmt.Sprintf("You got eaten by the %s and lost the game. I am sorry.", e.Fatal.Source)
	default:
		msg = strings.TrimSpace(e.Text + " Sorry, you have died and lost the game.")
	}
	return r.pal.danger.Render(r.wrap(msg)) + "\n" + r.rule()
}

// prompt renders the question line for p.
func (r *renderer) prompt(message string, options []string) string {
	out := r.pal.prompt.Render(r.wrap(message))
	if len(options) > 0 {
		out += "\n" + r.pal.options.Render("["+strings.Join(options, " / ")+"]")
	}
	return out + "\n> "
}

func (r *renderer) items(items []inventory.Item) string {
	if len(items) == 0 {
		return r.para("You currently have no items in your bag.")
	}
	return r.para("These are the current items in your bag: " + strings.Join(inventory.Names(items), ", "))
}

func (r *renderer) help() string {
	return r.para("Welcome to Dungeons and Dreagons. " + helpText)
}

func quoteOptions(options []string) string {
	quoted := make([]string, len(options))
	for i, o := range options {
		quoted[i] = "'" + o + "'"
	}
	return strings.Join(quoted, " or ")
}
