package console

import (
	"strings"

	"github.com/cory-johannsen/dungeon/internal/game/world"
)

const rule = "__________________________________________"

const bannerArt = `####         ###       ####
#   #       #   #      #   #
#    #     #     #     #    #
#     #   #       #    #     #
#     #   #       #    #     #
#    #    # # # # #    #    #
#   #     #       #    #   #
####      #       #    ####`

const victoryArt = `#                     #  #  #       #
 #         #         #   #  # #     #
  #       # #       #    #  #  #    #
   #     #   #     #     #  #   #   #
    #   #     #   #      #  #    #  #
     # #       # #       #  #     # #
      #         #        #  #       #`

// doorArt draws one door per name with the name centered beneath it.
func doorArt(doors []string) string {
	var top, middle, bottom, names strings.Builder
	for _, d := range doors {
		if len(d) > 6 {
			d = d[:6]
		}
		top.WriteString("  ___  ")
		middle.WriteString(" |   | ")
		bottom.WriteString("  ---  ")
		names.WriteString(center(d, 7))
	}
	var b strings.Builder
	b.WriteString(top.String() + "\n")
	for range 3 {
		b.WriteString(middle.String() + "\n")
	}
	b.WriteString(bottom.String() + "\n")
	b.WriteString(names.String())
	return b.String()
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

const mapBase = "            ||\n" +
	"   left---middle----right\n" +
	"   ||       ||        ||\n"

var (
	junctionPath = world.PathOf(world.MiddleRoom, world.GoDown)
	oldRoomPath  = junctionPath.Advance(world.OldRoom)
	modernPath   = junctionPath.Advance(world.ModernRoom)
)

// mapArt draws the dungeon with a "You" marker under the player's position.
func mapArt(p world.Path) string {
	switch {
	case p.IsStart():
		return strings.TrimSuffix(mapBase, "\n")
	case p.HasPrefix(world.PathOf(world.LeftRoom)):
		return mapBase + "   You"
	case p.HasPrefix(world.PathOf(world.RightRoom)):
		return mapBase + "                      You"
	case p.HasPrefix(oldRoomPath):
		return mapBase +
			"            ||\n" +
			"            /\\\n" +
			"          old modern\n" +
			"          ||\n" +
			"          You"
	case p.HasPrefix(modernPath):
		return mapBase +
			"            ||\n" +
			"            /\\\n" +
			"          old modern\n" +
			"                ||\n" +
			"                You"
	case p.Equal(junctionPath):
		return mapBase +
			"            ||\n" +
			"            You\n" +
			"            /\\\n" +
			"          old modern"
	default:
		return mapBase + "            You"
	}
}
