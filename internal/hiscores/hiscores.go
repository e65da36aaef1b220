// Package hiscores parses the lite hiscores format into combat levels
package hiscores

import (
	"strconv"
	"strings"

	"github.com/osrsdps/dps-console/internal/entities"
)

// Skills is the row order of the lite hiscores body
var Skills = []string{
	"Overall",
	entities.SkillAttack,
	entities.SkillDefence,
	entities.SkillStrength,
	entities.SkillHitpoints,
	entities.SkillRanged,
	entities.SkillPrayer,
	entities.SkillMagic,
	"Cooking",
	"Woodcutting",
	"Fletching",
	"Fishing",
	"Firemaking",
	"Crafting",
	"Smithing",
	"Mining",
	"Herblore",
	"Agility",
	"Thieving",
	"Slayer",
	"Farming",
	"Runecraft",
	"Hunter",
	"Construction",
}

// MinLevel replaces zero or unparsable levels. Unranked rows report -1,
// which is passed through.
const MinLevel = 1

// Parse reads one rank,level,xp row per skill. Rows past the skill list
// (activities and bosses) are ignored. Missing rows and rows without a
// level field leave the skill out.
func Parse(body string) map[string]int {
	levels := make(map[string]int, len(Skills))
	lines := strings.Split(strings.TrimSpace(strings.ReplaceAll(body, "\r\n", "\n")), "\n")

	for i, skill := range Skills {
		if i >= len(lines) {
			break
		}
		if level, ok := parseLevel(lines[i]); ok {
			levels[skill] = level
		}
	}
	return levels
}

// CombatLevels keeps only the skills a build carries
func CombatLevels(levels map[string]int) map[string]int {
	out := make(map[string]int, len(entities.CombatSkills))
	for _, skill := range entities.CombatSkills {
		if level, ok := levels[skill]; ok {
			out[skill] = level
		}
	}
	return out
}

func parseLevel(line string) (int, bool) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) < 2 {
		return 0, false
	}
	level, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || level == 0 {
		return MinLevel, true
	}
	return level, true
}
