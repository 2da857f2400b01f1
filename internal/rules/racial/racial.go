// Package racial resolves a race's modifier description into per-attribute
// deltas plus an optional player-assignable flexible bonus.
//
// Race catalog entries come in two generations. Newer entries carry a
// structured modifier map and an explicit flexible bonus; legacy entries
// describe bonuses and penalties in free text ("+2 Strength, -2 Wisdom").
// Structured data wins when both are present.
package racial

import (
	"regexp"
	"strconv"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/entities"
)

var (
	modifierRegex = regexp.MustCompile(`([+-]\d+)\s+([A-Za-z]+)`)
	flexibleRegex = regexp.MustCompile(`(?i)\+(\d+)\s+(?:to\s+)?any\b`)
)

// Resolve returns the per-attribute deltas and the flexible bonus for a
// race. Every attribute is present in the returned set, zero when the
// race does not touch it.
func Resolve(race *entities.Race) (entities.ScoreSet, int) {
	mods := make(entities.ScoreSet, 6)
	for _, attr := range entities.Attributes() {
		mods[attr] = 0
	}
	if race == nil {
		return mods, 0
	}

	if race.HasStructuredModifiers() {
		for attr, delta := range race.Modifiers {
			if _, ok := entities.ParseAttribute(attr.String()); ok {
				mods[attr] += delta
			}
		}
		return mods, race.FlexibleBonus
	}

	flexible := 0
	for _, text := range []string{race.AbilityScorePlus, race.AbilityScoreMinus} {
		if text == "" || text == "None" {
			continue
		}

		if m := flexibleRegex.FindStringSubmatch(text); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil {
				flexible += v
			}
		}

		for _, m := range modifierRegex.FindAllStringSubmatch(text, -1) {
			attr, ok := entities.ParseAttribute(m[2])
			if !ok {
				// Best-effort parsing: unknown names are ignored.
				continue
			}
			value, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			mods[attr] += value
		}
	}

	return mods, flexible
}
