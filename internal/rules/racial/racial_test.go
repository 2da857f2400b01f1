package racial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/entities"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/rules/racial"
)

func TestResolve_Structured(t *testing.T) {
	race := &entities.Race{
		Name: "Half-Elf",
		Modifiers: entities.ScoreSet{
			entities.DEX: 1,
			entities.CHA: 2,
		},
		FlexibleBonus: 1,
	}

	mods, flexible := racial.Resolve(race)

	assert.Equal(t, 1, mods[entities.DEX])
	assert.Equal(t, 2, mods[entities.CHA])
	assert.Equal(t, 0, mods[entities.STR])
	assert.Equal(t, 1, flexible)
}

func TestResolve_StructuredWinsOverLegacyText(t *testing.T) {
	race := &entities.Race{
		Name:              "Elf",
		Modifiers:         entities.ScoreSet{entities.DEX: 2},
		AbilityScorePlus:  "+4 Strength",
		AbilityScoreMinus: "-2 Wisdom",
	}

	mods, flexible := racial.Resolve(race)

	assert.Equal(t, 2, mods[entities.DEX])
	assert.Equal(t, 0, mods[entities.STR], "legacy text must be ignored when structured data exists")
	assert.Equal(t, 0, mods[entities.WIS])
	assert.Equal(t, 0, flexible)
}

func TestResolve_LegacyText(t *testing.T) {
	t.Run("plus and minus fields", func(t *testing.T) {
		race := &entities.Race{
			Name:              "Orc",
			AbilityScorePlus:  "+2 Strength, +1 Constitution",
			AbilityScoreMinus: "-2 Intelligence",
		}

		mods, flexible := racial.Resolve(race)

		assert.Equal(t, 2, mods[entities.STR])
		assert.Equal(t, 1, mods[entities.CON])
		assert.Equal(t, -2, mods[entities.INT])
		assert.Equal(t, 0, flexible)
	})

	t.Run("three-letter codes accumulate", func(t *testing.T) {
		race := &entities.Race{
			Name:             "Mutant",
			AbilityScorePlus: "+1 STR, +2 str",
		}

		mods, _ := racial.Resolve(race)
		assert.Equal(t, 3, mods[entities.STR])
	})

	t.Run("unknown attribute names are ignored", func(t *testing.T) {
		race := &entities.Race{
			Name:             "Gnome",
			AbilityScorePlus: "+2 Luck, +1 Intelligence",
		}

		mods, _ := racial.Resolve(race)
		assert.Equal(t, 1, mods[entities.INT])
		for attr, v := range mods {
			if attr != entities.INT {
				assert.Zero(t, v)
			}
		}
	})

	t.Run("flexible bonus phrase", func(t *testing.T) {
		race := &entities.Race{
			Name:             "Human",
			AbilityScorePlus: "+1 Any",
		}

		mods, flexible := racial.Resolve(race)
		assert.Equal(t, 1, flexible)
		for _, v := range mods {
			assert.Zero(t, v, "flexible bonus must not land on a fixed attribute")
		}
	})

	t.Run("flexible phrase with to", func(t *testing.T) {
		race := &entities.Race{
			Name:             "Changeling",
			AbilityScorePlus: "+2 to any ability score",
		}

		_, flexible := racial.Resolve(race)
		assert.Equal(t, 2, flexible)
	})

	t.Run("None placeholder is skipped", func(t *testing.T) {
		race := &entities.Race{
			Name:              "Plain",
			AbilityScorePlus:  "None",
			AbilityScoreMinus: "None",
		}

		mods, flexible := racial.Resolve(race)
		assert.Equal(t, 0, flexible)
		for _, v := range mods {
			assert.Zero(t, v)
		}
	})
}

func TestResolve_NilRace(t *testing.T) {
	mods, flexible := racial.Resolve(nil)
	assert.Equal(t, 0, flexible)
	assert.Len(t, mods, 6)
}
