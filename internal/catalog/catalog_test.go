package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/catalog"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/entities"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRaces(t *testing.T) {
	path := writeFile(t, "races.json", `{
		"Human": {
			"Race Points": 0,
			"Ability Score Plus": "+1 to any",
			"Ability Score Minus": "None"
		},
		"Elf": {
			"Race Points": 10,
			"modifiers": {"DEX": 2, "CON": -2, "Luck": 9}
		},
		"Goblin": {}
	}`)

	races, err := catalog.LoadRaces(path)
	require.NoError(t, err)

	human, ok := races.Find("hUmAn")
	require.True(t, ok)
	assert.Equal(t, "Human", human.Name)
	assert.Equal(t, 0, human.RacePoints)
	assert.Equal(t, "+1 to any", human.AbilityScorePlus)
	assert.False(t, human.HasStructuredModifiers())

	elf, ok := races.Find(" Elf ")
	require.True(t, ok)
	assert.Equal(t, 10, elf.RacePoints)
	assert.True(t, elf.HasStructuredModifiers())
	assert.Equal(t, 2, elf.Modifiers[entities.DEX])
	assert.Equal(t, -2, elf.Modifiers[entities.CON])
	// Unparseable attribute keys are dropped.
	assert.Len(t, elf.Modifiers, 2)

	// Point cost defaults when the entry omits it.
	goblin, ok := races.Find("Goblin")
	require.True(t, ok)
	assert.Equal(t, 10, goblin.RacePoints)

	_, ok = races.Find("Tiefling")
	assert.False(t, ok)

	assert.Equal(t, []string{"Elf", "Goblin", "Human"}, races.Names())
}

func TestLoadRacesMissingFile(t *testing.T) {
	races, err := catalog.LoadRaces(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	_, ok := races.Find("Human")
	assert.False(t, ok)
	assert.Empty(t, races.Names())
}

func TestLoadRacesMalformed(t *testing.T) {
	path := writeFile(t, "races.json", `{"Human": `)

	_, err := catalog.LoadRaces(path)
	require.Error(t, err)
}

func TestLoadClasses(t *testing.T) {
	path := writeFile(t, "classes.json", `{
		"classes": [
			{"name": "Fighter", "primary_stats": ["STR", "CON"], "secondary_stats": ["DEX"]},
			{"name": "Wizard", "primary_stats": ["intelligence"]},
			{"primary_stats": ["STR"]}
		]
	}`)

	classes, err := catalog.LoadClasses(path)
	require.NoError(t, err)

	// The nameless entry is skipped.
	loaded := classes.Classes()
	require.Len(t, loaded, 2)

	assert.Equal(t, "Fighter", loaded[0].Name)
	assert.Equal(t, []entities.Attribute{entities.STR, entities.CON}, loaded[0].PrimaryStats)
	assert.Equal(t, []entities.Attribute{entities.DEX}, loaded[0].SecondaryStats)

	assert.Equal(t, "Wizard", loaded[1].Name)
	assert.Equal(t, []entities.Attribute{entities.INT}, loaded[1].PrimaryStats)
	assert.Empty(t, loaded[1].SecondaryStats)
}

func TestLoadClassesMissingFile(t *testing.T) {
	classes, err := catalog.LoadClasses(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, classes.Classes())
}
