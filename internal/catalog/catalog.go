// Package catalog loads the race and class catalogs from JSON files.
// Catalogs are read once at startup and immutable afterwards; a missing
// file degrades to an empty catalog instead of failing the process.
package catalog

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/entities"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/errors"
)

// defaultRacePoints applies when a race entry omits its point cost
const defaultRacePoints = 10

// Races is the loaded race catalog, keyed case-insensitively by name
type Races struct {
	byName map[string]*entities.Race
	names  []string
}

// Classes is the loaded class catalog
type Classes struct {
	classes []entities.Class
}

type raceRecord struct {
	RacePoints        *int           `json:"Race Points"`
	AbilityScorePlus  string         `json:"Ability Score Plus"`
	AbilityScoreMinus string         `json:"Ability Score Minus"`
	Modifiers         map[string]int `json:"modifiers"`
	FlexibleBonus     int            `json:"flexible_bonus"`
}

type classRecord struct {
	Name           string   `json:"name"`
	PrimaryStats   []string `json:"primary_stats"`
	SecondaryStats []string `json:"secondary_stats"`
}

type classFile struct {
	Classes []classRecord `json:"classes"`
}

// LoadRaces reads the race catalog. The file is a map keyed by race
// name; each entry carries a point cost (default 10 when absent),
// legacy modifier text, and optionally a structured modifier map.
func LoadRaces(path string) (*Races, error) {
	races := &Races{byName: make(map[string]*entities.Race)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return races, nil
		}
		return nil, errors.Wrapf(err, "failed to read race catalog %s", path)
	}

	var records map[string]raceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrapf(err, "failed to parse race catalog %s", path)
	}

	for name, record := range records {
		points := defaultRacePoints
		if record.RacePoints != nil {
			points = *record.RacePoints
		}

		race := &entities.Race{
			Name:              name,
			RacePoints:        points,
			FlexibleBonus:     record.FlexibleBonus,
			AbilityScorePlus:  record.AbilityScorePlus,
			AbilityScoreMinus: record.AbilityScoreMinus,
		}
		if len(record.Modifiers) > 0 {
			race.Modifiers = make(entities.ScoreSet, len(record.Modifiers))
			for key, delta := range record.Modifiers {
				if attr, ok := entities.ParseAttribute(key); ok {
					race.Modifiers[attr] = delta
				}
			}
		}

		races.byName[strings.ToLower(name)] = race
		races.names = append(races.names, name)
	}
	sort.Strings(races.names)

	return races, nil
}

// Find looks up a race by name, case-insensitively
func (r *Races) Find(name string) (*entities.Race, bool) {
	race, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return race, ok
}

// Names returns every race name, sorted
func (r *Races) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// LoadClasses reads the class catalog. Attribute names that don't parse
// are dropped from the class rather than failing the load.
func LoadClasses(path string) (*Classes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Classes{}, nil
		}
		return nil, errors.Wrapf(err, "failed to read class catalog %s", path)
	}

	var file classFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, "failed to parse class catalog %s", path)
	}

	classes := make([]entities.Class, 0, len(file.Classes))
	for _, record := range file.Classes {
		if record.Name == "" {
			continue
		}
		classes = append(classes, entities.Class{
			Name:           record.Name,
			PrimaryStats:   parseAttributes(record.PrimaryStats),
			SecondaryStats: parseAttributes(record.SecondaryStats),
		})
	}

	return &Classes{classes: classes}, nil
}

// Classes returns the loaded classes in file order
func (c *Classes) Classes() []entities.Class {
	return c.classes
}

func parseAttributes(names []string) []entities.Attribute {
	attrs := make([]entities.Attribute, 0, len(names))
	for _, name := range names {
		if attr, ok := entities.ParseAttribute(name); ok {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}
