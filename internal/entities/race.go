package entities

// Race describes a playable race from the race catalog. Immutable once
// loaded.
//
// Modifiers and FlexibleBonus are the structured form. AbilityScorePlus
// and AbilityScoreMinus carry the legacy free-text descriptions (for
// example "+2 Strength, -2 Wisdom") still present in older catalog
// entries. When both forms are present the structured data wins; the
// racial resolver owns that precedence.
type Race struct {
	Name string `json:"name"`

	// RacePoints is subtracted from the base dice budget when a
	// creation session starts.
	RacePoints int `json:"race_points"`

	Modifiers     ScoreSet `json:"modifiers,omitempty"`
	FlexibleBonus int      `json:"flexible_bonus,omitempty"`

	AbilityScorePlus  string `json:"ability_score_plus,omitempty"`
	AbilityScoreMinus string `json:"ability_score_minus,omitempty"`
}

// HasStructuredModifiers reports whether the race carries structured
// modifier data, which takes precedence over the legacy text fields.
func (r *Race) HasStructuredModifiers() bool {
	return r.Modifiers != nil || r.FlexibleBonus > 0
}
