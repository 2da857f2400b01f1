package entities

import "time"

// UnassignedClass is the class a character is saved with before the
// player picks one.
const UnassignedClass = "None"

// Character is a finalized, persisted character. Names are unique per
// owner, case-insensitively; the repository enforces that.
type Character struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
	Race    string `json:"race"`
	Class   string `json:"class"`

	Stats ScoreSet `json:"stats"`

	// RollNarrative is the human-readable dice breakdown captured at
	// save time, if any.
	RollNarrative string `json:"roll_narrative,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
