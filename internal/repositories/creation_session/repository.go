// Package creationsession provides repository interface and types for
// in-progress character creation sessions
package creationsession

import (
	"context"
	"time"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=creationsessionmock github.com/Sanji-devv/Mineria-dc-bot/internal/repositories/creation_session Repository

// Session is one character-creation attempt, owned by a single user.
// At most one live session exists per owner; starting a new creation
// replaces the previous session without warning.
type Session struct {
	// OwnerID is the external user identity that owns this session
	OwnerID string `json:"owner_id"`

	RaceName string         `json:"race_name"`
	Race     *entities.Race `json:"race"`

	// DicePoints is the budget for this session: 40 minus race points
	DicePoints int `json:"dice_points"`

	// Allocation is nil until the distribute step succeeds
	Allocation map[entities.Attribute]int `json:"allocation,omitempty"`

	// Stats holds the rolled final attributes, nil until distributed
	Stats entities.ScoreSet `json:"stats,omitempty"`

	// Narrative is the per-attribute dice breakdown for the last roll
	Narrative string `json:"narrative,omitempty"`

	// FlexibleBonus is the race's player-assignable bonus, 0 if none
	FlexibleBonus        int  `json:"flexible_bonus,omitempty"`
	FlexibleBonusApplied bool `json:"flexible_bonus_applied,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// HasStats reports whether the distribute step has produced final stats
func (s *Session) HasStats() bool {
	return len(s.Stats) > 0
}

// FlexibleBonusPending reports whether a flexible bonus is waiting for
// the player's attribute choice
func (s *Session) FlexibleBonusPending() bool {
	return s.HasStats() && s.FlexibleBonus > 0 && !s.FlexibleBonusApplied
}

// Repository defines the interface for creation session storage.
// Implementations guarantee at-most-one stored session per owner.
type Repository interface {
	// Put stores a session, replacing any existing session for the
	// same owner (last create wins)
	Put(ctx context.Context, session *Session) error

	// Get retrieves the live session for an owner.
	// Returns errors.NotFound when no session exists or it expired.
	Get(ctx context.Context, ownerID string) (*Session, error)

	// Delete removes the session for an owner. Deleting a missing
	// session is not an error.
	Delete(ctx context.Context, ownerID string) error
}
