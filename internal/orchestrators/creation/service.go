// Package creation orchestrates the stat-roll character creation flow:
// pick a race, split the dice budget, roll, tweak, save.
package creation

import (
	"context"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/entities"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/rules/recommend"
)

// Service orchestrates character creation sessions. Each owner has at
// most one session in flight; starting a new creation silently replaces
// the previous one.
type Service interface {
	// StartCreation opens a creation session for the owner with the
	// given race. The dice budget is 40 minus the race's point cost.
	// Returns errors.NotFound when the race is not in the catalog.
	StartCreation(ctx context.Context, input *StartCreationInput) (*StartCreationOutput, error)

	// DistributeDice splits the session's budget across the six
	// attributes and rolls them (each attribute rolls its dice count
	// of d6, keeping the best three). Re-distributing re-rolls.
	// Returns errors.FailedPrecondition without an active session and
	// errors.InvalidArgument for format or budget violations.
	DistributeDice(ctx context.Context, input *DistributeDiceInput) (*DistributeDiceOutput, error)

	// ApplyFlexibleBonus spends the race's player-assignable bonus on
	// one attribute. It can be applied once per session, after rolling.
	ApplyFlexibleBonus(ctx context.Context, input *ApplyFlexibleBonusInput) (*ApplyFlexibleBonusOutput, error)

	// AdjustStat applies a direct signed delta to one rolled attribute,
	// outside the dice and modifier rules.
	AdjustStat(ctx context.Context, input *AdjustStatInput) (*AdjustStatOutput, error)

	// SaveCharacter persists the rolled session as a named character
	// and ends the session. The class starts out unassigned.
	// Returns errors.AlreadyExists when the owner already has a
	// character by that name.
	SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error)

	// GetSession reports the owner's session state. A missing session
	// is not an error; Active is false.
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
}

// RaceCatalog looks up races by name, case-insensitively
type RaceCatalog interface {
	Find(name string) (*entities.Race, bool)
}

// ClassCatalog lists the playable classes
type ClassCatalog interface {
	Classes() []entities.Class
}

// StartCreationInput defines the input for starting a creation session
type StartCreationInput struct {
	OwnerID  string
	RaceName string
}

// StartCreationOutput defines the output for starting a creation session
type StartCreationOutput struct {
	RaceName string
	// DicePoints is the budget left to distribute
	DicePoints int
	// FlexibleBonus is the race's player-assignable bonus, 0 if none
	FlexibleBonus int
}

// DistributeDiceInput defines the input for distributing and rolling
type DistributeDiceInput struct {
	OwnerID string
	// Args is the raw distribution argument list: six bare values in
	// canonical order, or six attribute/value pairs
	Args []string
}

// DistributeDiceOutput defines the output for distributing and rolling
type DistributeDiceOutput struct {
	Stats     entities.ScoreSet
	Narrative string
	// Recommendations ranks the classes that fit the rolled stats
	Recommendations []recommend.Score
	// FlexibleBonusPending is true when the race grants a bonus the
	// player still has to assign
	FlexibleBonusPending bool
	FlexibleBonus        int
}

// ApplyFlexibleBonusInput defines the input for assigning the bonus
type ApplyFlexibleBonusInput struct {
	OwnerID   string
	Attribute string
}

// ApplyFlexibleBonusOutput defines the output for assigning the bonus
type ApplyFlexibleBonusOutput struct {
	Attribute entities.Attribute
	NewScore  int
	Stats     entities.ScoreSet
}

// AdjustStatInput defines the input for a direct stat adjustment
type AdjustStatInput struct {
	OwnerID   string
	Attribute string
	Delta     int
}

// AdjustStatOutput defines the output for a direct stat adjustment
type AdjustStatOutput struct {
	Attribute entities.Attribute
	NewScore  int
	Stats     entities.ScoreSet
}

// SaveCharacterInput defines the input for saving the session
type SaveCharacterInput struct {
	OwnerID string
	Name    string
}

// SaveCharacterOutput defines the output for saving the session
type SaveCharacterOutput struct {
	Character *entities.Character
}

// GetSessionInput defines the input for querying session state
type GetSessionInput struct {
	OwnerID string
}

// GetSessionOutput defines the output for querying session state
type GetSessionOutput struct {
	Active bool

	RaceName   string
	DicePoints int
	Stats      entities.ScoreSet
	Narrative  string

	// ReadyToSave is true once stats have been rolled
	ReadyToSave          bool
	FlexibleBonusPending bool
}
