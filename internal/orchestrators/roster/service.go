// Package roster orchestrates operations on saved characters: lookup,
// listing, editing, and re-scoring against the class catalog.
package roster

import (
	"context"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/entities"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/rules/recommend"
)

// Service operates on an owner's saved characters. Names resolve
// case-insensitively everywhere.
type Service interface {
	// GetCharacter retrieves one character by name.
	// Returns errors.NotFound when the owner has no such character.
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)

	// ListCharacters retrieves the owner's characters in creation order.
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// DeleteCharacter removes a character permanently.
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// RenameCharacter changes a character's name. The new name must be
	// unused by the owner; the character keeps its list position.
	RenameCharacter(ctx context.Context, input *RenameCharacterInput) (*RenameCharacterOutput, error)

	// UpdateClass sets a character's class.
	UpdateClass(ctx context.Context, input *UpdateClassInput) (*UpdateClassOutput, error)

	// UpdateStat overwrites one attribute's score.
	UpdateStat(ctx context.Context, input *UpdateStatInput) (*UpdateStatOutput, error)

	// Recommendations re-scores the class catalog against a saved
	// character's stats. Rankings are recomputed fresh on every call.
	Recommendations(ctx context.Context, input *RecommendationsInput) (*RecommendationsOutput, error)
}

// ClassCatalog lists the playable classes
type ClassCatalog interface {
	Classes() []entities.Class
}

// GetCharacterInput defines the input for getting a character
type GetCharacterInput struct {
	OwnerID string
	Name    string
}

// GetCharacterOutput defines the output for getting a character
type GetCharacterOutput struct {
	Character *entities.Character
}

// ListCharactersInput defines the input for listing characters
type ListCharactersInput struct {
	OwnerID string
}

// ListCharactersOutput defines the output for listing characters
type ListCharactersOutput struct {
	Characters []*entities.Character
}

// DeleteCharacterInput defines the input for deleting a character
type DeleteCharacterInput struct {
	OwnerID string
	Name    string
}

// DeleteCharacterOutput defines the output for deleting a character
type DeleteCharacterOutput struct{}

// RenameCharacterInput defines the input for renaming a character
type RenameCharacterInput struct {
	OwnerID string
	Name    string
	NewName string
}

// RenameCharacterOutput defines the output for renaming a character
type RenameCharacterOutput struct {
	Character *entities.Character
}

// UpdateClassInput defines the input for setting a character's class
type UpdateClassInput struct {
	OwnerID string
	Name    string
	Class   string
}

// UpdateClassOutput defines the output for setting a character's class
type UpdateClassOutput struct {
	Character *entities.Character
}

// UpdateStatInput defines the input for overwriting one attribute
type UpdateStatInput struct {
	OwnerID   string
	Name      string
	Attribute string
	Value     int
}

// UpdateStatOutput defines the output for overwriting one attribute
type UpdateStatOutput struct {
	Character *entities.Character
}

// RecommendationsInput defines the input for re-scoring a character
type RecommendationsInput struct {
	OwnerID string
	Name    string
}

// RecommendationsOutput defines the output for re-scoring a character
type RecommendationsOutput struct {
	Character       *entities.Character
	Recommendations []recommend.Score
}
