// Package character provides the interface for character persistence
package character

import (
	"context"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/entities"
)

// Repository defines the interface for character persistence.
//
// Characters are scoped to an owner. Names are unique per owner,
// case-insensitively, and List returns characters in creation order.
type Repository interface {
	// Create persists a new character.
	// Returns errors.InvalidArgument for validation failures.
	// Returns errors.AlreadyExists when the owner already has a
	// character with the same name (case-insensitive).
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by owner and name (case-insensitive).
	// Returns errors.NotFound if no such character exists.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves all characters for an owner in creation order.
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Update replaces a character's record, keyed by its ID. The name
	// must not change through Update; use Rename.
	// Returns errors.NotFound if the character doesn't exist.
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Rename changes a character's name, preserving its position in
	// the owner's list.
	// Returns errors.AlreadyExists when the new name is taken.
	Rename(ctx context.Context, input RenameInput) (*RenameOutput, error)

	// Delete removes a character by owner and name.
	// Returns errors.NotFound if no such character exists.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *entities.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	OwnerID string
	Name    string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// ListInput defines the input for listing an owner's characters
type ListInput struct {
	OwnerID string
}

// ListOutput defines the output for listing an owner's characters
type ListOutput struct {
	Characters []*entities.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *entities.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *entities.Character
}

// RenameInput defines the input for renaming a character
type RenameInput struct {
	OwnerID string
	Name    string
	NewName string
}

// RenameOutput defines the output for renaming a character
type RenameOutput struct {
	Character *entities.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	OwnerID string
	Name    string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}
