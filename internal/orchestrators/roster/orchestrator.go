package roster

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/entities"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/errors"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/repositories/character"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/rules/recommend"
)

// Config holds the dependencies for the roster orchestrator
type Config struct {
	CharacterRepo character.Repository
	Classes       ClassCatalog

	// Recommender defaults to a system-RNG recommender when nil
	Recommender *recommend.Recommender
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Classes == nil {
		vb.RequiredField("Classes")
	}

	return vb.Build()
}

type orchestrator struct {
	characters  character.Repository
	classes     ClassCatalog
	recommender *recommend.Recommender
}

// New creates a new roster orchestrator
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rec := cfg.Recommender
	if rec == nil {
		rec = recommend.New(nil)
	}

	return &orchestrator{
		characters:  cfg.CharacterRepo,
		classes:     cfg.Classes,
		recommender: rec,
	}, nil
}

var _ Service = (*orchestrator)(nil)

func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateLookup(input.OwnerID, input.Name); err != nil {
		return nil, err
	}

	out, err := o.characters.Get(ctx, character.GetInput{OwnerID: input.OwnerID, Name: input.Name})
	if err != nil {
		return nil, err
	}
	return &GetCharacterOutput{Character: out.Character}, nil
}

func (o *orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID cannot be empty")
	}

	out, err := o.characters.List(ctx, character.ListInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}
	return &ListCharactersOutput{Characters: out.Characters}, nil
}

func (o *orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateLookup(input.OwnerID, input.Name); err != nil {
		return nil, err
	}

	if _, err := o.characters.Delete(ctx, character.DeleteInput{OwnerID: input.OwnerID, Name: input.Name}); err != nil {
		return nil, err
	}

	slog.Info("character deleted", "owner_id", input.OwnerID, "name", input.Name)
	return &DeleteCharacterOutput{}, nil
}

func (o *orchestrator) RenameCharacter(ctx context.Context, input *RenameCharacterInput) (*RenameCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateLookup(input.OwnerID, input.Name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.NewName) == "" {
		return nil, errors.InvalidArgument("new name cannot be empty")
	}

	out, err := o.characters.Rename(ctx, character.RenameInput{
		OwnerID: input.OwnerID,
		Name:    input.Name,
		NewName: strings.TrimSpace(input.NewName),
	})
	if err != nil {
		return nil, err
	}
	return &RenameCharacterOutput{Character: out.Character}, nil
}

func (o *orchestrator) UpdateClass(ctx context.Context, input *UpdateClassInput) (*UpdateClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateLookup(input.OwnerID, input.Name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Class) == "" {
		return nil, errors.InvalidArgument("class cannot be empty")
	}

	char, err := o.edit(ctx, input.OwnerID, input.Name, func(c *entities.Character) {
		c.Class = strings.TrimSpace(input.Class)
	})
	if err != nil {
		return nil, err
	}
	return &UpdateClassOutput{Character: char}, nil
}

func (o *orchestrator) UpdateStat(ctx context.Context, input *UpdateStatInput) (*UpdateStatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateLookup(input.OwnerID, input.Name); err != nil {
		return nil, err
	}

	attr, ok := entities.ParseAttribute(input.Attribute)
	if !ok {
		return nil, errors.InvalidArgumentf(
			"unknown attribute %q: use STR, DEX, CON, INT, WIS, CHA", input.Attribute)
	}
	if input.Value < 1 {
		return nil, errors.InvalidArgumentf("%s must be at least 1", attr)
	}

	char, err := o.edit(ctx, input.OwnerID, input.Name, func(c *entities.Character) {
		if c.Stats == nil {
			c.Stats = make(entities.ScoreSet, 6)
		}
		c.Stats[attr] = input.Value
	})
	if err != nil {
		return nil, err
	}
	return &UpdateStatOutput{Character: char}, nil
}

func (o *orchestrator) Recommendations(ctx context.Context, input *RecommendationsInput) (*RecommendationsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateLookup(input.OwnerID, input.Name); err != nil {
		return nil, err
	}

	out, err := o.characters.Get(ctx, character.GetInput{OwnerID: input.OwnerID, Name: input.Name})
	if err != nil {
		return nil, err
	}

	return &RecommendationsOutput{
		Character:       out.Character,
		Recommendations: o.recommender.Recommend(out.Character.Stats, o.classes.Classes()),
	}, nil
}

// edit applies a mutation to a character and persists it, a read-modify-
// write against the character's immutable ID.
func (o *orchestrator) edit(ctx context.Context, ownerID, name string, mutate func(*entities.Character)) (*entities.Character, error) {
	got, err := o.characters.Get(ctx, character.GetInput{OwnerID: ownerID, Name: name})
	if err != nil {
		return nil, err
	}

	char := got.Character
	mutate(char)

	updated, err := o.characters.Update(ctx, character.UpdateInput{Character: char})
	if err != nil {
		return nil, err
	}
	return updated.Character, nil
}

func validateLookup(ownerID, name string) error {
	if ownerID == "" {
		return errors.InvalidArgument("owner ID cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return errors.InvalidArgument("character name cannot be empty")
	}
	return nil
}