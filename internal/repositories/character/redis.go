package character

import (
	"context"
	"encoding/json"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/entities"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/errors"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/pkg/clock"
	redisclient "github.com/Sanji-devv/Mineria-dc-bot/internal/redis"
)

// Key layout:
//
//	character:{owner}:{id}      JSON character record
//	character:order:{owner}     LIST of IDs in creation order
//	character:names:{owner}     HASH lowercased name -> ID
const (
	characterKeyPrefix = "character:"
	orderKeyPrefix     = "character:order:"
	nameIndexPrefix    = "character:names:"

	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errOwnerIDEmpty     = "owner ID cannot be empty"
	errNameEmpty        = "character name cannot be empty"
)

// Config contains configuration for the Redis character repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	char := input.Character
	if char == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if char.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if char.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if strings.TrimSpace(char.Name) == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	nameKey := nameIndexPrefix + char.OwnerID
	taken, err := r.client.HExists(ctx, nameKey, normalizeName(char.Name)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check name index")
	}
	if taken {
		return nil, errors.AlreadyExistsf("character named %s already exists", char.Name).
			WithMeta("name", char.Name)
	}

	now := r.clock.Now()
	char.CreatedAt = now
	char.UpdatedAt = now

	data, err := json.Marshal(char)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.characterKey(char.OwnerID, char.ID), data, 0)
	pipe.RPush(ctx, orderKeyPrefix+char.OwnerID, char.ID)
	pipe.HSet(ctx, nameKey, normalizeName(char.Name), char.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Character: char}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	char, err := r.getByName(ctx, input.OwnerID, input.Name)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: char}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	ids, err := r.client.LRange(ctx, orderKeyPrefix+input.OwnerID, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read character order for owner %s", input.OwnerID)
	}

	characters := make([]*entities.Character, 0, len(ids))
	for _, id := range ids {
		char, err := r.getByID(ctx, input.OwnerID, id)
		if err != nil {
			if errors.IsNotFound(err) {
				// Stale index entry; drop it and keep listing.
				r.client.LRem(ctx, orderKeyPrefix+input.OwnerID, 0, id)
				continue
			}
			return nil, err
		}
		characters = append(characters, char)
	}

	return &ListOutput{Characters: characters}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	char := input.Character
	if char == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if char.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	existing, err := r.getByID(ctx, char.OwnerID, char.ID)
	if err != nil {
		return nil, err
	}
	if normalizeName(existing.Name) != normalizeName(char.Name) {
		return nil, errors.InvalidArgument("cannot change name through Update, use Rename")
	}

	char.CreatedAt = existing.CreatedAt
	char.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(char)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}
	if err := r.client.Set(ctx, r.characterKey(char.OwnerID, char.ID), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{Character: char}, nil
}

func (r *redisRepository) Rename(ctx context.Context, input RenameInput) (*RenameOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if strings.TrimSpace(input.NewName) == "" {
		return nil, errors.InvalidArgument("new name cannot be empty")
	}

	char, err := r.getByName(ctx, input.OwnerID, input.Name)
	if err != nil {
		return nil, err
	}

	nameKey := nameIndexPrefix + input.OwnerID
	if normalizeName(input.Name) != normalizeName(input.NewName) {
		taken, err := r.client.HExists(ctx, nameKey, normalizeName(input.NewName)).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to check name index")
		}
		if taken {
			return nil, errors.AlreadyExistsf("character named %s already exists", input.NewName).
				WithMeta("name", input.NewName)
		}
	}

	char.Name = input.NewName
	char.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(char)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	// The order list keys on ID, so the character keeps its position.
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.characterKey(char.OwnerID, char.ID), data, 0)
	pipe.HDel(ctx, nameKey, normalizeName(input.Name))
	pipe.HSet(ctx, nameKey, normalizeName(input.NewName), char.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to rename character")
	}

	return &RenameOutput{Character: char}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	char, err := r.getByName(ctx, input.OwnerID, input.Name)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.characterKey(char.OwnerID, char.ID))
	pipe.LRem(ctx, orderKeyPrefix+input.OwnerID, 0, char.ID)
	pipe.HDel(ctx, nameIndexPrefix+input.OwnerID, normalizeName(char.Name))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) getByName(ctx context.Context, ownerID, name string) (*entities.Character, error) {
	id, err := r.client.HGet(ctx, nameIndexPrefix+ownerID, normalizeName(name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character %s not found", name).WithMeta("name", name)
		}
		return nil, errors.Wrapf(err, "failed to look up character name")
	}
	return r.getByID(ctx, ownerID, id)
}

func (r *redisRepository) getByID(ctx context.Context, ownerID, id string) (*entities.Character, error) {
	result, err := r.client.Get(ctx, r.characterKey(ownerID, id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var char entities.Character
	if err := json.Unmarshal([]byte(result), &char); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character")
	}
	return &char, nil
}

func (r *redisRepository) characterKey(ownerID, id string) string {
	return characterKeyPrefix + ownerID + ":" + id
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
