package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/entities"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/errors"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/pkg/clock"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/repositories/character"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    character.Repository
	clock   *clock.Fixed
	cleanup func()
	ctx     context.Context
	nextID  int
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.clock = clock.NewFixed(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()
	s.nextID = 0

	repo, err := character.NewRedisRepository(&character.Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) create(ownerID, name string) *entities.Character {
	s.nextID++
	char := &entities.Character{
		ID:      string(rune('a'+s.nextID)) + "_char",
		OwnerID: ownerID,
		Name:    name,
		Race:    "Human",
		Class:   entities.UnassignedClass,
		Stats:   entities.ScoreSet{entities.STR: 14, entities.DEX: 12},
	}
	out, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)
	return out.Character
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	created := s.create("user_1", "Thorin")
	s.Equal(s.clock.Now(), created.CreatedAt)

	got, err := s.repo.Get(s.ctx, character.GetInput{OwnerID: "user_1", Name: "thorin"})
	s.Require().NoError(err)
	s.Equal("Thorin", got.Character.Name)
	s.Equal("Human", got.Character.Race)
	s.Equal(14, got.Character.Stats[entities.STR])
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicateName() {
	s.create("user_1", "Thorin")

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: &entities.Character{
		ID:      "dup_char",
		OwnerID: "user_1",
		Name:    "THORIN",
	}})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))

	// Same name under a different owner is fine.
	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: &entities.Character{
		ID:      "other_char",
		OwnerID: "user_2",
		Name:    "Thorin",
	}})
	s.NoError(err)
}

func (s *RedisRepositoryTestSuite) TestListInsertionOrder() {
	s.create("user_1", "Aragorn")
	s.create("user_1", "Bilbo")
	s.create("user_1", "Celeborn")

	out, err := s.repo.List(s.ctx, character.ListInput{OwnerID: "user_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 3)
	s.Equal("Aragorn", out.Characters[0].Name)
	s.Equal("Bilbo", out.Characters[1].Name)
	s.Equal("Celeborn", out.Characters[2].Name)
}

func (s *RedisRepositoryTestSuite) TestListEmptyOwner() {
	out, err := s.repo.List(s.ctx, character.ListInput{OwnerID: "nobody"})
	s.Require().NoError(err)
	s.Empty(out.Characters)
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	created := s.create("user_1", "Thorin")

	created.Class = "Fighter"
	created.Stats[entities.STR] = 16
	s.clock.Advance(time.Minute)

	out, err := s.repo.Update(s.ctx, character.UpdateInput{Character: created})
	s.Require().NoError(err)
	s.Equal("Fighter", out.Character.Class)
	s.True(out.Character.UpdatedAt.After(out.Character.CreatedAt))

	got, err := s.repo.Get(s.ctx, character.GetInput{OwnerID: "user_1", Name: "Thorin"})
	s.Require().NoError(err)
	s.Equal(16, got.Character.Stats[entities.STR])
}

func (s *RedisRepositoryTestSuite) TestUpdateRejectsNameChange() {
	created := s.create("user_1", "Thorin")
	created.Name = "Dwalin"

	_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: created})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestRename() {
	s.create("user_1", "Aragorn")
	s.create("user_1", "Bilbo")

	out, err := s.repo.Rename(s.ctx, character.RenameInput{
		OwnerID: "user_1", Name: "aragorn", NewName: "Strider",
	})
	s.Require().NoError(err)
	s.Equal("Strider", out.Character.Name)

	// Old name is free again, new name resolves, order is preserved.
	_, err = s.repo.Get(s.ctx, character.GetInput{OwnerID: "user_1", Name: "Aragorn"})
	s.True(errors.IsNotFound(err))

	list, err := s.repo.List(s.ctx, character.ListInput{OwnerID: "user_1"})
	s.Require().NoError(err)
	s.Require().Len(list.Characters, 2)
	s.Equal("Strider", list.Characters[0].Name)
	s.Equal("Bilbo", list.Characters[1].Name)
}

func (s *RedisRepositoryTestSuite) TestRenameToTakenName() {
	s.create("user_1", "Aragorn")
	s.create("user_1", "Bilbo")

	_, err := s.repo.Rename(s.ctx, character.RenameInput{
		OwnerID: "user_1", Name: "Aragorn", NewName: "bilbo",
	})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestRenameCaseOnly() {
	s.create("user_1", "aragorn")

	out, err := s.repo.Rename(s.ctx, character.RenameInput{
		OwnerID: "user_1", Name: "aragorn", NewName: "Aragorn",
	})
	s.Require().NoError(err)
	s.Equal("Aragorn", out.Character.Name)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	s.create("user_1", "Aragorn")
	s.create("user_1", "Bilbo")

	_, err := s.repo.Delete(s.ctx, character.DeleteInput{OwnerID: "user_1", Name: "ARAGORN"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, character.GetInput{OwnerID: "user_1", Name: "Aragorn"})
	s.True(errors.IsNotFound(err))

	list, err := s.repo.List(s.ctx, character.ListInput{OwnerID: "user_1"})
	s.Require().NoError(err)
	s.Require().Len(list.Characters, 1)
	s.Equal("Bilbo", list.Characters[0].Name)
}

func (s *RedisRepositoryTestSuite) TestDeleteMissing() {
	_, err := s.repo.Delete(s.ctx, character.DeleteInput{OwnerID: "user_1", Name: "Nobody"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func TestConfigValidation(t *testing.T) {
	err := (&character.Config{}).Validate()
	require.True(t, errors.IsInvalidArgument(err))

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	require.True(t, ok)
	require.Contains(t, fields, "Client")
}
