package roster_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/entities"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/errors"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/orchestrators/roster"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/pkg/clock"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/repositories/character"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/rules/recommend"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/testutils"
)

// unitJitter maps every draw to a jitter factor of exactly 1.0.
type unitJitter struct{}

func (unitJitter) Float64() float64 { return 0.5 }

type stubClasses []entities.Class

func (s stubClasses) Classes() []entities.Class { return s }

type OrchestratorTestSuite struct {
	suite.Suite
	svc     roster.Service
	repo    character.Repository
	cleanup func()
	ctx     context.Context
	nextID  int
}

func (s *OrchestratorTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()
	s.nextID = 0

	repo, err := character.NewRedisRepository(&character.Config{
		Client: client,
		Clock:  clock.NewFixed(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
	})
	s.Require().NoError(err)
	s.repo = repo

	svc, err := roster.New(&roster.Config{
		CharacterRepo: repo,
		Classes: stubClasses{
			{Name: "Fighter", PrimaryStats: []entities.Attribute{entities.STR}, SecondaryStats: []entities.Attribute{entities.CON}},
			{Name: "Ranger", PrimaryStats: []entities.Attribute{entities.DEX}},
		},
		Recommender: recommend.New(&recommend.Config{RNG: unitJitter{}}),
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *OrchestratorTestSuite) seed(ownerID, name string, stats entities.ScoreSet) *entities.Character {
	s.nextID++
	char := &entities.Character{
		ID:      string(rune('a'+s.nextID)) + "_char",
		OwnerID: ownerID,
		Name:    name,
		Race:    "Dwarf",
		Class:   entities.UnassignedClass,
		Stats:   stats,
	}
	out, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)
	return out.Character
}

func (s *OrchestratorTestSuite) TestGetCharacter() {
	s.seed("user_1", "Thorin", entities.ScoreSet{entities.STR: 15})

	out, err := s.svc.GetCharacter(s.ctx, &roster.GetCharacterInput{
		OwnerID: "user_1", Name: "thorin",
	})
	s.Require().NoError(err)
	s.Equal("Thorin", out.Character.Name)

	_, err = s.svc.GetCharacter(s.ctx, &roster.GetCharacterInput{
		OwnerID: "user_2", Name: "Thorin",
	})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListCharacters() {
	s.seed("user_1", "Aragorn", nil)
	s.seed("user_1", "Bilbo", nil)

	out, err := s.svc.ListCharacters(s.ctx, &roster.ListCharactersInput{OwnerID: "user_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 2)
	s.Equal("Aragorn", out.Characters[0].Name)
	s.Equal("Bilbo", out.Characters[1].Name)
}

func (s *OrchestratorTestSuite) TestDeleteCharacter() {
	s.seed("user_1", "Thorin", nil)

	_, err := s.svc.DeleteCharacter(s.ctx, &roster.DeleteCharacterInput{
		OwnerID: "user_1", Name: "THORIN",
	})
	s.Require().NoError(err)

	_, err = s.svc.GetCharacter(s.ctx, &roster.GetCharacterInput{
		OwnerID: "user_1", Name: "Thorin",
	})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestRenameCharacter() {
	s.seed("user_1", "Aragorn", nil)
	s.seed("user_1", "Bilbo", nil)

	out, err := s.svc.RenameCharacter(s.ctx, &roster.RenameCharacterInput{
		OwnerID: "user_1", Name: "Aragorn", NewName: "Strider",
	})
	s.Require().NoError(err)
	s.Equal("Strider", out.Character.Name)

	_, err = s.svc.RenameCharacter(s.ctx, &roster.RenameCharacterInput{
		OwnerID: "user_1", Name: "Strider", NewName: "bilbo",
	})
	s.True(errors.IsAlreadyExists(err))
}

func (s *OrchestratorTestSuite) TestUpdateClass() {
	s.seed("user_1", "Thorin", nil)

	out, err := s.svc.UpdateClass(s.ctx, &roster.UpdateClassInput{
		OwnerID: "user_1", Name: "Thorin", Class: "Fighter",
	})
	s.Require().NoError(err)
	s.Equal("Fighter", out.Character.Class)

	got, err := s.svc.GetCharacter(s.ctx, &roster.GetCharacterInput{
		OwnerID: "user_1", Name: "Thorin",
	})
	s.Require().NoError(err)
	s.Equal("Fighter", got.Character.Class)
}

func (s *OrchestratorTestSuite) TestUpdateStat() {
	s.seed("user_1", "Thorin", entities.ScoreSet{entities.STR: 15})

	out, err := s.svc.UpdateStat(s.ctx, &roster.UpdateStatInput{
		OwnerID: "user_1", Name: "Thorin", Attribute: "constitution", Value: 16,
	})
	s.Require().NoError(err)
	s.Equal(16, out.Character.Stats[entities.CON])
	s.Equal(15, out.Character.Stats[entities.STR])

	_, err = s.svc.UpdateStat(s.ctx, &roster.UpdateStatInput{
		OwnerID: "user_1", Name: "Thorin", Attribute: "luck", Value: 12,
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.UpdateStat(s.ctx, &roster.UpdateStatInput{
		OwnerID: "user_1", Name: "Thorin", Attribute: "STR", Value: 0,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRecommendations() {
	s.seed("user_1", "Thorin", entities.ScoreSet{entities.STR: 16, entities.DEX: 8})

	out, err := s.svc.Recommendations(s.ctx, &roster.RecommendationsInput{
		OwnerID: "user_1", Name: "Thorin",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Recommendations, 2)
	// STR 16 with CON defaulting to 10: Fighter 160+50, Ranger 80.
	s.Equal("Fighter", out.Recommendations[0].Class)
	s.InDelta(210.0, out.Recommendations[0].Score, 0.001)
	s.Equal("Ranger", out.Recommendations[1].Class)
	s.InDelta(80.0, out.Recommendations[1].Score, 0.001)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func TestConfigValidation(t *testing.T) {
	_, err := roster.New(nil)
	require.True(t, errors.IsInvalidArgument(err))

	_, err = roster.New(&roster.Config{})
	require.True(t, errors.IsInvalidArgument(err))

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	require.True(t, ok)
	require.Contains(t, fields, "CharacterRepo")
	require.Contains(t, fields, "Classes")
}
