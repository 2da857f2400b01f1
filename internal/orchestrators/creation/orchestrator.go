package creation

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/dice"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/entities"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/errors"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/pkg/clock"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/pkg/idgen"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/repositories/character"
	creationsession "github.com/Sanji-devv/Mineria-dc-bot/internal/repositories/creation_session"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/rules/allocation"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/rules/racial"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/rules/recommend"
)

const (
	// baseDiceBudget is the dice-point pool before race cost
	baseDiceBudget = 40

	statDieSides = 6
	statDiceKept = 3

	// DefaultSessionTTL bounds how long an untouched session survives
	DefaultSessionTTL = time.Hour
)

// Config holds the dependencies for the creation orchestrator
type Config struct {
	SessionRepo   creationsession.Repository
	CharacterRepo character.Repository
	Races         RaceCatalog
	Classes       ClassCatalog

	// Roller defaults to a system-RNG roller when nil
	Roller *dice.Roller
	// Recommender defaults to a system-RNG recommender when nil
	Recommender *recommend.Recommender
	// IDGenerator defaults to UUIDs with a "char" prefix when nil
	IDGenerator idgen.Generator
	// Clock defaults to the real clock when nil
	Clock clock.Clock
	// SessionTTL defaults to DefaultSessionTTL when zero
	SessionTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Races == nil {
		vb.RequiredField("Races")
	}
	if c.Classes == nil {
		vb.RequiredField("Classes")
	}

	return vb.Build()
}

type orchestrator struct {
	sessions    creationsession.Repository
	characters  character.Repository
	races       RaceCatalog
	classes     ClassCatalog
	roller      *dice.Roller
	recommender *recommend.Recommender
	idGen       idgen.Generator
	clock       clock.Clock
	sessionTTL  time.Duration
}

// New creates a new creation orchestrator
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &orchestrator{
		sessions:    cfg.SessionRepo,
		characters:  cfg.CharacterRepo,
		races:       cfg.Races,
		classes:     cfg.Classes,
		roller:      cfg.Roller,
		recommender: cfg.Recommender,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
		sessionTTL:  cfg.SessionTTL,
	}
	if o.roller == nil {
		o.roller = dice.NewRoller(nil)
	}
	if o.recommender == nil {
		o.recommender = recommend.New(nil)
	}
	if o.idGen == nil {
		o.idGen = idgen.NewUUID("char")
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.sessionTTL <= 0 {
		o.sessionTTL = DefaultSessionTTL
	}
	return o, nil
}

var _ Service = (*orchestrator)(nil)

func (o *orchestrator) StartCreation(ctx context.Context, input *StartCreationInput) (*StartCreationOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID cannot be empty")
	}
	if strings.TrimSpace(input.RaceName) == "" {
		return nil, errors.InvalidArgument("race name cannot be empty")
	}

	race, ok := o.races.Find(input.RaceName)
	if !ok {
		return nil, errors.NotFoundf("unknown race: %s", input.RaceName).
			WithMeta("race", input.RaceName)
	}

	_, flexible := racial.Resolve(race)
	now := o.clock.Now()
	session := &creationsession.Session{
		OwnerID:       input.OwnerID,
		RaceName:      race.Name,
		Race:          race,
		DicePoints:    baseDiceBudget - race.RacePoints,
		FlexibleBonus: flexible,
		CreatedAt:     now,
		ExpiresAt:     now.Add(o.sessionTTL),
	}

	// Put replaces any session already in flight for this owner.
	if err := o.sessions.Put(ctx, session); err != nil {
		return nil, err
	}

	slog.Info("creation session started",
		"owner_id", input.OwnerID,
		"race", race.Name,
		"dice_points", session.DicePoints,
	)

	return &StartCreationOutput{
		RaceName:      race.Name,
		DicePoints:    session.DicePoints,
		FlexibleBonus: flexible,
	}, nil
}

func (o *orchestrator) DistributeDice(ctx context.Context, input *DistributeDiceInput) (*DistributeDiceOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID cannot be empty")
	}

	session, err := o.activeSession(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	alloc, err := allocation.ParseArgs(input.Args)
	if err != nil {
		return nil, err
	}
	if err := allocation.Validate(alloc, session.DicePoints); err != nil {
		return nil, err
	}

	mods, _ := racial.Resolve(session.Race)

	stats := make(entities.ScoreSet, 6)
	lines := make([]string, 0, 6)
	for _, attr := range entities.Attributes() {
		outcome := o.roller.Roll(dice.Expression{
			Count: alloc[attr],
			Sides: statDieSides,
			Keep:  statDiceKept,
		})

		score := outcome.Total + mods[attr]
		stats[attr] = score
		lines = append(lines, rollLine(attr, alloc[attr], outcome, mods[attr], score))
	}

	session.Allocation = alloc
	session.Stats = stats
	session.Narrative = strings.Join(lines, "\n")
	session.FlexibleBonusApplied = false
	if err := o.sessions.Put(ctx, session); err != nil {
		return nil, err
	}

	return &DistributeDiceOutput{
		Stats:                stats.Clone(),
		Narrative:            session.Narrative,
		Recommendations:      o.recommender.Recommend(stats, o.classes.Classes()),
		FlexibleBonusPending: session.FlexibleBonusPending(),
		FlexibleBonus:        session.FlexibleBonus,
	}, nil
}

func (o *orchestrator) ApplyFlexibleBonus(ctx context.Context, input *ApplyFlexibleBonusInput) (*ApplyFlexibleBonusOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID cannot be empty")
	}

	session, err := o.rolledSession(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	if session.FlexibleBonus == 0 {
		return nil, errors.FailedPreconditionf("%s has no flexible bonus to assign", session.RaceName)
	}
	if session.FlexibleBonusApplied {
		return nil, errors.FailedPrecondition("flexible bonus already assigned this session")
	}

	attr, ok := entities.ParseAttribute(input.Attribute)
	if !ok {
		return nil, errors.InvalidArgumentf(
			"unknown attribute %q: use STR, DEX, CON, INT, WIS, CHA", input.Attribute)
	}

	session.Stats[attr] += session.FlexibleBonus
	session.FlexibleBonusApplied = true
	session.Narrative += fmt.Sprintf("\n%s: %+d flexible bonus = %d",
		attr, session.FlexibleBonus, session.Stats[attr])
	if err := o.sessions.Put(ctx, session); err != nil {
		return nil, err
	}

	return &ApplyFlexibleBonusOutput{
		Attribute: attr,
		NewScore:  session.Stats[attr],
		Stats:     session.Stats.Clone(),
	}, nil
}

func (o *orchestrator) AdjustStat(ctx context.Context, input *AdjustStatInput) (*AdjustStatOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID cannot be empty")
	}
	if input.Delta == 0 {
		return nil, errors.InvalidArgument("adjustment cannot be zero")
	}

	session, err := o.rolledSession(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	attr, ok := entities.ParseAttribute(input.Attribute)
	if !ok {
		return nil, errors.InvalidArgumentf(
			"unknown attribute %q: use STR, DEX, CON, INT, WIS, CHA", input.Attribute)
	}

	session.Stats[attr] += input.Delta
	session.Narrative += fmt.Sprintf("\n%s: adjusted %+d = %d", attr, input.Delta, session.Stats[attr])
	if err := o.sessions.Put(ctx, session); err != nil {
		return nil, err
	}

	return &AdjustStatOutput{
		Attribute: attr,
		NewScore:  session.Stats[attr],
		Stats:     session.Stats.Clone(),
	}, nil
}

func (o *orchestrator) SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID cannot be empty")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument("character name cannot be empty")
	}

	session, err := o.rolledSession(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	char := &entities.Character{
		ID:            o.idGen.Generate(),
		OwnerID:       input.OwnerID,
		Name:          strings.TrimSpace(input.Name),
		Race:          session.RaceName,
		Class:         entities.UnassignedClass,
		Stats:         session.Stats.Clone(),
		RollNarrative: session.Narrative,
	}

	created, err := o.characters.Create(ctx, character.CreateInput{Character: char})
	if err != nil {
		return nil, err
	}

	if err := o.sessions.Delete(ctx, input.OwnerID); err != nil {
		// The character is saved; a stale session only lingers until
		// its TTL.
		slog.Warn("failed to delete creation session after save",
			"owner_id", input.OwnerID,
			"error", err,
		)
	}

	slog.Info("character saved",
		"owner_id", input.OwnerID,
		"character_id", created.Character.ID,
		"name", created.Character.Name,
	)

	return &SaveCharacterOutput{Character: created.Character}, nil
}

func (o *orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID cannot be empty")
	}

	session, err := o.sessions.Get(ctx, input.OwnerID)
	if err != nil {
		if errors.IsNotFound(err) {
			return &GetSessionOutput{Active: false}, nil
		}
		return nil, err
	}

	return &GetSessionOutput{
		Active:               true,
		RaceName:             session.RaceName,
		DicePoints:           session.DicePoints,
		Stats:                session.Stats.Clone(),
		Narrative:            session.Narrative,
		ReadyToSave:          session.HasStats(),
		FlexibleBonusPending: session.FlexibleBonusPending(),
	}, nil
}

// activeSession fetches the owner's session, translating a missing or
// expired session into guidance for the player.
func (o *orchestrator) activeSession(ctx context.Context, ownerID string) (*creationsession.Session, error) {
	session, err := o.sessions.Get(ctx, ownerID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.FailedPrecondition(
				"no character creation in progress: start one by picking a race")
		}
		return nil, err
	}
	return session, nil
}

func (o *orchestrator) rolledSession(ctx context.Context, ownerID string) (*creationsession.Session, error) {
	session, err := o.activeSession(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !session.HasStats() {
		return nil, errors.FailedPrecondition(
			"no rolled stats yet: distribute your dice points first")
	}
	return session, nil
}

// rollLine renders one attribute's dice breakdown, kept dice before the
// dropped ones, with the racial delta when the race has one:
//
//	STR: (5d6) [6 5 3 | 2 1] +2 = 16
func rollLine(attr entities.Attribute, count int, outcome dice.Outcome, mod, final int) string {
	sorted := make([]int, len(outcome.Rolls))
	copy(sorted, outcome.Rolls)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: (%dd%d) [", attr, count, statDieSides)
	for i, v := range sorted {
		if i == len(outcome.Kept) {
			sb.WriteString("| ")
		}
		fmt.Fprintf(&sb, "%d", v)
		if i < len(sorted)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	if mod != 0 {
		fmt.Fprintf(&sb, " %+d", mod)
	}
	fmt.Fprintf(&sb, " = %d", final)
	return sb.String()
}
