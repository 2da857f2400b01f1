// Package roll orchestrates batch dice rolling: each expression in a
// request parses and rolls independently, so one malformed entry never
// sinks the rest of the batch. Nothing is persisted.
package roll

import (
	"context"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/dice"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/errors"
)

// Service rolls batches of dice expressions
type Service interface {
	// RollExpressions parses and rolls every expression in the input.
	// Results come back in input order; a bad expression produces a
	// result entry with Err set and the batch continues.
	RollExpressions(ctx context.Context, input *RollExpressionsInput) (*RollExpressionsOutput, error)
}

// RollExpressionsInput defines the input for a batch roll
type RollExpressionsInput struct {
	Expressions []string
}

// RollExpressionsOutput defines the output for a batch roll
type RollExpressionsOutput struct {
	Results []Result
}

// Result is the outcome of one expression in a batch
type Result struct {
	// Input is the raw expression text as given
	Input string
	// Expression is the parsed form, zero when Err is set
	Expression dice.Expression
	// Outcome holds the rolled dice, zero when Err is set
	Outcome dice.Outcome
	// Err is the parse failure for this entry, nil on success
	Err error
}

// Config holds the dependencies for the roll orchestrator
type Config struct {
	// Roller defaults to a system-RNG roller when nil
	Roller *dice.Roller
}

type orchestrator struct {
	roller *dice.Roller
}

// New creates a new roll orchestrator. A nil config selects defaults.
func New(cfg *Config) Service {
	var roller *dice.Roller
	if cfg != nil {
		roller = cfg.Roller
	}
	if roller == nil {
		roller = dice.NewRoller(nil)
	}
	return &orchestrator{roller: roller}
}

var _ Service = (*orchestrator)(nil)

func (o *orchestrator) RollExpressions(ctx context.Context, input *RollExpressionsInput) (*RollExpressionsOutput, error) {
	if input == nil || len(input.Expressions) == 0 {
		return nil, errors.InvalidArgument("at least one dice expression is required")
	}

	results := make([]Result, 0, len(input.Expressions))
	for _, raw := range input.Expressions {
		expr, err := dice.Parse(raw)
		if err != nil {
			results = append(results, Result{Input: raw, Err: err})
			continue
		}
		results = append(results, Result{
			Input:      raw,
			Expression: expr,
			Outcome:    o.roller.Roll(expr),
		})
	}

	return &RollExpressionsOutput{Results: results}, nil
}
