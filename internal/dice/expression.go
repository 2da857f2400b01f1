// Package dice implements dice expression parsing and rolling: the
// "2d20+5" notation with keep-highest support ("4d6k3") used by both the
// roll command and the stat-roll engine.
package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/errors"
)

// MaxDiceCount caps how many dice a single expression may roll. Counts
// above the cap are clamped silently rather than rejected.
const MaxDiceCount = 100

var expressionRegex = regexp.MustCompile(`^(\d*)d(\d+)(?:k(\d+))?([+-]\d+)?$`)

// Expression is a parsed dice expression.
//
// Keep == 0 means no keep clause: every die counts toward the total.
type Expression struct {
	Count    int
	Sides    int
	Keep     int
	Modifier int
}

// Parse parses a dice expression into an Expression.
//
// Accepted forms, case-insensitive, surrounding whitespace ignored:
//
//	N              a bare integer, shorthand for 1dN
//	[count]d<sides>[k<keep>][+|-modifier]
//
// Sides below 1 are rejected. A count above MaxDiceCount is clamped, as
// is a keep above the count. A count of 0 is permitted and rolls no
// dice, leaving the modifier as the total.
//
// Failures return an InvalidArgument error so callers can report bad
// expressions per item and keep processing a batch.
func Parse(text string) (Expression, error) {
	expr := strings.ToLower(strings.TrimSpace(text))
	if expr == "" {
		return Expression{}, errors.InvalidArgument("empty dice expression").
			WithMeta("reason", "format")
	}

	// Bare integer: one die with that many sides, not that many dice.
	if sides, err := strconv.Atoi(expr); err == nil && sides >= 0 {
		return build(1, sides, 0, 0, expr)
	}

	matches := expressionRegex.FindStringSubmatch(expr)
	if matches == nil {
		return Expression{}, errors.InvalidArgumentf(
			"invalid dice expression: %s (expected format: [count]d<sides>[k<keep>][+/-modifier])", text).
			WithMeta("reason", "format")
	}

	count := 1
	if matches[1] != "" {
		n, err := strconv.Atoi(matches[1])
		if err != nil {
			return Expression{}, errors.InvalidArgumentf("invalid dice count in %s", text).
				WithMeta("reason", "format")
		}
		count = n
	}

	sides, err := strconv.Atoi(matches[2])
	if err != nil {
		return Expression{}, errors.InvalidArgumentf("invalid die size in %s", text).
			WithMeta("reason", "format")
	}

	keep := 0
	if matches[3] != "" {
		keep, err = strconv.Atoi(matches[3])
		if err != nil || keep < 1 {
			return Expression{}, errors.InvalidArgumentf("invalid keep count in %s", text).
				WithMeta("reason", "format")
		}
	}

	modifier := 0
	if matches[4] != "" {
		modifier, err = strconv.Atoi(matches[4])
		if err != nil {
			return Expression{}, errors.InvalidArgumentf("invalid modifier in %s", text).
				WithMeta("reason", "format")
		}
	}

	return build(count, sides, keep, modifier, expr)
}

func build(count, sides, keep, modifier int, raw string) (Expression, error) {
	if sides < 1 {
		return Expression{}, errors.InvalidArgumentf(
			"invalid dice expression: %s (a die needs at least 1 side)", raw).
			WithMeta("reason", "format")
	}

	if count > MaxDiceCount {
		count = MaxDiceCount
	}
	if keep > count {
		keep = count
	}

	return Expression{
		Count:    count,
		Sides:    sides,
		Keep:     keep,
		Modifier: modifier,
	}, nil
}

// String returns the canonical form of the expression, reflecting any
// clamping applied during parsing. Parsing the result yields an equal
// Expression.
func (e Expression) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dd%d", e.Count, e.Sides)
	if e.Keep > 0 {
		fmt.Fprintf(&sb, "k%d", e.Keep)
	}
	if e.Modifier != 0 {
		fmt.Fprintf(&sb, "%+d", e.Modifier)
	}
	return sb.String()
}
