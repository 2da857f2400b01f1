// Package allocation validates how a creation session's dice budget is
// split across the six attributes.
package allocation

import (
	"strconv"
	"strings"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/entities"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/errors"
)

// MinDicePerAttribute is the fewest dice a single attribute may receive
const MinDicePerAttribute = 3

// Allocation assigns a dice count to each of the six attributes
type Allocation map[entities.Attribute]int

// ParseArgs parses a distribution argument list into an Allocation.
//
// Two shapes are accepted:
//
//	6 tokens:  bare integers in canonical order (STR DEX CON INT WIS CHA)
//	12 tokens: attribute/value pairs in any order, covering all six
//
// Anything else is an InvalidArgument format error.
func ParseArgs(args []string) (Allocation, error) {
	switch len(args) {
	case 6:
		return parsePositional(args)
	case 12:
		return parsePairs(args)
	default:
		return nil, errors.InvalidArgumentf(
			"expected 6 values or 6 attribute/value pairs, got %d arguments", len(args)).
			WithMeta("reason", "format")
	}
}

func parsePositional(args []string) (Allocation, error) {
	alloc := make(Allocation, 6)
	for i, attr := range entities.Attributes() {
		value, err := strconv.Atoi(args[i])
		if err != nil || value < 0 {
			return nil, errors.InvalidArgumentf(
				"invalid value for %s: %q must be a non-negative number", attr, args[i]).
				WithMeta("reason", "format")
		}
		alloc[attr] = value
	}
	return alloc, nil
}

func parsePairs(args []string) (Allocation, error) {
	alloc := make(Allocation, 6)
	for i := 0; i < len(args); i += 2 {
		attr, ok := entities.ParseAttribute(args[i])
		if !ok {
			return nil, errors.InvalidArgumentf(
				"unknown attribute %q: use STR, DEX, CON, INT, WIS, CHA", args[i]).
				WithMeta("reason", "format")
		}
		if _, dup := alloc[attr]; dup {
			return nil, errors.InvalidArgumentf("attribute %s given more than once", attr).
				WithMeta("reason", "format")
		}

		value, err := strconv.Atoi(args[i+1])
		if err != nil || value < 0 {
			return nil, errors.InvalidArgumentf(
				"invalid value for %s: %q must be a non-negative number", attr, args[i+1]).
				WithMeta("reason", "format")
		}
		alloc[attr] = value
	}

	if len(alloc) < 6 {
		return nil, errors.InvalidArgument(
			"provide values for all 6 attributes: STR, DEX, CON, INT, WIS, CHA").
			WithMeta("reason", "format")
	}
	return alloc, nil
}

// Validate checks an allocation against the session's dice budget: the
// values must sum to totalPoints exactly and every attribute needs at
// least MinDicePerAttribute dice. There is deliberately no upper bound
// per attribute.
//
// A sum mismatch carries the signed difference under the
// "point_difference" metadata key (positive = points missing, negative =
// points over budget).
func Validate(alloc Allocation, totalPoints int) error {
	sum := 0
	for _, v := range alloc {
		sum += v
	}

	if sum != totalPoints {
		diff := totalPoints - sum
		status := "missing"
		if diff < 0 {
			status = "over by"
		}
		return errors.InvalidArgumentf(
			"point mismatch: target %d, got %d (%s %d)", totalPoints, sum, status, abs(diff)).
			WithMeta("point_difference", diff)
	}

	var below []string
	for _, attr := range entities.Attributes() {
		if alloc[attr] < MinDicePerAttribute {
			below = append(below, attr.String())
		}
	}
	if len(below) > 0 {
		return errors.InvalidArgumentf(
			"each attribute needs at least %d dice: %s", MinDicePerAttribute, strings.Join(below, ", ")).
			WithMeta("attributes", below)
	}

	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
