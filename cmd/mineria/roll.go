package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/orchestrators/roll"
)

var rollCmd = &cobra.Command{
	Use:   "roll <expression> [expression...]",
	Short: "Roll dice expressions",
	Long: `Roll one or more dice expressions, such as "2d20+5", "4d6k3" or a
bare "20" for a single d20. Bad expressions are reported individually;
the rest of the batch still rolls.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRoll,
}

func runRoll(cmd *cobra.Command, args []string) error {
	svc := roll.New(nil)

	out, err := svc.RollExpressions(cmd.Context(), &roll.RollExpressionsInput{
		Expressions: args,
	})
	if err != nil {
		return err
	}

	for _, result := range out.Results {
		if result.Err != nil {
			fmt.Printf("%s: %s\n", result.Input, userMessage(result.Err))
			continue
		}
		fmt.Println(formatResult(result))
	}
	return nil
}

// formatResult renders one rolled expression, separating kept from
// dropped dice when a keep clause applied:
//
//	4d6k3 [6 5 3 | 2] = 14
func formatResult(result roll.Result) string {
	var sb strings.Builder
	sb.WriteString(result.Expression.String())

	sorted := make([]int, len(result.Outcome.Rolls))
	copy(sorted, result.Outcome.Rolls)
	dice := result.Outcome.Rolls
	if result.Expression.Keep > 0 {
		sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
		dice = sorted
	}

	if len(dice) > 0 {
		sb.WriteString(" [")
		for i, v := range dice {
			if result.Expression.Keep > 0 && i == len(result.Outcome.Kept) {
				sb.WriteString("| ")
			}
			fmt.Fprintf(&sb, "%d", v)
			if i < len(dice)-1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("]")
	}

	fmt.Fprintf(&sb, " = %d", result.Outcome.Total)
	return sb.String()
}
