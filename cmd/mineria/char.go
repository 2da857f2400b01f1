package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/entities"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/orchestrators/creation"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/orchestrators/roster"
	"github.com/Sanji-devv/Mineria-dc-bot/internal/rules/recommend"
)

var charUser string

var charCmd = &cobra.Command{
	Use:   "char",
	Short: "Create and manage characters",
	Long: `Walk through stat-roll character creation and manage the saved
roster. Creation is a session: pick a race, distribute your dice
points, optionally tweak the results, then save under a name.`,
}

func init() {
	charCmd.PersistentFlags().StringVar(&charUser, "user", "local", "acting user identity")

	charCmd.AddCommand(charCreateCmd)
	charCmd.AddCommand(charDistributeCmd)
	charCmd.AddCommand(charBonusCmd)
	charCmd.AddCommand(charAdjustCmd)
	charCmd.AddCommand(charSaveCmd)
	charCmd.AddCommand(charStatusCmd)
	charCmd.AddCommand(charInfoCmd)
	charCmd.AddCommand(charListCmd)
	charCmd.AddCommand(charDeleteCmd)
	charCmd.AddCommand(charRenameCmd)
	charCmd.AddCommand(charEditCmd)
	charCmd.AddCommand(charRecommendCmd)

	charEditCmd.AddCommand(charEditClassCmd)
	charEditCmd.AddCommand(charEditStatCmd)
}

var charCreateCmd = &cobra.Command{
	Use:   "create <race>",
	Short: "Start a creation session with a race",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.creation.StartCreation(cmd.Context(), &creation.StartCreationInput{
			OwnerID:  charUser,
			RaceName: args[0],
		})
		if err != nil {
			fmt.Println(userMessage(err))
			if races := a.races.Names(); len(races) > 0 {
				fmt.Printf("Available races: %s\n", strings.Join(races, ", "))
			}
			return nil
		}

		fmt.Printf("%s creation started. You have %d dice points.\n", out.RaceName, out.DicePoints)
		if out.FlexibleBonus > 0 {
			fmt.Printf("Your race grants a +%d bonus to an attribute of your choice after rolling.\n", out.FlexibleBonus)
		}
		fmt.Printf("Distribute them with: mineria char dr STR 6 DEX 5 CON 5 INT 5 WIS 4 CHA 6\n")
		return nil
	},
}

var charDistributeCmd = &cobra.Command{
	Use:     "dr <allocation...>",
	Aliases: []string{"distribute"},
	Short:   "Distribute dice points and roll your stats",
	Long: `Distribute the session's dice points across STR, DEX, CON, INT, WIS
and CHA, then roll: each attribute rolls its dice count of d6 and keeps
the best three. Give six values in that order, or six attribute/value
pairs in any order. Every attribute needs at least 3 dice.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.creation.DistributeDice(cmd.Context(), &creation.DistributeDiceInput{
			OwnerID: charUser,
			Args:    args,
		})
		if err != nil {
			fmt.Println(userMessage(err))
			return nil
		}

		fmt.Println(out.Narrative)
		fmt.Println()
		printStats(out.Stats)
		if out.FlexibleBonusPending {
			fmt.Printf("\nAssign your +%d racial bonus with: mineria char bonus <attribute>\n", out.FlexibleBonus)
		}
		if len(out.Recommendations) > 0 {
			fmt.Println()
			printRecommendations(out.Recommendations)
		}
		fmt.Println("\nSave with: mineria char save <name>")
		return nil
	},
}

var charBonusCmd = &cobra.Command{
	Use:   "bonus <attribute>",
	Short: "Assign the race's flexible bonus to one attribute",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.creation.ApplyFlexibleBonus(cmd.Context(), &creation.ApplyFlexibleBonusInput{
			OwnerID:   charUser,
			Attribute: args[0],
		})
		if err != nil {
			fmt.Println(userMessage(err))
			return nil
		}

		fmt.Printf("%s is now %d.\n", out.Attribute, out.NewScore)
		return nil
	},
}

var charAdjustCmd = &cobra.Command{
	Use:   "adjust <attribute> <delta>",
	Short: "Apply a signed adjustment to a rolled attribute",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("delta must be a number, got %q", args[1])
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.creation.AdjustStat(cmd.Context(), &creation.AdjustStatInput{
			OwnerID:   charUser,
			Attribute: args[0],
			Delta:     delta,
		})
		if err != nil {
			fmt.Println(userMessage(err))
			return nil
		}

		fmt.Printf("%s is now %d.\n", out.Attribute, out.NewScore)
		return nil
	},
}

var charSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the rolled session as a named character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.creation.SaveCharacter(cmd.Context(), &creation.SaveCharacterInput{
			OwnerID: charUser,
			Name:    args[0],
		})
		if err != nil {
			fmt.Println(userMessage(err))
			return nil
		}

		fmt.Printf("%s the %s saved.\n", out.Character.Name, out.Character.Race)
		return nil
	},
}

var charStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of your creation session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.creation.GetSession(cmd.Context(), &creation.GetSessionInput{OwnerID: charUser})
		if err != nil {
			return err
		}

		if !out.Active {
			fmt.Println("No creation in progress. Start one with: mineria char create <race>")
			return nil
		}

		fmt.Printf("Creating a %s with %d dice points.\n", out.RaceName, out.DicePoints)
		if !out.ReadyToSave {
			fmt.Println("Next: distribute your dice with mineria char dr")
			return nil
		}

		printStats(out.Stats)
		if out.FlexibleBonusPending {
			fmt.Println("A racial bonus is still unassigned: mineria char bonus <attribute>")
		}
		fmt.Println("Ready to save: mineria char save <name>")
		return nil
	},
}

var charInfoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show a saved character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.roster.GetCharacter(cmd.Context(), &roster.GetCharacterInput{
			OwnerID: charUser,
			Name:    args[0],
		})
		if err != nil {
			fmt.Println(userMessage(err))
			return nil
		}

		char := out.Character
		fmt.Printf("%s (%s %s)\n", char.Name, char.Race, char.Class)
		printStats(char.Stats)
		if char.RollNarrative != "" {
			fmt.Println("\nRoll history:")
			fmt.Println(char.RollNarrative)
		}
		return nil
	},
}

var charListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your saved characters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.roster.ListCharacters(cmd.Context(), &roster.ListCharactersInput{OwnerID: charUser})
		if err != nil {
			return err
		}

		if len(out.Characters) == 0 {
			fmt.Println("No characters yet. Create one with: mineria char create <race>")
			return nil
		}
		for _, char := range out.Characters {
			fmt.Printf("%s (%s %s)\n", char.Name, char.Race, char.Class)
		}
		return nil
	},
}

var charDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.roster.DeleteCharacter(cmd.Context(), &roster.DeleteCharacterInput{
			OwnerID: charUser,
			Name:    args[0],
		}); err != nil {
			fmt.Println(userMessage(err))
			return nil
		}

		fmt.Printf("%s deleted.\n", args[0])
		return nil
	},
}

var charRenameCmd = &cobra.Command{
	Use:   "rename <name> <new-name>",
	Short: "Rename a saved character",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.roster.RenameCharacter(cmd.Context(), &roster.RenameCharacterInput{
			OwnerID: charUser,
			Name:    args[0],
			NewName: args[1],
		})
		if err != nil {
			fmt.Println(userMessage(err))
			return nil
		}

		fmt.Printf("Renamed to %s.\n", out.Character.Name)
		return nil
	},
}

var charEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a saved character",
}

var charEditClassCmd = &cobra.Command{
	Use:   "class <name> <class>",
	Short: "Change a character's class",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.roster.UpdateClass(cmd.Context(), &roster.UpdateClassInput{
			OwnerID: charUser,
			Name:    args[0],
			Class:   args[1],
		})
		if err != nil {
			fmt.Println(userMessage(err))
			return nil
		}

		fmt.Printf("%s is now a %s.\n", out.Character.Name, out.Character.Class)
		return nil
	},
}

var charEditStatCmd = &cobra.Command{
	Use:   "stat <name> <attribute> <value>",
	Short: "Overwrite one of a character's attributes",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("value must be a number, got %q", args[2])
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.roster.UpdateStat(cmd.Context(), &roster.UpdateStatInput{
			OwnerID:   charUser,
			Name:      args[0],
			Attribute: args[1],
			Value:     value,
		})
		if err != nil {
			fmt.Println(userMessage(err))
			return nil
		}

		fmt.Printf("%s updated.\n", out.Character.Name)
		printStats(out.Character.Stats)
		return nil
	},
}

var charRecommendCmd = &cobra.Command{
	Use:   "recommend <name>",
	Short: "Suggest classes for a saved character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.roster.Recommendations(cmd.Context(), &roster.RecommendationsInput{
			OwnerID: charUser,
			Name:    args[0],
		})
		if err != nil {
			fmt.Println(userMessage(err))
			return nil
		}

		if len(out.Recommendations) == 0 {
			fmt.Println("No classes in the catalog to recommend.")
			return nil
		}
		printRecommendations(out.Recommendations)
		return nil
	},
}

func printStats(stats entities.ScoreSet) {
	for _, attr := range entities.Attributes() {
		fmt.Printf("%s %d  ", attr, stats.Get(attr))
	}
	fmt.Println()
}

func printRecommendations(recs []recommend.Score) {
	fmt.Println("Suggested classes:")
	for i, rec := range recs {
		fmt.Printf("%d. %s (%.0f)\n", i+1, rec.Class, rec.Score)
	}
}
