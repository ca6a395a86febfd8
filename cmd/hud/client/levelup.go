package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-hud/internal/handlers/sheet/v1alpha1"
)

var levelUpClass string

var levelUpCmd = &cobra.Command{
	Use:   "level-up",
	Short: "Drive the level-up wizard",
	Long: `Walk the level-up wizard one call at a time. Example:

  level-up start
  level-up advance
  level-up toggle Champion
  level-up advance
  level-up select Archery Defense
  level-up advance`,
}

var levelUpStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Open the wizard for the next level",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return callLevelUp(func(ctx context.Context, client v1alpha1.SheetServiceClient) (*v1alpha1.LevelUpResponse, error) {
			return client.StartLevelUp(ctx, &v1alpha1.StartLevelUpRequest{ClassName: levelUpClass})
		})
	},
}

var levelUpGetCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the open wizard",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return callLevelUp(func(ctx context.Context, client v1alpha1.SheetServiceClient) (*v1alpha1.LevelUpResponse, error) {
			return client.GetLevelUp(ctx, &v1alpha1.GetLevelUpRequest{})
		})
	},
}

var levelUpToggleCmd = &cobra.Command{
	Use:   "toggle [option]",
	Short: "Select or deselect one option",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return callLevelUp(func(ctx context.Context, client v1alpha1.SheetServiceClient) (*v1alpha1.LevelUpResponse, error) {
			return client.ToggleLevelUpOption(ctx, &v1alpha1.ToggleLevelUpOptionRequest{Option: args[0]})
		})
	},
}

var levelUpSelectCmd = &cobra.Command{
	Use:   "select [option...]",
	Short: "Replace the selection on the current step",
	RunE: func(_ *cobra.Command, args []string) error {
		return callLevelUp(func(ctx context.Context, client v1alpha1.SheetServiceClient) (*v1alpha1.LevelUpResponse, error) {
			return client.SelectLevelUpOptions(ctx, &v1alpha1.SelectLevelUpOptionsRequest{Options: args})
		})
	},
}

var levelUpAllocateCmd = &cobra.Command{
	Use:   "allocate [ability] [points]",
	Short: "Put ability score improvement points into an ability",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		points, err := parseInt("points", args[1])
		if err != nil {
			return err
		}
		return callLevelUp(func(ctx context.Context, client v1alpha1.SheetServiceClient) (*v1alpha1.LevelUpResponse, error) {
			return client.AllocateAbility(ctx, &v1alpha1.AllocateAbilityRequest{Ability: args[0], Points: points})
		})
	},
}

var levelUpRetreatCmd = &cobra.Command{
	Use:   "back",
	Short: "Return to the previous step",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return callLevelUp(func(ctx context.Context, client v1alpha1.SheetServiceClient) (*v1alpha1.LevelUpResponse, error) {
			return client.RetreatLevelUp(ctx, &v1alpha1.RetreatLevelUpRequest{})
		})
	},
}

var levelUpAdvanceCmd = &cobra.Command{
	Use:   "advance",
	Short: "Commit the current step",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createSheetClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.AdvanceLevelUp(ctx, &v1alpha1.AdvanceLevelUpRequest{})
		if err != nil {
			return err
		}

		if !resp.Completed {
			printLevelUp(resp.LevelUp)
			return nil
		}

		fmt.Printf("\nReached level %d (+%d HP)\n", resp.Record.Level, resp.Record.HitPointsGained)
		for _, feature := range resp.Record.FeaturesGained {
			fmt.Printf("  New feature: %s\n", feature)
		}
		for _, resource := range resp.Record.ResourcesGained {
			fmt.Printf("  New resource: %s\n", resource)
		}
		printCharacter(&v1alpha1.CharacterResponse{Character: resp.Character, ClassDisplay: resp.ClassDisplay})
		return nil
	},
}

var levelUpCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Abandon the wizard from its first step",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createSheetClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if _, err := client.CancelLevelUp(ctx, &v1alpha1.CancelLevelUpRequest{}); err != nil {
			return err
		}
		fmt.Println("Level-up cancelled")
		return nil
	},
}

func init() {
	levelUpStartCmd.Flags().StringVar(&levelUpClass, "class", "", "Class to level (defaults to the primary class)")

	levelUpCmd.AddCommand(levelUpStartCmd)
	levelUpCmd.AddCommand(levelUpGetCmd)
	levelUpCmd.AddCommand(levelUpToggleCmd)
	levelUpCmd.AddCommand(levelUpSelectCmd)
	levelUpCmd.AddCommand(levelUpAllocateCmd)
	levelUpCmd.AddCommand(levelUpRetreatCmd)
	levelUpCmd.AddCommand(levelUpAdvanceCmd)
	levelUpCmd.AddCommand(levelUpCancelCmd)
}

func callLevelUp(call func(context.Context, v1alpha1.SheetServiceClient) (*v1alpha1.LevelUpResponse, error)) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := call(ctx, client)
	if err != nil {
		return err
	}

	printLevelUp(resp.LevelUp)
	return nil
}
