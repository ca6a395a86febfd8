package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-hud/internal/handlers/sheet/v1alpha1"
)

var rollDiceCmd = &cobra.Command{
	Use:   "roll [notation]",
	Short: "Roll dice using dice notation",
	Long: `Roll dice and see individual results. Examples:

  roll d20
  roll 2d6+3
  roll 4d4-1`,
	Args: cobra.ExactArgs(1),
	RunE: rollDice,
}

func rollDice(_ *cobra.Command, args []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RollDice(ctx, &v1alpha1.RollDiceRequest{Notation: args[0]})
	if err != nil {
		return fmt.Errorf("failed to roll dice: %w", err)
	}

	roll := resp.Roll
	fmt.Printf("\n🎲 %s\n", roll.Notation)
	fmt.Printf("  Individual Dice: %v\n", roll.Dice)
	if roll.Modifier != 0 {
		fmt.Printf("  Modifier: %+d\n", roll.Modifier)
	}
	fmt.Printf("  Total: %d\n", roll.Total)

	if len(resp.History) > 1 {
		fmt.Printf("\nRecent rolls:\n")
		for _, previous := range resp.History[1:] {
			fmt.Printf("  %-8s = %d\n", previous.Notation, previous.Total)
		}
	}
	return nil
}
