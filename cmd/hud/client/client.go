// Package client provides commands that call every hud gRPC method
package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-hud/internal/config"
	"github.com/KirkDiggler/rpg-hud/internal/entities"
	"github.com/KirkDiggler/rpg-hud/internal/handlers/sheet/v1alpha1"
	"github.com/KirkDiggler/rpg-hud/internal/levelup"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the hud server",
	Long:  `Client commands drive a running hud server through its gRPC API.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Changed("server") {
			return nil
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		serverAddr = cfg.ServerAddr
		return nil
	},
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address (defaults to HUD_SERVER_ADDR)")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Character documents
	ClientCmd.AddCommand(getCharacterCmd)
	ClientCmd.AddCommand(loadCharacterCmd)
	ClientCmd.AddCommand(importCharacterCmd)
	ClientCmd.AddCommand(exportCharacterCmd)
	ClientCmd.AddCommand(recentCmd)

	// Class definitions
	ClientCmd.AddCommand(importClassCmd)
	ClientCmd.AddCommand(importSRDClassCmd)

	// Ledger
	ClientCmd.AddCommand(setHPCmd)
	ClientCmd.AddCommand(adjustHPCmd)
	ClientCmd.AddCommand(setTempHPCmd)
	ClientCmd.AddCommand(setResourceCmd)
	ClientCmd.AddCommand(adjustResourceCmd)
	ClientCmd.AddCommand(setSpellSlotCmd)
	ClientCmd.AddCommand(useSlotCmd)
	ClientCmd.AddCommand(restoreSlotCmd)
	ClientCmd.AddCommand(togglePreparedCmd)
	ClientCmd.AddCommand(restCmd)

	// Level-up wizard
	ClientCmd.AddCommand(levelUpCmd)

	// Dice
	ClientCmd.AddCommand(rollDiceCmd)
}

// createSheetClient connects to the server and returns a client plus cleanup
func createSheetClient() (v1alpha1.SheetServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewSheetServiceClient(conn), cleanup, nil
}

func printCharacter(resp *v1alpha1.CharacterResponse) {
	c := resp.Character
	if c == nil {
		return
	}

	fmt.Printf("\n%s - %s\n", c.Name, resp.ClassDisplay)
	fmt.Printf("HP: %d/%d", c.HitPoints.Current, c.HitPoints.Max)
	if c.HitPoints.Temporary > 0 {
		fmt.Printf(" (+%d temp)", c.HitPoints.Temporary)
	}
	fmt.Printf("   AC: %d   Proficiency: +%d\n", c.ArmorClass, c.ProficiencyBonus)

	if len(c.Resources) > 0 {
		fmt.Println("\nResources:")
		for _, r := range c.Resources {
			fmt.Printf("  %-20s %s  (%s)\n", r.Name, gauge(r), r.RechargeOn)
		}
	}

	if c.Spellcasting != nil && len(c.Spellcasting.SpellSlots) > 0 {
		fmt.Println("\nSpell slots:")
		for _, slot := range c.Spellcasting.SpellSlots {
			fmt.Printf("  Level %d: %d/%d available\n", slot.Level, slot.Max-slot.Used, slot.Max)
		}
	}

	if c.Spellcasting != nil && len(c.Spellcasting.KnownSpells) > 0 {
		fmt.Println("\nKnown spells:")
		for _, spell := range c.Spellcasting.KnownSpells {
			marker := " "
			if spell.Prepared {
				marker = "*"
			}
			fmt.Printf("  %s %-24s level %d\n", marker, spell.Name, spell.Level)
		}
	}
}

func gauge(r entities.Resource) string {
	if r.DisplayType == entities.DisplaySlots {
		return strings.Repeat("●", r.Current) + strings.Repeat("○", max(r.Max-r.Current, 0))
	}
	return fmt.Sprintf("%d/%d", r.Current, r.Max)
}

func printLevelUp(view levelup.View) {
	fmt.Printf("\nLevel up: %s %d  step %d/%d (%s)\n", view.ClassName, view.TargetLevel, view.Step+1, view.TotalSteps, view.Kind)

	switch view.Kind {
	case levelup.StepHitPoints:
		fmt.Printf("  Hit points gained: %d\n", view.HitPointGain)
	case levelup.StepChoice:
		if view.Choice != nil {
			fmt.Printf("  %s (choose %d)\n", view.Choice.Prompt, view.Choice.Choose)
			for _, option := range view.Choice.From {
				mark := " "
				for _, selected := range view.Selections {
					if selected == option.Name {
						mark = "x"
					}
				}
				fmt.Printf("   [%s] %s\n", mark, option.Name)
			}
		}
	case levelup.StepAbilityScoreImprovement:
		for ability, points := range view.Allocation {
			fmt.Printf("  %s +%d\n", ability, points)
		}
	}

	if view.Blocker != "" {
		fmt.Printf("  Blocked: %s\n", view.Blocker)
	}
}
