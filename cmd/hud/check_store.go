package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-hud/internal/config"
	"github.com/KirkDiggler/rpg-hud/internal/orchestrators/storecheck"
)

var (
	checkStoreDelete bool
	checkStoreYes    bool
)

var checkStoreCmd = &cobra.Command{
	Use:   "check-store",
	Short: "Find saved documents the sheet can no longer read",
	Long: `Scan the configured store (HUD_STORAGE) for a saved character, recent
list or class definitions that fail to decode. With --delete the broken
entries are removed after confirmation.`,
	Args: cobra.NoArgs,
	RunE: runCheckStore,
}

func init() {
	checkStoreCmd.Flags().BoolVar(&checkStoreDelete, "delete", false, "Delete unreadable documents")
	checkStoreCmd.Flags().BoolVar(&checkStoreYes, "yes", false, "Do not ask before deleting")
}

func runCheckStore(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Storage, err)
	}
	defer closeStore()

	checker, err := storecheck.New(&storecheck.Config{Repo: repo})
	if err != nil {
		return err
	}

	fmt.Printf("Scanning %s store...\n", cfg.Storage)
	problems, err := checker.Scan(ctx)
	if err != nil {
		return err
	}

	if len(problems) == 0 {
		fmt.Println("No unreadable documents found")
		return nil
	}

	fmt.Printf("\nFound %d unreadable documents:\n", len(problems))
	for _, p := range problems {
		fmt.Printf("  ✗ %s: %s\n", p.Key, p.Reason)
	}

	if !checkStoreDelete {
		fmt.Println("\nRun again with --delete to remove them")
		return nil
	}

	if !checkStoreYes {
		fmt.Print("\nDelete these documents? (yes/no): ")
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Println("Aborted - no changes made")
			return nil
		}
	}

	removed, err := checker.Remove(ctx, problems)
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %d documents\n", removed)
	return nil
}
