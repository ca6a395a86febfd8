package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-hud/internal/handlers/sheet/v1alpha1"
)

var exportDir string

var getCharacterCmd = &cobra.Command{
	Use:   "get-character",
	Short: "Show the live character",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return callCharacter(func(ctx context.Context, client v1alpha1.SheetServiceClient) (*v1alpha1.CharacterResponse, error) {
			return client.GetCharacter(ctx, &v1alpha1.GetCharacterRequest{})
		})
	},
}

var loadCharacterCmd = &cobra.Command{
	Use:   "load-character",
	Short: "Restore the saved character",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return callCharacter(func(ctx context.Context, client v1alpha1.SheetServiceClient) (*v1alpha1.CharacterResponse, error) {
			return client.LoadCharacter(ctx, &v1alpha1.LoadCharacterRequest{})
		})
	},
}

var importCharacterCmd = &cobra.Command{
	Use:   "import-character [file]",
	Short: "Upload a character file (JSON or YAML)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		return callCharacter(func(ctx context.Context, client v1alpha1.SheetServiceClient) (*v1alpha1.CharacterResponse, error) {
			return client.ImportCharacter(ctx, &v1alpha1.ImportCharacterRequest{
				Filename: filepath.Base(args[0]),
				Data:     data,
			})
		})
	},
}

var exportCharacterCmd = &cobra.Command{
	Use:   "export-character",
	Short: "Write the live character to <name>.json",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createSheetClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.ExportCharacter(ctx, &v1alpha1.ExportCharacterRequest{})
		if err != nil {
			return fmt.Errorf("failed to export character: %w", err)
		}

		path := filepath.Join(exportDir, resp.Filename)
		if err := os.WriteFile(path, resp.Data, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Printf("Exported to %s (%d bytes)\n", path, len(resp.Data))
		return nil
	},
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently played characters",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := createSheetClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.ListRecentCharacters(ctx, &v1alpha1.ListRecentCharactersRequest{})
		if err != nil {
			return fmt.Errorf("failed to list recent characters: %w", err)
		}

		if len(resp.Characters) == 0 {
			fmt.Println("No recent characters")
			return nil
		}
		for _, recent := range resp.Characters {
			fmt.Printf("%-24s level %-2d %-12s %s  (%s)\n",
				recent.Name, recent.Level, recent.ClassName,
				recent.LastPlayed.Local().Format("2006-01-02 15:04"), recent.ID)
		}
		return nil
	},
}

func init() {
	exportCharacterCmd.Flags().StringVar(&exportDir, "dir", ".", "Directory to write the file to")
}

// callCharacter runs one call that returns the character and prints it
func callCharacter(call func(context.Context, v1alpha1.SheetServiceClient) (*v1alpha1.CharacterResponse, error)) error {
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

	printCharacter(resp)
	return nil
}
