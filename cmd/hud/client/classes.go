package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-hud/internal/handlers/sheet/v1alpha1"
)

var importClassCmd = &cobra.Command{
	Use:   "import-class [file]",
	Short: "Upload a class definition file (JSON or YAML)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		return callClass(func(ctx context.Context, client v1alpha1.SheetServiceClient) (*v1alpha1.ClassDefinitionResponse, error) {
			return client.ImportClassDefinition(ctx, &v1alpha1.ImportClassDefinitionRequest{
				Filename: filepath.Base(args[0]),
				Data:     data,
			})
		})
	},
}

var importSRDClassCmd = &cobra.Command{
	Use:   "import-srd-class [key]",
	Short: "Build a class definition from the D&D 5e SRD",
	Long: `Fetch a class from the D&D 5e API and store it. Examples:

  import-srd-class fighter
  import-srd-class wizard`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return callClass(func(ctx context.Context, client v1alpha1.SheetServiceClient) (*v1alpha1.ClassDefinitionResponse, error) {
			return client.ImportSRDClass(ctx, &v1alpha1.ImportSRDClassRequest{Key: args[0]})
		})
	},
}

func callClass(call func(context.Context, v1alpha1.SheetServiceClient) (*v1alpha1.ClassDefinitionResponse, error)) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := call(ctx, client)
	if err != nil {
		return fmt.Errorf("failed to import class: %w", err)
	}

	definition := resp.ClassDefinition
	fmt.Printf("Stored %s (d%d, %d levels) as %s\n", definition.Name, definition.HitDie, len(definition.Levels), resp.Key)
	return nil
}
