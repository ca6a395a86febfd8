package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-hud/internal/handlers/sheet/v1alpha1"
)

var setHPCmd = &cobra.Command{
	Use:   "set-hp [current]",
	Short: "Set current hit points",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		current, err := parseInt("current", args[0])
		if err != nil {
			return err
		}
		return callCharacter(func(ctx context.Context, client v1alpha1.SheetServiceClient) (*v1alpha1.CharacterResponse, error) {
			return client.SetHitPoints(ctx, &v1alpha1.SetHitPointsRequest{Current: current})
		})
	},
}

var adjustHPCmd = &cobra.Command{
	Use:   "adjust-hp [delta]",
	Short: "Heal (positive) or damage (negative)",
	Long: `Adjust hit points. Examples:

  adjust-hp -- -7
  adjust-hp 4`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		delta, err := parseInt("delta", args[0])
		if err != nil {
			return err
		}
		return callCharacter(func(ctx context.Context, client v1alpha1.SheetServiceClient) (*v1alpha1.CharacterResponse, error) {
			return client.AdjustHitPoints(ctx, &v1alpha1.AdjustHitPointsRequest{Delta: delta})
		})
	},
}

var setTempHPCmd = &cobra.Command{
	Use:   "set-temp-hp [temporary]",
	Short: "Set temporary hit points",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		temporary, err := parseInt("temporary", args[0])
		if err != nil {
			return err
		}
		return callCharacter(func(ctx context.Context, client v1alpha1.SheetServiceClient) (*v1alpha1.CharacterResponse, error) {
			return client.SetTemporaryHitPoints(ctx, &v1alpha1.SetTemporaryHitPointsRequest{Temporary: temporary})
		})
	},
}

var setResourceCmd = &cobra.Command{
	Use:   "set-resource [name] [current]",
	Short: "Set a resource's current value",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		current, err := parseInt("current", args[1])
		if err != nil {
			return err
		}
		return callCharacter(func(ctx context.Context, client v1alpha1.SheetServiceClient) (*v1alpha1.CharacterResponse, error) {
			return client.SetResource(ctx, &v1alpha1.SetResourceRequest{Name: args[0], Current: current})
		})
	},
}

var adjustResourceCmd = &cobra.Command{
	Use:   "adjust-resource [name] [delta]",
	Short: "Spend (negative) or regain (positive) a resource",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		delta, err := parseInt("delta", args[1])
		if err != nil {
			return err
		}
		return callCharacter(func(ctx context.Context, client v1alpha1.SheetServiceClient) (*v1alpha1.CharacterResponse, error) {
			return client.AdjustResource(ctx, &v1alpha1.AdjustResourceRequest{Name: args[0], Delta: delta})
		})
	},
}

var setSpellSlotCmd = &cobra.Command{
	Use:   "set-spell-slot [level] [used]",
	Short: "Set how many slots of a spell level are used",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		level, err := parseInt("level", args[0])
		if err != nil {
			return err
		}
		used, err := parseInt("used", args[1])
		if err != nil {
			return err
		}
		return callCharacter(func(ctx context.Context, client v1alpha1.SheetServiceClient) (*v1alpha1.CharacterResponse, error) {
			return client.SetSpellSlot(ctx, &v1alpha1.SetSpellSlotRequest{Level: level, Used: used})
		})
	},
}

var useSlotCmd = &cobra.Command{
	Use:   "use-slot [level]",
	Short: "Spend one spell slot of a level",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		level, err := parseInt("level", args[0])
		if err != nil {
			return err
		}
		return callCharacter(func(ctx context.Context, client v1alpha1.SheetServiceClient) (*v1alpha1.CharacterResponse, error) {
			return client.UseSpellSlot(ctx, &v1alpha1.UseSpellSlotRequest{Level: level})
		})
	},
}

var restoreSlotCmd = &cobra.Command{
	Use:   "restore-slot [level]",
	Short: "Regain one spent spell slot of a level",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		level, err := parseInt("level", args[0])
		if err != nil {
			return err
		}
		return callCharacter(func(ctx context.Context, client v1alpha1.SheetServiceClient) (*v1alpha1.CharacterResponse, error) {
			return client.RestoreSpellSlot(ctx, &v1alpha1.RestoreSpellSlotRequest{Level: level})
		})
	},
}

var togglePreparedCmd = &cobra.Command{
	Use:   "toggle-prepared [spell]",
	Short: "Prepare or unprepare a known spell",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return callCharacter(func(ctx context.Context, client v1alpha1.SheetServiceClient) (*v1alpha1.CharacterResponse, error) {
			return client.TogglePreparedSpell(ctx, &v1alpha1.TogglePreparedSpellRequest{Name: args[0]})
		})
	},
}

var restCmd = &cobra.Command{
	Use:       "rest [short|long]",
	Short:     "Take a short or long rest",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"short", "long"},
	RunE: func(_ *cobra.Command, args []string) error {
		return callCharacter(func(ctx context.Context, client v1alpha1.SheetServiceClient) (*v1alpha1.CharacterResponse, error) {
			return client.Rest(ctx, &v1alpha1.RestRequest{Kind: args[0]})
		})
	},
}

func parseInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number, got %q", name, value)
	}
	return n, nil
}
