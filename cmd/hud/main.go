// Package main is the entry point for the hud server and its test client
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-hud/cmd/hud/client"
)

var rootCmd = &cobra.Command{
	Use:   "hud",
	Short: "D&D character sheet HUD",
	Long:  `hud keeps one live character sheet: hit points, resources, spell slots and a level-up wizard, served over gRPC.`,
}

func main() {
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(checkStoreCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
