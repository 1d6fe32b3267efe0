package main

import (
	"fmt"

	"github.com/Domenick1991/traveldesk/internal/database"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo data set",
	Long:  "Applies pending migrations, then loads the demo travelers, catalog and reservations.",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	if _, err := database.Migrate(ctx, pool); err != nil {
		return err
	}
	if err := database.Seed(ctx, pool); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "demo data loaded")
	return nil
}
