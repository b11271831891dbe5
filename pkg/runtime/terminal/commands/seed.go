package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	registrationstore "github.com/race-tools/startlist/pkg/store/registration"
	"github.com/race-tools/startlist/pkg/store/sqlite"
)

type SeedCmd struct {
	dbPath string
}

func NewSeedCmd() *cobra.Command {
	sc := &SeedCmd{}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the database contents with demo data",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.dbPath, "db", "startlist.db", "Path to the SQLite database")

	return cmd
}

func (sc *SeedCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: sc.dbPath})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := registrationstore.Seed(ctx, db); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded demo data into %s\n", sc.dbPath)
	return nil
}
