package commands

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/race-tools/startlist/pkg/runtime/terminal/export"
	"github.com/race-tools/startlist/pkg/services/competition"
	registrationstore "github.com/race-tools/startlist/pkg/store/registration"
	"github.com/race-tools/startlist/pkg/store/sqlite"
)

const commandTimeout = 30 * time.Second

type CompetitionsCmd struct {
	dbPath   string
	reporter *export.Reporter
}

func NewCompetitionsCmd(reporter *export.Reporter) *cobra.Command {
	cc := &CompetitionsCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "competitions",
		Short: "List all competitions",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.dbPath, "db", "startlist.db", "Path to the SQLite database")

	return cmd
}

func (cc *CompetitionsCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	store, db, err := openStore(cc.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	explorer := competition.NewExplorer(store)
	competitions, err := explorer.ListCompetitions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list competitions: %w", err)
	}

	return cc.reporter.HandleCompetitions(competitions)
}

func openStore(dbPath string) (registrationstore.Store, *sql.DB, error) {
	db, err := sqlite.NewDB(sqlite.Settings{DbPath: dbPath})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	store, err := registrationstore.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to create store: %w", err)
	}
	return store, db, nil
}
