package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/race-tools/startlist/pkg/runtime/terminal/export"
	"github.com/race-tools/startlist/pkg/services/registration"
)

type ReportCmd struct {
	dbPath   string
	reporter *export.Reporter
}

func NewReportCmd(reporter *export.Reporter) *cobra.Command {
	rc := &ReportCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report <competition-id>",
		Short: "Print the registration report for a competition",
		Args:  cobra.ExactArgs(1),
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.dbPath, "db", "startlist.db", "Path to the SQLite database")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	competitionID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("competition id must be an integer, got %q", args[0])
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	store, db, err := openStore(rc.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	service := registration.NewReporter(store)
	report, err := service.GetRegistrationReport(ctx, competitionID)
	if errors.Is(err, registration.ErrCompetitionNotFound) {
		return fmt.Errorf("no competition with id %d", competitionID)
	}
	if err != nil {
		return fmt.Errorf("failed to build registration report: %w", err)
	}

	return rc.reporter.HandleRegistrationReport(report)
}
