package registration

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Seed replaces the database contents with a small demo competition: two races
// with staggered starts, three special categories and five registered
// participants. Intended for local development and the CLI `seed` command.
func Seed(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	wipe := []string{
		"DELETE FROM special_category_participants",
		"DELETE FROM special_categories",
		"DELETE FROM participants",
		"DELETE FROM categories",
		"DELETE FROM starts",
		"DELETE FROM races",
		"DELETE FROM competitions",
	}
	for _, stmt := range wipe {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("wipe tables: %w", err)
		}
	}

	heldOn := time.Date(2026, time.May, 16, 0, 0, 0, 0, time.UTC)
	morning := time.Date(2026, time.May, 16, 9, 0, 0, 0, time.UTC)

	type insert struct {
		stmt string
		args [][]interface{}
	}

	inserts := []insert{
		{
			stmt: "INSERT INTO competitions (id, name, location, held_on) VALUES (?, ?, ?, ?)",
			args: [][]interface{}{
				{1, "Riverside Spring Run", "Riverside Park", toMillis(heldOn)},
			},
		},
		{
			stmt: "INSERT INTO races (id, competition_id, name) VALUES (?, ?, ?)",
			args: [][]interface{}{
				{1, 1, "5km"},
				{2, 1, "10km"},
			},
		},
		{
			stmt: "INSERT INTO starts (id, race_id, time) VALUES (?, ?, ?)",
			args: [][]interface{}{
				{1, 1, toMillis(morning)},
				{2, 2, toMillis(morning.Add(90 * time.Minute))},
			},
		},
		{
			stmt: "INSERT INTO categories (id, start_id, label, from_age) VALUES (?, ?, ?, ?)",
			args: [][]interface{}{
				{1, 1, "Youth", 10},
				{2, 1, "Open 5km", 16},
				{3, 2, "Open 10km", 18},
			},
		},
		{
			stmt: "INSERT INTO participants (id, category_id, first_name, last_name, club, birth_year) VALUES (?, ?, ?, ?, ?, ?)",
			args: [][]interface{}{
				{1, 1, "Mara", "Lindgren", "Riverside Striders", 2014},
				{2, 1, "Jonas", "Pekkanen", nil, 2013},
				{3, 2, "Ida", "Voss", "Northside RC", 1998},
				{4, 3, "Samuel", "Okafor", "Northside RC", 1990},
				{5, 3, "Lena", "Madsen", nil, 1979},
			},
		},
		{
			stmt: "INSERT INTO special_categories (id, race_id, label) VALUES (?, ?, ?)",
			args: [][]interface{}{
				{1, 1, "local resident"},
				{2, 1, "school team"},
				{3, 2, "veteran"},
			},
		},
		{
			stmt: "INSERT INTO special_category_participants (participant_id, special_category_id) VALUES (?, ?)",
			args: [][]interface{}{
				{1, 1},
				{1, 2},
				{2, 2},
				{5, 3},
			},
		},
	}

	for _, ins := range inserts {
		for _, args := range ins.args {
			if _, err := tx.ExecContext(ctx, ins.stmt, args...); err != nil {
				return fmt.Errorf("seed insert: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}
