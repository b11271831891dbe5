package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const CompetitionsSchema = `
	CREATE TABLE IF NOT EXISTS competitions (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT NOT NULL,
		held_on INTEGER NOT NULL
	);
`

const RacesSchema = `
	CREATE TABLE IF NOT EXISTS races (
		id INTEGER PRIMARY KEY,
		competition_id INTEGER NOT NULL REFERENCES competitions (id),
		name TEXT NOT NULL
	);
`

const StartsSchema = `
	CREATE TABLE IF NOT EXISTS starts (
		id INTEGER PRIMARY KEY,
		race_id INTEGER NOT NULL REFERENCES races (id),
		time INTEGER NOT NULL
	);
`

const CategoriesSchema = `
	CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY,
		start_id INTEGER NOT NULL REFERENCES starts (id),
		label TEXT NOT NULL,
		from_age INTEGER NOT NULL
	);
`

const ParticipantsSchema = `
	CREATE TABLE IF NOT EXISTS participants (
		id INTEGER PRIMARY KEY,
		category_id INTEGER NOT NULL REFERENCES categories (id),
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		club TEXT,
		birth_year INTEGER NOT NULL
	);
`

const SpecialCategoriesSchema = `
	CREATE TABLE IF NOT EXISTS special_categories (
		id INTEGER PRIMARY KEY,
		race_id INTEGER NOT NULL REFERENCES races (id),
		label TEXT NOT NULL
	);
`

const SpecialCategoryParticipantsSchema = `
	CREATE TABLE IF NOT EXISTS special_category_participants (
		participant_id INTEGER NOT NULL REFERENCES participants (id),
		special_category_id INTEGER NOT NULL REFERENCES special_categories (id),
		PRIMARY KEY (participant_id, special_category_id)
	);
`

var bootQueries = []string{
	CompetitionsSchema,
	RacesSchema,
	StartsSchema,
	CategoriesSchema,
	ParticipantsSchema,
	SpecialCategoriesSchema,
	SpecialCategoryParticipantsSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens (or creates) the SQLite database at settings.DbPath and ensures
// the schema exists. Use ":memory:" for an ephemeral database.
func NewDB(settings Settings) (*sql.DB, error) {
	if settings.DbPath == "" {
		return nil, fmt.Errorf("database path is required")
	}

	dsn := settings.DbPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if settings.DbPath == ":memory:" {
		// every pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}

	return db, nil
}
