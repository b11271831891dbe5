package registration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/race-tools/startlist/pkg/models/store"
)

// Store loads the flat, ordered relations a registration report is built from.
// Every method issues at most one query, so a full report costs a fixed number
// of round trips regardless of how many races or participants it covers.
//
// ListRaces and ListParticipants share the (from_age, race name) sort prefix.
// The report service depends on that: all participant rows of one race must be
// contiguous and the runs must appear in race order.
type Store interface {
	GetCompetition(ctx context.Context, id int64) (*store.Competition, error)
	ListCompetitions(ctx context.Context) ([]store.Competition, error)
	ListRaces(ctx context.Context, competitionID int64) ([]store.Race, error)
	ListSpecialCategories(ctx context.Context, raceIDs []int64) ([]store.SpecialCategory, error)
	ListParticipants(ctx context.Context, competitionID int64) ([]store.Participant, error)
	ListMemberships(ctx context.Context, participantIDs []int64) ([]store.Membership, error)
}

type registrationStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &registrationStore{db: db}, nil
}

// GetCompetition returns nil without an error when no competition matches id;
// a missing competition is an expected outcome, not a data-access fault.
func (s *registrationStore) GetCompetition(ctx context.Context, id int64) (*store.Competition, error) {
	query := `
		SELECT id, name, location, held_on
		FROM competitions
		WHERE id = ?
	`
	var (
		c      store.Competition
		heldOn int64
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Location, &heldOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query competition: %w", err)
	}
	c.HeldOn = fromMillis(heldOn)
	return &c, nil
}

func (s *registrationStore) ListCompetitions(ctx context.Context) ([]store.Competition, error) {
	query := `
		SELECT id, name, location, held_on
		FROM competitions
		ORDER BY held_on DESC, name
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query competitions: %w", err)
	}
	defer rows.Close()

	competitions := make([]store.Competition, 0)
	for rows.Next() {
		var (
			c      store.Competition
			heldOn int64
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &heldOn); err != nil {
			return nil, fmt.Errorf("scan competition: %w", err)
		}
		c.HeldOn = fromMillis(heldOn)
		competitions = append(competitions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate competitions: %w", err)
	}
	return competitions, nil
}

// ListRaces returns the competition's races ordered by the minimum age of
// their primary category, then by name.
func (s *registrationStore) ListRaces(ctx context.Context, competitionID int64) ([]store.Race, error) {
	query := `
		SELECT races.id, races.name, MIN(categories.from_age) AS from_age
		FROM races
		JOIN starts ON starts.race_id = races.id
		JOIN categories ON categories.start_id = starts.id
		WHERE races.competition_id = ?
		GROUP BY races.id, races.name
		ORDER BY from_age, races.name
	`
	rows, err := s.db.QueryContext(ctx, query, competitionID)
	if err != nil {
		return nil, fmt.Errorf("query races: %w", err)
	}
	defer rows.Close()

	races := make([]store.Race, 0)
	for rows.Next() {
		var r store.Race
		if err := rows.Scan(&r.ID, &r.Name, &r.FromAge); err != nil {
			return nil, fmt.Errorf("scan race: %w", err)
		}
		races = append(races, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate races: %w", err)
	}
	return races, nil
}

func (s *registrationStore) ListSpecialCategories(ctx context.Context, raceIDs []int64) ([]store.SpecialCategory, error) {
	if len(raceIDs) == 0 {
		return []store.SpecialCategory{}, nil
	}

	query := fmt.Sprintf(`
		SELECT id, race_id, label
		FROM special_categories
		WHERE race_id IN (%s)
		ORDER BY race_id, id
	`, placeholders(len(raceIDs)))

	rows, err := s.db.QueryContext(ctx, query, int64Args(raceIDs)...)
	if err != nil {
		return nil, fmt.Errorf("query special categories: %w", err)
	}
	defer rows.Close()

	categories := make([]store.SpecialCategory, 0)
	for rows.Next() {
		var sc store.SpecialCategory
		if err := rows.Scan(&sc.ID, &sc.RaceID, &sc.Label); err != nil {
			return nil, fmt.Errorf("scan special category: %w", err)
		}
		categories = append(categories, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate special categories: %w", err)
	}
	return categories, nil
}

// ListParticipants returns denormalized registration rows ordered by
// (from_age, race name, birth year descending, first name, last name). The
// leading keys match ListRaces, which keeps each race's rows contiguous.
func (s *registrationStore) ListParticipants(ctx context.Context, competitionID int64) ([]store.Participant, error) {
	query := `
		SELECT participants.id, participants.first_name, participants.last_name,
			participants.club, participants.birth_year,
			starts.time, categories.label, races.name
		FROM participants
		JOIN categories ON categories.id = participants.category_id
		JOIN starts ON starts.id = categories.start_id
		JOIN races ON races.id = starts.race_id
		WHERE races.competition_id = ?
		ORDER BY categories.from_age, races.name,
			participants.birth_year DESC,
			participants.first_name, participants.last_name
	`
	rows, err := s.db.QueryContext(ctx, query, competitionID)
	if err != nil {
		return nil, fmt.Errorf("query participants: %w", err)
	}
	defer rows.Close()

	participants := make([]store.Participant, 0)
	for rows.Next() {
		var (
			p         store.Participant
			club      sql.NullString
			startTime int64
		)
		err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &club, &p.BirthYear,
			&startTime, &p.Class, &p.RaceName)
		if err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		p.Club = club.String
		p.StartTime = fromMillis(startTime)
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate participants: %w", err)
	}
	return participants, nil
}

func (s *registrationStore) ListMemberships(ctx context.Context, participantIDs []int64) ([]store.Membership, error) {
	if len(participantIDs) == 0 {
		return []store.Membership{}, nil
	}

	query := fmt.Sprintf(`
		SELECT participant_id, special_category_id
		FROM special_category_participants
		WHERE participant_id IN (%s)
		ORDER BY participant_id, special_category_id
	`, placeholders(len(participantIDs)))

	rows, err := s.db.QueryContext(ctx, query, int64Args(participantIDs)...)
	if err != nil {
		return nil, fmt.Errorf("query memberships: %w", err)
	}
	defer rows.Close()

	memberships := make([]store.Membership, 0)
	for rows.Next() {
		var m store.Membership
		if err := rows.Scan(&m.ParticipantID, &m.SpecialCategoryID); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate memberships: %w", err)
	}
	return memberships, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func int64Args(ids []int64) []interface{} {
	args := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	return args
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
