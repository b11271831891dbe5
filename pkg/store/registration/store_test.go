package registration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/race-tools/startlist/pkg/models/store"
	"github.com/race-tools/startlist/pkg/store/sqlite"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := sqlite.NewDB(sqlite.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	require.NoError(t, Seed(context.Background(), db))

	store, err := NewStore(db)
	require.NoError(t, err)

	return &fixture{db: db, store: store}
}

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}

func TestGetCompetition(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	t.Run("existing competition", func(t *testing.T) {
		c, err := f.store.GetCompetition(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "Riverside Spring Run", c.Name)
		assert.Equal(t, "Riverside Park", c.Location)
		assert.Equal(t, time.Date(2026, 5, 16, 0, 0, 0, 0, time.UTC), c.HeldOn)
	})

	t.Run("unknown id returns nil without error", func(t *testing.T) {
		c, err := f.store.GetCompetition(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, c)
	})
}

func TestListCompetitions(t *testing.T) {
	f := setupFixture(t)

	competitions, err := f.store.ListCompetitions(context.Background())
	require.NoError(t, err)
	require.Len(t, competitions, 1)
	assert.Equal(t, int64(1), competitions[0].ID)
}

func TestListRaces(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	t.Run("ordered by from_age then name", func(t *testing.T) {
		races, err := f.store.ListRaces(ctx, 1)
		require.NoError(t, err)
		require.Len(t, races, 2)

		assert.Equal(t, "5km", races[0].Name)
		assert.Equal(t, 10, races[0].FromAge)
		assert.Equal(t, "10km", races[1].Name)
		assert.Equal(t, 18, races[1].FromAge)
	})

	t.Run("equal from_age breaks ties alphabetically", func(t *testing.T) {
		_, err := f.db.ExecContext(ctx, "INSERT INTO races (id, competition_id, name) VALUES (3, 1, '5mi')")
		require.NoError(t, err)
		_, err = f.db.ExecContext(ctx, "INSERT INTO starts (id, race_id, time) VALUES (3, 3, 0)")
		require.NoError(t, err)
		_, err = f.db.ExecContext(ctx, "INSERT INTO categories (id, start_id, label, from_age) VALUES (4, 3, 'Youth 5mi', 10)")
		require.NoError(t, err)

		races, err := f.store.ListRaces(ctx, 1)
		require.NoError(t, err)
		require.Len(t, races, 3)

		assert.Equal(t, "5km", races[0].Name)
		assert.Equal(t, "5mi", races[1].Name)
		assert.Equal(t, "10km", races[2].Name)
	})

	t.Run("unknown competition yields no races", func(t *testing.T) {
		races, err := f.store.ListRaces(ctx, 999)
		require.NoError(t, err)
		assert.Empty(t, races)
	})
}

func TestListSpecialCategories(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	t.Run("contiguous run per race", func(t *testing.T) {
		categories, err := f.store.ListSpecialCategories(ctx, []int64{1, 2})
		require.NoError(t, err)
		require.Len(t, categories, 3)

		assert.Equal(t, int64(1), categories[0].RaceID)
		assert.Equal(t, "local resident", categories[0].Label)
		assert.Equal(t, int64(1), categories[1].RaceID)
		assert.Equal(t, "school team", categories[1].Label)
		assert.Equal(t, int64(2), categories[2].RaceID)
		assert.Equal(t, "veteran", categories[2].Label)
	})

	t.Run("empty id list issues no query", func(t *testing.T) {
		categories, err := f.store.ListSpecialCategories(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, categories)
	})
}

func TestListParticipants(t *testing.T) {
	f := setupFixture(t)

	participants, err := f.store.ListParticipants(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, participants, 5)

	// (from_age, race name, birth_year desc, first, last)
	lastNames := make([]string, 0, len(participants))
	for _, p := range participants {
		lastNames = append(lastNames, p.LastName)
	}
	assert.Equal(t, []string{"Lindgren", "Pekkanen", "Voss", "Okafor", "Madsen"}, lastNames)

	assert.Equal(t, "5km", participants[0].RaceName)
	assert.Equal(t, "Youth", participants[0].Class)
	assert.Equal(t, "Riverside Striders", participants[0].Club)
	assert.Equal(t, time.Date(2026, 5, 16, 9, 0, 0, 0, time.UTC), participants[0].StartTime)

	// nullable club scans as empty string
	assert.Equal(t, "", participants[1].Club)

	// every race's rows are contiguous
	assert.Equal(t, []string{"5km", "5km", "5km", "10km", "10km"}, raceNames(participants))
}

func TestListMemberships(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	t.Run("keyed by participant", func(t *testing.T) {
		memberships, err := f.store.ListMemberships(ctx, []int64{1, 2, 3, 4, 5})
		require.NoError(t, err)
		require.Len(t, memberships, 4)

		assert.Equal(t, int64(1), memberships[0].ParticipantID)
		assert.Equal(t, int64(1), memberships[0].SpecialCategoryID)
		assert.Equal(t, int64(5), memberships[3].ParticipantID)
		assert.Equal(t, int64(3), memberships[3].SpecialCategoryID)
	})

	t.Run("empty id list issues no query", func(t *testing.T) {
		memberships, err := f.store.ListMemberships(ctx, []int64{})
		require.NoError(t, err)
		assert.Empty(t, memberships)
	})
}

func TestListRaces_QueryFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT races.id").WillReturnError(sql.ErrConnDone)

	store, err := NewStore(db)
	require.NoError(t, err)

	races, err := store.ListRaces(context.Background(), 1)
	assert.Nil(t, races)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func raceNames(participants []store.Participant) []string {
	names := make([]string, 0, len(participants))
	for _, p := range participants {
		names = append(names, p.RaceName)
	}
	return names
}
