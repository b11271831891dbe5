package registration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/race-tools/startlist/pkg/models/store"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) GetCompetition(ctx context.Context, id int64) (*store.Competition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Competition), args.Error(1)
}

func (m *mockStore) ListCompetitions(ctx context.Context) ([]store.Competition, error) {
	args := m.Called(ctx)
	return args.Get(0).([]store.Competition), args.Error(1)
}

func (m *mockStore) ListRaces(ctx context.Context, competitionID int64) ([]store.Race, error) {
	args := m.Called(ctx, competitionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Race), args.Error(1)
}

func (m *mockStore) ListSpecialCategories(ctx context.Context, raceIDs []int64) ([]store.SpecialCategory, error) {
	args := m.Called(ctx, raceIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.SpecialCategory), args.Error(1)
}

func (m *mockStore) ListParticipants(ctx context.Context, competitionID int64) ([]store.Participant, error) {
	args := m.Called(ctx, competitionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Participant), args.Error(1)
}

func (m *mockStore) ListMemberships(ctx context.Context, participantIDs []int64) ([]store.Membership, error) {
	args := m.Called(ctx, participantIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Membership), args.Error(1)
}

func fixtureCompetition() *store.Competition {
	return &store.Competition{
		ID:       1,
		Name:     "Riverside Spring Run",
		Location: "Riverside Park",
		HeldOn:   time.Date(2026, 5, 16, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetRegistrationReport(t *testing.T) {
	ctx := context.Background()

	races := []store.Race{
		{ID: 1, Name: "5km", FromAge: 10},
		{ID: 2, Name: "10km", FromAge: 18},
	}
	specialCategories := []store.SpecialCategory{
		{ID: 10, RaceID: 1, Label: "local resident"},
		{ID: 11, RaceID: 1, Label: "school team"},
		{ID: 12, RaceID: 2, Label: "veteran"},
	}
	participants := []store.Participant{
		{ID: 1, FirstName: "Mara", LastName: "Lindgren", BirthYear: 2014, Class: "Youth", RaceName: "5km"},
		{ID: 2, FirstName: "Jonas", LastName: "Pekkanen", BirthYear: 2013, Class: "Youth", RaceName: "5km"},
		{ID: 3, FirstName: "Ida", LastName: "Voss", BirthYear: 1998, Class: "Open 5km", RaceName: "5km"},
		{ID: 4, FirstName: "Samuel", LastName: "Okafor", BirthYear: 1990, Class: "Open 10km", RaceName: "10km"},
		{ID: 5, FirstName: "Lena", LastName: "Madsen", BirthYear: 1979, Class: "Open 10km", RaceName: "10km"},
	}
	memberships := []store.Membership{
		{ParticipantID: 1, SpecialCategoryID: 10},
		{ParticipantID: 1, SpecialCategoryID: 11},
		{ParticipantID: 2, SpecialCategoryID: 11},
		{ParticipantID: 5, SpecialCategoryID: 12},
	}

	s := new(mockStore)
	s.On("GetCompetition", mock.Anything, int64(1)).Return(fixtureCompetition(), nil)
	s.On("ListRaces", mock.Anything, int64(1)).Return(races, nil)
	s.On("ListSpecialCategories", mock.Anything, []int64{1, 2}).Return(specialCategories, nil)
	s.On("ListParticipants", mock.Anything, int64(1)).Return(participants, nil)
	s.On("ListMemberships", mock.Anything, []int64{1, 2, 3, 4, 5}).Return(memberships, nil)

	report, err := NewReporter(s).GetRegistrationReport(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, "Riverside Spring Run", report.CompetitionInfo.Name)
	require.Len(t, report.RaceGroups, 2)

	// race group order matches the race loader's order
	first, second := report.RaceGroups[0], report.RaceGroups[1]
	assert.Equal(t, "5km", first.RaceName)
	assert.Equal(t, "10km", second.RaceName)

	require.Len(t, first.Participants, 3)
	require.Len(t, second.Participants, 2)
	assert.Len(t, first.SpecialCategories, 2)
	assert.Len(t, second.SpecialCategories, 1)

	for _, p := range first.Participants {
		assert.Len(t, p.SpecialCategoryFlags, 2)
	}
	for _, p := range second.Participants {
		assert.Len(t, p.SpecialCategoryFlags, 1)
	}

	// Mara holds every 5km category, Ida none, Lena is the only veteran
	assert.Equal(t, []bool{true, true}, first.Participants[0].SpecialCategoryFlags)
	assert.Equal(t, []bool{false, true}, first.Participants[1].SpecialCategoryFlags)
	assert.Equal(t, []bool{false, false}, first.Participants[2].SpecialCategoryFlags)
	assert.Equal(t, []bool{false}, second.Participants[0].SpecialCategoryFlags)
	assert.Equal(t, []bool{true}, second.Participants[1].SpecialCategoryFlags)

	s.AssertExpectations(t)
}

func TestGetRegistrationReport_NotFound(t *testing.T) {
	s := new(mockStore)
	s.On("GetCompetition", mock.Anything, int64(42)).Return(nil, nil)

	report, err := NewReporter(s).GetRegistrationReport(context.Background(), 42)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrCompetitionNotFound)
	s.AssertExpectations(t)
}

func TestGetRegistrationReport_ZeroRaces(t *testing.T) {
	s := new(mockStore)
	s.On("GetCompetition", mock.Anything, int64(1)).Return(fixtureCompetition(), nil)
	s.On("ListRaces", mock.Anything, int64(1)).Return([]store.Race{}, nil)
	s.On("ListSpecialCategories", mock.Anything, []int64{}).Return([]store.SpecialCategory{}, nil)
	s.On("ListParticipants", mock.Anything, int64(1)).Return([]store.Participant{}, nil)
	s.On("ListMemberships", mock.Anything, []int64{}).Return([]store.Membership{}, nil)

	report, err := NewReporter(s).GetRegistrationReport(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, report.RaceGroups)
	s.AssertExpectations(t)
}

func TestGetRegistrationReport_StoreFailure(t *testing.T) {
	s := new(mockStore)
	s.On("GetCompetition", mock.Anything, int64(1)).Return(fixtureCompetition(), nil)
	s.On("ListRaces", mock.Anything, int64(1)).Return(nil, fmt.Errorf("connection reset"))

	report, err := NewReporter(s).GetRegistrationReport(context.Background(), 1)

	assert.Nil(t, report)
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection reset")
	s.AssertExpectations(t)
}

func TestGetRegistrationReport_OrderViolation(t *testing.T) {
	races := []store.Race{
		{ID: 1, Name: "5km", FromAge: 10},
		{ID: 2, Name: "5mi", FromAge: 10},
	}
	participants := []store.Participant{
		{ID: 1, RaceName: "5km"},
		{ID: 2, RaceName: "5mi"},
		{ID: 3, RaceName: "5km"},
	}

	s := new(mockStore)
	s.On("GetCompetition", mock.Anything, int64(1)).Return(fixtureCompetition(), nil)
	s.On("ListRaces", mock.Anything, int64(1)).Return(races, nil)
	s.On("ListSpecialCategories", mock.Anything, []int64{1, 2}).Return([]store.SpecialCategory{}, nil)
	s.On("ListParticipants", mock.Anything, int64(1)).Return(participants, nil)
	s.On("ListMemberships", mock.Anything, []int64{1, 2, 3}).Return([]store.Membership{}, nil)

	report, err := NewReporter(s).GetRegistrationReport(context.Background(), 1)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrOrderViolation)
	s.AssertExpectations(t)
}
