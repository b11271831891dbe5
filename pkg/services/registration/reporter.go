package registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/race-tools/startlist/pkg/adapters"
	"github.com/race-tools/startlist/pkg/models/domain"
	"github.com/race-tools/startlist/pkg/models/store"
	registrationstore "github.com/race-tools/startlist/pkg/store/registration"
)

// ErrCompetitionNotFound is returned when the requested competition id has no
// matching row. Callers distinguish it from data-access faults with errors.Is.
var ErrCompetitionNotFound = errors.New("competition not found")

// Reporter builds the registration report for one competition: participants
// grouped by race, each annotated with its special category flags.
type Reporter interface {
	GetRegistrationReport(ctx context.Context, competitionID int64) (*domain.RegistrationReport, error)
}

type reporter struct {
	store registrationstore.Store
}

func NewReporter(store registrationstore.Store) Reporter {
	return &reporter{store: store}
}

// GetRegistrationReport loads the five flat relations with a fixed number of
// queries, then reconstructs the nested report in memory: a sort-merge pass
// buckets participants per race, and per-participant membership sets turn into
// boolean vectors aligned to each race's special category list.
func (r *reporter) GetRegistrationReport(ctx context.Context, competitionID int64) (*domain.RegistrationReport, error) {
	competition, err := r.store.GetCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("load competition: %w", err)
	}
	if competition == nil {
		return nil, fmt.Errorf("competition %d: %w", competitionID, ErrCompetitionNotFound)
	}

	races, err := r.store.ListRaces(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("load races: %w", err)
	}

	raceIDs := make([]int64, 0, len(races))
	for _, race := range races {
		raceIDs = append(raceIDs, race.ID)
	}
	specialCategories, err := r.store.ListSpecialCategories(ctx, raceIDs)
	if err != nil {
		return nil, fmt.Errorf("load special categories: %w", err)
	}

	participants, err := r.store.ListParticipants(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("load participants: %w", err)
	}

	participantIDs := make([]int64, 0, len(participants))
	for _, p := range participants {
		participantIDs = append(participantIDs, p.ID)
	}
	memberships, err := r.store.ListMemberships(ctx, participantIDs)
	if err != nil {
		return nil, fmt.Errorf("load memberships: %w", err)
	}

	groups, err := groupParticipants(races, participants)
	if err != nil {
		return nil, fmt.Errorf("group participants: %w", err)
	}

	categoriesByRace := make(map[int64][]store.SpecialCategory, len(races))
	for _, sc := range specialCategories {
		categoriesByRace[sc.RaceID] = append(categoriesByRace[sc.RaceID], sc)
	}
	sets := membershipSets(memberships)

	raceGroups := make([]domain.RaceGroup, 0, len(races))
	for i, race := range races {
		raceCategories := categoriesByRace[race.ID]

		entries := make([]domain.ParticipantEntry, 0, len(groups[i]))
		for _, p := range groups[i] {
			entry := adapters.MapStoreParticipantToDomainEntry(p)
			entry.SpecialCategoryFlags = resolveFlags(raceCategories, sets[p.ID])
			entries = append(entries, entry)
		}

		raceGroups = append(raceGroups, domain.RaceGroup{
			RaceName:          race.Name,
			SpecialCategories: adapters.MapStoreSpecialCategoriesToDomain(raceCategories),
			Participants:      entries,
		})
	}

	return &domain.RegistrationReport{
		CompetitionInfo: adapters.MapStoreCompetitionToDomain(*competition),
		RaceGroups:      raceGroups,
	}, nil
}
