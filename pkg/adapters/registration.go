package adapters

import (
	"github.com/race-tools/startlist/pkg/models/api"
	"github.com/race-tools/startlist/pkg/models/domain"
	"github.com/race-tools/startlist/pkg/models/store"
)

func MapStoreCompetitionToDomain(c store.Competition) domain.Competition {
	return domain.Competition{
		ID:       c.ID,
		Name:     c.Name,
		Location: c.Location,
		HeldOn:   c.HeldOn,
	}
}

// MapStoreParticipantToDomainEntry leaves SpecialCategoryFlags unset; the
// report service fills it against the owning race's category list.
func MapStoreParticipantToDomainEntry(p store.Participant) domain.ParticipantEntry {
	return domain.ParticipantEntry{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Club:      p.Club,
		BirthYear: p.BirthYear,
		StartTime: p.StartTime,
		Class:     p.Class,
	}
}

func MapStoreSpecialCategoriesToDomain(categories []store.SpecialCategory) []domain.SpecialCategory {
	mapped := make([]domain.SpecialCategory, 0, len(categories))
	for _, c := range categories {
		mapped = append(mapped, domain.SpecialCategory{ID: c.ID, Label: c.Label})
	}
	return mapped
}

func MapCompetitionDomainToApi(c domain.Competition) api.Competition {
	return api.Competition{
		Id:       c.ID,
		Name:     c.Name,
		Location: c.Location,
		HeldOn:   c.HeldOn,
	}
}

func MapRegistrationReportDomainToApi(report domain.RegistrationReport) api.RegistrationReport {
	mapped := api.RegistrationReport{
		CompetitionInfo: MapCompetitionDomainToApi(report.CompetitionInfo),
		RaceGroups:      make([]api.RaceGroup, 0, len(report.RaceGroups)),
	}

	for _, group := range report.RaceGroups {
		categories := make([]api.SpecialCategory, 0, len(group.SpecialCategories))
		for _, c := range group.SpecialCategories {
			categories = append(categories, api.SpecialCategory{Id: c.ID, Label: c.Label})
		}

		participants := make([]api.Participant, 0, len(group.Participants))
		for _, p := range group.Participants {
			participants = append(participants, api.Participant{
				FirstName:            p.FirstName,
				LastName:             p.LastName,
				Club:                 p.Club,
				BirthYear:            p.BirthYear,
				StartTime:            p.StartTime,
				Class:                p.Class,
				SpecialCategoryFlags: p.SpecialCategoryFlags,
			})
		}

		mapped.RaceGroups = append(mapped.RaceGroups, api.RaceGroup{
			RaceName:          group.RaceName,
			SpecialCategories: categories,
			Participants:      participants,
		})
	}

	return mapped
}
