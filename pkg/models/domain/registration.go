package domain

import "time"

type Competition struct {
	ID       int64
	Name     string
	Location string
	HeldOn   time.Time
}

type SpecialCategory struct {
	ID    int64
	Label string
}

// ParticipantEntry is one registration row annotated with its special category
// flags. SpecialCategoryFlags has the same length and order as the owning race
// group's SpecialCategories.
type ParticipantEntry struct {
	FirstName            string
	LastName             string
	Club                 string
	BirthYear            int
	StartTime            time.Time
	Class                string
	SpecialCategoryFlags []bool
}

type RaceGroup struct {
	RaceName          string
	SpecialCategories []SpecialCategory
	Participants      []ParticipantEntry
}

type RegistrationReport struct {
	CompetitionInfo Competition
	RaceGroups      []RaceGroup
}
