package api

import "time"

type Competition struct {
	Id       int64     `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
	HeldOn   time.Time `json:"heldOn"`
}

type SpecialCategory struct {
	Id    int64  `json:"id"`
	Label string `json:"label"`
}

type Participant struct {
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Club      string    `json:"club"`
	BirthYear int       `json:"birthYear"`
	StartTime time.Time `json:"startTime"`
	Class     string    `json:"class"`
	// same length and order as the race group's specialCategories
	SpecialCategoryFlags []bool `json:"specialCategoryFlags"`
}

type RaceGroup struct {
	RaceName          string            `json:"raceName"`
	SpecialCategories []SpecialCategory `json:"specialCategories"`
	Participants      []Participant     `json:"participants"`
}

type RegistrationReport struct {
	CompetitionInfo Competition `json:"competitionInfo"`
	RaceGroups      []RaceGroup `json:"raceGroups"`
}

type Error struct {
	Error string `json:"error"`
}
