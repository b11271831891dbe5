package store

import "time"

type Competition struct {
	ID       int64
	Name     string
	Location string
	HeldOn   time.Time
}

// Race carries the minimum age of its primary category, denormalized from the
// categories table. It is used for ordering only.
type Race struct {
	ID      int64
	Name    string
	FromAge int
}

type SpecialCategory struct {
	ID     int64
	RaceID int64
	Label  string
}

// Participant is the denormalized registration row. It does not carry a race
// id; rows are attributed to races by name, relying on the shared sort order
// of the race and participant queries.
type Participant struct {
	ID        int64
	FirstName string
	LastName  string
	Club      string
	BirthYear int
	StartTime time.Time
	Class     string
	RaceName  string
}

type Membership struct {
	ParticipantID     int64
	SpecialCategoryID int64
}
