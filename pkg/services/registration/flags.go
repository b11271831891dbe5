package registration

import "github.com/race-tools/startlist/pkg/models/store"

// membershipSets indexes memberships by participant id. Building the sets once
// keeps flag resolution linear instead of scanning the membership list per
// category.
func membershipSets(memberships []store.Membership) map[int64]map[int64]struct{} {
	sets := make(map[int64]map[int64]struct{})
	for _, m := range memberships {
		set, ok := sets[m.ParticipantID]
		if !ok {
			set = make(map[int64]struct{})
			sets[m.ParticipantID] = set
		}
		set[m.SpecialCategoryID] = struct{}{}
	}
	return sets
}

// resolveFlags produces one boolean per category, in category order. The
// result always has len(categories) entries: all false for a participant with
// no memberships, empty for a race with no special categories.
func resolveFlags(categories []store.SpecialCategory, memberships map[int64]struct{}) []bool {
	flags := make([]bool, len(categories))
	for i, category := range categories {
		_, flags[i] = memberships[category.ID]
	}
	return flags
}
