package registration

import (
	"errors"
	"fmt"

	"github.com/race-tools/startlist/pkg/models/store"
)

// ErrOrderViolation reports that the participant relation did not honor the
// loader's ordering contract: some rows could not be attributed to any race
// during the single forward pass.
var ErrOrderViolation = errors.New("participant rows out of race order")

// groupParticipants partitions participants into one bucket per race, in race
// order, with a single forward cursor over the participant rows.
//
// Both inputs must share the (from_age, race name) sort prefix, so each race's
// rows form one contiguous run and the runs appear in race order. For every
// race the cursor consumes rows while the lookahead row's race name matches,
// then moves on; a race with no rows simply yields an empty bucket. Matching
// is by name, not position, so races that collide on from_age are still
// attributed correctly as long as their runs do not interleave.
//
// The cursor never revisits a row. If rows remain unconsumed after the last
// race, the contiguity precondition was violated upstream and the whole
// grouping is rejected rather than silently dropping rows.
func groupParticipants(races []store.Race, participants []store.Participant) ([][]store.Participant, error) {
	groups := make([][]store.Participant, len(races))
	next := 0
	for i, race := range races {
		groups[i] = []store.Participant{}
		for next < len(participants) && participants[next].RaceName == race.Name {
			groups[i] = append(groups[i], participants[next])
			next++
		}
	}

	if next != len(participants) {
		return nil, fmt.Errorf("%d of %d participant rows unattributed: %w",
			len(participants)-next, len(participants), ErrOrderViolation)
	}
	return groups, nil
}
