package competition

import (
	"context"
	"fmt"

	"github.com/race-tools/startlist/pkg/adapters"
	"github.com/race-tools/startlist/pkg/models/domain"
	registrationstore "github.com/race-tools/startlist/pkg/store/registration"
)

type Explorer interface {
	ListCompetitions(ctx context.Context) ([]domain.Competition, error)
}

type competitionExplorer struct {
	store registrationstore.Store
}

func NewExplorer(store registrationstore.Store) Explorer {
	return &competitionExplorer{store: store}
}

func (e *competitionExplorer) ListCompetitions(ctx context.Context) ([]domain.Competition, error) {
	competitions, err := e.store.ListCompetitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load competitions: %w", err)
	}

	mapped := make([]domain.Competition, 0, len(competitions))
	for _, c := range competitions {
		mapped = append(mapped, adapters.MapStoreCompetitionToDomain(c))
	}
	return mapped, nil
}
