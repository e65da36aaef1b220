package session

import (
	"context"

	"github.com/osrsdps/dps-console/internal/errors"
)

func (o *orchestrator) SearchItems(_ context.Context, input *SearchItemsInput) (*SearchItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	return &SearchItemsOutput{Items: o.catalog.SearchItems(input.Query, input.Slot)}, nil
}

func (o *orchestrator) SearchMonsters(_ context.Context, input *SearchMonstersInput) (*SearchMonstersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	return &SearchMonstersOutput{Monsters: o.catalog.SearchMonsters(input.Query)}, nil
}
