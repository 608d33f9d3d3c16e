package memory

import (
	"context"

	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/model/team"
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

func (r *Memory) GetTeam(ctx context.Context, teamID types.TeamID) (*team.Team, error) {
	r.incrementCallCount("GetTeam")

	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.teams[teamID]
	if !ok {
		return nil, nil
	}
	// Return a copy to prevent external modification
	return t.Copy(), nil
}

func (r *Memory) PutTeam(ctx context.Context, t *team.Team) error {
	r.incrementCallCount("PutTeam")

	if err := t.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid team", goerr.TV(errs.TeamIDKey, t.ID))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.teams[t.ID] = t.Copy()
	return nil
}
