package memory

import (
	"context"
	"sort"

	"github.com/docsbotai/dashboard/pkg/domain/model/bot"
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

func (r *Memory) ListBots(ctx context.Context, teamID types.TeamID) ([]*bot.Bot, error) {
	r.incrementCallCount("ListBots")

	r.mu.RLock()
	defer r.mu.RUnlock()

	var bots []*bot.Bot
	for _, b := range r.bots[teamID] {
		c := *b
		bots = append(bots, &c)
	}

	sort.Slice(bots, func(i, j int) bool {
		return bots[i].CreatedAt.After(bots[j].CreatedAt)
	})

	return bots, nil
}

func (r *Memory) GetBot(ctx context.Context, teamID types.TeamID, botID types.BotID) (*bot.Bot, error) {
	r.incrementCallCount("GetBot")

	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bots[teamID][botID]
	if !ok {
		return nil, nil
	}
	c := *b
	return &c, nil
}

func (r *Memory) PutBot(ctx context.Context, b *bot.Bot) error {
	r.incrementCallCount("PutBot")

	if err := b.Validate(); err != nil {
		return r.eb.Wrap(err, "invalid bot",
			goerr.TV(errs.TeamIDKey, b.TeamID),
			goerr.TV(errs.BotIDKey, b.ID))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bots[b.TeamID]; !ok {
		r.bots[b.TeamID] = make(map[types.BotID]*bot.Bot)
	}
	c := *b
	r.bots[b.TeamID][b.ID] = &c
	return nil
}

func (r *Memory) DeleteBot(ctx context.Context, teamID types.TeamID, botID types.BotID) error {
	r.incrementCallCount("DeleteBot")

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.bots[teamID], botID)
	return nil
}
