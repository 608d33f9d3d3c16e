package memory

import (
	"sync"

	"github.com/docsbotai/dashboard/pkg/domain/interfaces"
	"github.com/docsbotai/dashboard/pkg/domain/model/bot"
	"github.com/docsbotai/dashboard/pkg/domain/model/errs"
	"github.com/docsbotai/dashboard/pkg/domain/model/team"
	"github.com/docsbotai/dashboard/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Memory is a process-local repository for development and tests. It stores
// copies so callers never share records with the store.
type Memory struct {
	mu    sync.RWMutex
	teams map[types.TeamID]*team.Team
	bots  map[types.TeamID]map[types.BotID]*bot.Bot

	calls callCounter
	eb    *goerr.Builder
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		teams: make(map[types.TeamID]*team.Team),
		bots:  make(map[types.TeamID]map[types.BotID]*bot.Bot),
		calls: callCounter{counts: make(map[string]int)},
		eb:    goerr.NewBuilder(goerr.TV(errs.RepositoryKey, "memory")),
	}
}

// callCounter records how often each repository method ran, so tests can
// assert that lookups are not cached between requests.
type callCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

func (c *callCounter) inc(method string) {
	c.mu.Lock()
	c.counts[method]++
	c.mu.Unlock()
}

func (r *Memory) incrementCallCount(method string) {
	r.calls.inc(method)
}

// GetCallCount returns how many times method has been called since New or
// the last ResetCallCounts.
func (r *Memory) GetCallCount(method string) int {
	r.calls.mu.Lock()
	defer r.calls.mu.Unlock()
	return r.calls.counts[method]
}

func (r *Memory) ResetCallCounts() {
	r.calls.mu.Lock()
	r.calls.counts = make(map[string]int)
	r.calls.mu.Unlock()
}
