package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/XirdneL/Connect-4/internal/entity"
)

type memResult struct {
	mu    sync.Mutex
	tally entity.Tally
}

// NewMemoryResultRepository - counters live only as long as the process.
func NewMemoryResultRepository() ResultRepository {
	return &memResult{}
}

func (that *memResult) Record(_ context.Context, outcome *entity.Outcome) error {
	if !outcome.IsFinished() {
		return fmt.Errorf("%w: match %s", ErrUnfinishedOutcome, outcome.MatchID)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.tally.Add(outcome.Winner)

	return nil
}

func (that *memResult) Tally(_ context.Context) (*entity.Tally, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	tally := that.tally

	return &tally, nil
}

func (that *memResult) Reset(_ context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.tally = entity.Tally{}

	return nil
}
