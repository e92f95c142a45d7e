package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/XirdneL/Connect-4/internal/entity"
)

const tallyKey = "connectfour:tally"

var ErrUnfinishedOutcome = errors.New("outcome is not finished")

type ResultRepository interface {
	Record(ctx context.Context, outcome *entity.Outcome) error
	Tally(ctx context.Context) (*entity.Tally, error)
	Reset(ctx context.Context) error
}

type dbResult struct {
	client *redis.Client
}

// NewResultRepository - keeps per-winner counters in a single Redis hash.
func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

func (that *dbResult) Record(ctx context.Context, outcome *entity.Outcome) error {
	if !outcome.IsFinished() {
		return fmt.Errorf("%w: match %s", ErrUnfinishedOutcome, outcome.MatchID)
	}

	if err := that.client.HIncrBy(ctx, tallyKey, outcome.Winner, 1).Err(); err != nil {
		return fmt.Errorf("failed to record outcome: %w", err)
	}

	return nil
}

func (that *dbResult) Tally(ctx context.Context) (*entity.Tally, error) {
	fields, err := that.client.HGetAll(ctx, tallyKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get tally: %w", err)
	}

	tally := &entity.Tally{}
	for winner, raw := range fields {
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse tally field %q: %w", winner, err)
		}

		switch winner {
		case entity.PlayerOne:
			tally.PlayerOne = count
		case entity.PlayerTwo:
			tally.PlayerTwo = count
		case entity.PlayerTie:
			tally.Draws = count
		}
	}

	return tally, nil
}

func (that *dbResult) Reset(ctx context.Context) error {
	if err := that.client.Del(ctx, tallyKey).Err(); err != nil {
		return fmt.Errorf("failed to reset tally: %w", err)
	}

	return nil
}
