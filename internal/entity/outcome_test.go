package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XirdneL/Connect-4/internal/connectfour"
)

func TestNewOutcome(t *testing.T) {
	t.Run("Ongoing board", func(t *testing.T) {
		// Given: a board with a single move
		board := connectfour.NewBoard()
		require.NoError(t, board.Insert(connectfour.PlayerOne, 0))

		// When: the outcome is read
		outcome := NewOutcome("m1", board)

		// Then: the game is still ongoing
		assert.Equal(t, &Outcome{MatchID: "m1", Status: StatusOngoing, Moves: 1}, outcome)
		assert.False(t, outcome.IsFinished())
		assert.False(t, outcome.IsTie())
	})

	t.Run("Won board", func(t *testing.T) {
		// Given: a board where player two has four in a row
		board := connectfour.NewBoard()
		for column := 0; column < 4; column++ {
			require.NoError(t, board.Insert(connectfour.PlayerTwo, column))
		}

		// When: the outcome is read
		outcome := NewOutcome("m2", board)

		// Then: player two is the winner
		assert.Equal(t, &Outcome{MatchID: "m2", Status: StatusFinished, Winner: PlayerTwo, Moves: 4}, outcome)
		assert.True(t, outcome.IsFinished())
		assert.False(t, outcome.IsTie())
	})
}

func TestTally(t *testing.T) {
	// Given: an empty tally
	tally := &Tally{}

	// When: outcomes are added, including an unknown winner
	tally.Add(PlayerOne)
	tally.Add(PlayerOne)
	tally.Add(PlayerTwo)
	tally.Add(PlayerTie)
	tally.Add("")

	// Then: only known winners are counted
	assert.Equal(t, &Tally{PlayerOne: 2, PlayerTwo: 1, Draws: 1}, tally)
	assert.Equal(t, int64(4), tally.Total())
}
