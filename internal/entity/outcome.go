package entity

import "github.com/XirdneL/Connect-4/internal/connectfour"

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	PlayerOne = "X"
	PlayerTwo = "O"
	PlayerTie = "-"
)

// Outcome describes how a single game ended.
type Outcome struct {
	MatchID string `json:"match_id"`
	Status  string `json:"status"`
	Winner  string `json:"winner,omitempty"`
	Moves   int    `json:"moves"`
}

// NewOutcome - reads the result from a board. A board still in play reports
// StatusOngoing; a full board without a winner is a tie.
func NewOutcome(matchID string, board *connectfour.Board) *Outcome {
	outcome := &Outcome{
		MatchID: matchID,
		Status:  StatusOngoing,
		Moves:   board.Moves(),
	}

	switch winner := board.Winner(); {
	case winner.IsPlayer():
		outcome.Status = StatusFinished
		outcome.Winner = winner.String()
	case board.IsFull():
		outcome.Status = StatusFinished
		outcome.Winner = PlayerTie
	}

	return outcome
}

func (that *Outcome) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Outcome) IsTie() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}

// Tally aggregates finished games.
type Tally struct {
	PlayerOne int64 `json:"player_one"`
	PlayerTwo int64 `json:"player_two"`
	Draws     int64 `json:"draws"`
}

func (that *Tally) Add(winner string) {
	switch winner {
	case PlayerOne:
		that.PlayerOne++
	case PlayerTwo:
		that.PlayerTwo++
	case PlayerTie:
		that.Draws++
	}
}

func (that *Tally) Total() int64 {
	return that.PlayerOne + that.PlayerTwo + that.Draws
}
