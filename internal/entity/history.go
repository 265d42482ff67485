package entity

import (
	"fmt"
	"time"
)

// Outcome describes how a match ended. Winner is EmptyCell for a draw.
type Outcome struct {
	Winner Mark `json:"winner,omitempty"`
}

func WonBy(player Mark) Outcome {
	return Outcome{Winner: player}
}

func Draw() Outcome {
	return Outcome{}
}

func (that Outcome) IsDraw() bool {
	return that.Winner == EmptyCell
}

// HistoryRecord is an immutable log entry for one completed match.
type HistoryRecord struct {
	Seq             int       `json:"seq"`
	Outcome         Outcome   `json:"outcome"`
	DurationSeconds int       `json:"duration_seconds"`
	FinishedAt      time.Time `json:"finished_at"`
}

func (that HistoryRecord) String() string {
	if that.Outcome.IsDraw() {
		return fmt.Sprintf("Draw in %ds", that.DurationSeconds)
	}
	return fmt.Sprintf("Player %s won in %ds", that.Outcome.Winner, that.DurationSeconds)
}

// Snapshot is a read-only view of the session for presentation.
type Snapshot struct {
	ScoreX  int             `json:"score_x"`
	ScoreO  int             `json:"score_o"`
	History []HistoryRecord `json:"history"`
}
