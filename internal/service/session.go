package service

import (
	"slices"
	"time"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

// Session keeps scores and the history log across matches until ResetAll.
type Session struct {
	scoreX  int
	scoreO  int
	history []entity.HistoryRecord
	seq     int

	now func() time.Time
}

func NewSession() *Session {
	return &Session{now: time.Now}
}

// RecordOutcome appends a history record and bumps the winner's score.
func (that *Session) RecordOutcome(outcome entity.Outcome, durationSeconds int) entity.HistoryRecord {
	switch outcome.Winner {
	case entity.PlayerX:
		that.scoreX++
	case entity.PlayerO:
		that.scoreO++
	case entity.EmptyCell:
	}

	that.seq++
	record := entity.HistoryRecord{
		Seq:             that.seq,
		Outcome:         outcome,
		DurationSeconds: max(durationSeconds, 0),
		FinishedAt:      that.now().UTC(),
	}
	that.history = append(that.history, record)

	return record
}

func (that *Session) ResetAll() {
	that.scoreX = 0
	that.scoreO = 0
	that.history = nil
	that.seq = 0
}

func (that *Session) Snapshot() entity.Snapshot {
	history := slices.Clone(that.history)
	if history == nil {
		history = []entity.HistoryRecord{}
	}

	return entity.Snapshot{
		ScoreX:  that.scoreX,
		ScoreO:  that.scoreO,
		History: history,
	}
}
