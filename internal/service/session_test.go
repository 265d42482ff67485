package service

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_RecordOutcome(t *testing.T) {
	t.Run("Win for X increments X score", func(t *testing.T) {
		// Given: a fresh session
		session := NewSession()

		// When: X wins after 5 seconds
		record := session.RecordOutcome(entity.WonBy(entity.PlayerX), 5)

		// Then: X has one point and one record is logged
		snapshot := session.Snapshot()
		assert.Equal(t, 1, snapshot.ScoreX)
		assert.Equal(t, 0, snapshot.ScoreO)
		require.Len(t, snapshot.History, 1)
		assert.Equal(t, record, snapshot.History[0])
		assert.Equal(t, 5, record.DurationSeconds)
		assert.Equal(t, 1, record.Seq)
	})

	t.Run("Draw leaves scores unchanged", func(t *testing.T) {
		session := NewSession()

		session.RecordOutcome(entity.Draw(), 9)

		snapshot := session.Snapshot()
		assert.Zero(t, snapshot.ScoreX)
		assert.Zero(t, snapshot.ScoreO)
		require.Len(t, snapshot.History, 1)
		assert.True(t, snapshot.History[0].Outcome.IsDraw())
	})

	t.Run("History keeps insertion order", func(t *testing.T) {
		session := NewSession()
		fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		session.now = func() time.Time { return fixed }

		session.RecordOutcome(entity.WonBy(entity.PlayerO), 3)
		session.RecordOutcome(entity.Draw(), 4)
		session.RecordOutcome(entity.WonBy(entity.PlayerX), 5)

		snapshot := session.Snapshot()
		require.Len(t, snapshot.History, 3)
		assert.Equal(t, []string{"Player O won in 3s", "Draw in 4s", "Player X won in 5s"}, []string{
			snapshot.History[0].String(),
			snapshot.History[1].String(),
			snapshot.History[2].String(),
		})
		assert.Equal(t, 3, snapshot.History[2].Seq)
		assert.Equal(t, fixed, snapshot.History[0].FinishedAt)
		assert.Equal(t, 1, snapshot.ScoreX)
		assert.Equal(t, 1, snapshot.ScoreO)
	})
}

func TestSession_Snapshot(t *testing.T) {
	t.Run("Snapshot is a copy", func(t *testing.T) {
		session := NewSession()
		session.RecordOutcome(entity.WonBy(entity.PlayerX), 1)

		snapshot := session.Snapshot()
		snapshot.History[0].DurationSeconds = 100

		assert.Equal(t, 1, session.Snapshot().History[0].DurationSeconds)
	})

	t.Run("Empty session has empty, non-nil history", func(t *testing.T) {
		snapshot := NewSession().Snapshot()

		assert.NotNil(t, snapshot.History)
		assert.Empty(t, snapshot.History)
	})
}

func TestSession_ResetAll(t *testing.T) {
	// Given: a session with scores and history
	session := NewSession()
	session.RecordOutcome(entity.WonBy(entity.PlayerX), 1)
	session.RecordOutcome(entity.WonBy(entity.PlayerO), 2)
	session.RecordOutcome(entity.Draw(), 3)

	// When: everything is reset
	session.ResetAll()

	// Then: scores are zero and history is empty
	snapshot := session.Snapshot()
	assert.Zero(t, snapshot.ScoreX)
	assert.Zero(t, snapshot.ScoreO)
	assert.Empty(t, snapshot.History)

	// And: sequence numbers start over
	record := session.RecordOutcome(entity.Draw(), 0)
	assert.Equal(t, 1, record.Seq)
}
