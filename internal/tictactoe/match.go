package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

type Phase string

const (
	PhaseActive Phase = "active"
	PhaseWon    Phase = "won"
	PhaseDrawn  Phase = "drawn"
)

type outcomeRecorder interface {
	RecordOutcome(outcome entity.Outcome, durationSeconds int) entity.HistoryRecord
}

// Match is a single game from an empty board to a win or a draw.
// It is not safe for concurrent use; callers deliver one event at a time.
type Match struct {
	board    entity.Board
	current  entity.Mark
	phase    Phase
	winner   entity.Mark
	elapsed  int
	recorder outcomeRecorder
}

func NewMatch(recorder outcomeRecorder) *Match {
	return &Match{
		current:  entity.PlayerX,
		phase:    PhaseActive,
		recorder: recorder,
	}
}

// ApplyMove places the current player's mark. It returns the history record
// when the move finished the match and nil otherwise.
func (that *Match) ApplyMove(row, col int) (*entity.HistoryRecord, error) {
	if that.phase != PhaseActive {
		return nil, apperror.ErrMatchOver
	}

	if err := that.board.Place(row, col, that.current); err != nil {
		return nil, fmt.Errorf("invalid move: %w", err)
	}

	// the win check uses the mark just placed, before turns flip
	if winner, ok := Winner(&that.board); ok {
		that.phase = PhaseWon
		that.winner = winner

		return that.record(entity.WonBy(winner)), nil
	}

	if IsDraw(&that.board) {
		that.phase = PhaseDrawn

		return that.record(entity.Draw()), nil
	}

	that.current = that.current.Opponent()

	return nil, nil
}

// Tick advances the match clock by one second. The clock freezes once the match is over.
func (that *Match) Tick() {
	if that.phase != PhaseActive {
		return
	}
	that.elapsed++
}

func (that *Match) Restart() {
	that.board.Reset()
	that.current = entity.PlayerX
	that.phase = PhaseActive
	that.winner = entity.EmptyCell
	that.elapsed = 0
}

func (that *Match) record(outcome entity.Outcome) *entity.HistoryRecord {
	if that.recorder == nil {
		rec := entity.HistoryRecord{Outcome: outcome, DurationSeconds: that.elapsed}
		return &rec
	}

	rec := that.recorder.RecordOutcome(outcome, that.elapsed)

	return &rec
}

// Board returns a copy of the grid.
func (that *Match) Board() entity.Board {
	return that.board
}

func (that *Match) CurrentPlayer() entity.Mark {
	return that.current
}

func (that *Match) Phase() Phase {
	return that.phase
}

// Winner is EmptyCell unless the phase is PhaseWon.
func (that *Match) Winner() entity.Mark {
	return that.winner
}

func (that *Match) Elapsed() int {
	return that.elapsed
}

func (that *Match) IsOver() bool {
	return that.phase != PhaseActive
}

// Status is the one-line description shown above the board.
func (that *Match) Status() string {
	switch that.phase {
	case PhaseWon:
		return fmt.Sprintf("Player %s Wins!", that.winner)
	case PhaseDrawn:
		return "It's a Draw!"
	default:
		return fmt.Sprintf("Player %s's Turn", that.current)
	}
}
