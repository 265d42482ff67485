package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/service"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/sound"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
)

const publishTimeout = 3 * time.Second

type soundPlayer interface {
	Play(name string)
}

type outcomePublisher interface {
	Publish(ctx context.Context, record entity.HistoryRecord) error
}

// GameView is everything the window needs to draw one frame.
type GameView struct {
	Board   entity.Board
	Current entity.Mark
	Over    bool
	Status  string
	Score   string
	Timer   string
	History []string
	Dark    bool
}

// GameManager turns window events into match and session transitions.
// The lock only serializes the window's event loop against the status server's reads.
type GameManager struct {
	logger    *slog.Logger
	sounds    soundPlayer
	publisher outcomePublisher

	mu      sync.Mutex
	session *service.Session
	match   *tictactoe.Match
	dark    bool

	inflight sync.WaitGroup
}

// NewGameManager wires a fresh session and match. publisher may be nil.
func NewGameManager(logger *slog.Logger, sounds soundPlayer, publisher outcomePublisher, darkMode bool) *GameManager {
	session := service.NewSession()

	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		sounds:    sounds,
		publisher: publisher,
		session:   session,
		match:     tictactoe.NewMatch(session),
		dark:      darkMode,
	}
}

// Click applies a move for the player to move. Rejected moves change nothing.
func (that *GameManager) Click(ctx context.Context, row, col int) error {
	log := that.logger.With("method", "Click", "row", row, "col", col)

	that.mu.Lock()
	player := that.match.CurrentPlayer()
	record, err := that.match.ApplyMove(row, col)
	that.mu.Unlock()

	if err != nil {
		if errors.Is(err, apperror.ErrCellOccupied) || errors.Is(err, apperror.ErrOutOfRange) || errors.Is(err, apperror.ErrMatchOver) {
			log.Debug("move ignored", "error", err)
		} else {
			log.Error("move failed", "error", err)
		}

		return fmt.Errorf("failed to make move: %w", err)
	}

	that.sounds.Play(sound.Click)
	log.Debug("move applied", "player", player)

	if record == nil {
		return nil
	}

	if record.Outcome.IsDraw() {
		that.sounds.Play(sound.Draw)
	} else {
		that.sounds.Play(sound.Win)
	}

	log.Info("match finished", "result", record.String(), "seq", record.Seq)

	that.publish(ctx, *record)

	return nil
}

func (that *GameManager) Tick() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.match.Tick()
}

// Restart starts a new match and keeps scores and history.
func (that *GameManager) Restart() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.match.Restart()
	that.logger.Debug("match restarted")
}

// ResetAll starts a new match and clears scores and history.
func (that *GameManager) ResetAll() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.match.Restart()
	that.session.ResetAll()
	that.logger.Info("session reset")
}

// ToggleTheme flips dark mode and returns the new value. The engine never sees it.
func (that *GameManager) ToggleTheme() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.dark = !that.dark

	return that.dark
}

func (that *GameManager) Snapshot() entity.Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.session.Snapshot()
}

func (that *GameManager) View() GameView {
	that.mu.Lock()
	defer that.mu.Unlock()

	snapshot := that.session.Snapshot()
	history := make([]string, 0, len(snapshot.History))
	for _, record := range snapshot.History {
		history = append(history, record.String())
	}

	return GameView{
		Board:   that.match.Board(),
		Current: that.match.CurrentPlayer(),
		Over:    that.match.IsOver(),
		Status:  that.match.Status(),
		Score:   fmt.Sprintf("Score - X: %d, O: %d", snapshot.ScoreX, snapshot.ScoreO),
		Timer:   fmt.Sprintf("Time: %ds", that.match.Elapsed()),
		History: history,
		Dark:    that.dark,
	}
}

// Wait blocks until in-flight outcome publications are done.
func (that *GameManager) Wait() {
	that.inflight.Wait()
}

func (that *GameManager) publish(ctx context.Context, record entity.HistoryRecord) {
	if that.publisher == nil {
		return
	}

	log := that.logger.With("method", "publish")

	that.inflight.Add(1)
	go func() {
		defer that.inflight.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()

		if err := that.publisher.Publish(ctx, record); err != nil {
			log.Error("failed to publish outcome", "error", err)
		}
	}()
}
