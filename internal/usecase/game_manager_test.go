package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/sound"
	"github.com/rocketscienceinc/tictactoe-desktop/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errRedisDown = errors.New("redis down")

type mockSoundPlayer struct {
	mock.Mock
}

func (that *mockSoundPlayer) Play(name string) {
	that.Called(name)
}

type mockOutcomePublisher struct {
	mock.Mock
}

func (that *mockOutcomePublisher) Publish(ctx context.Context, record entity.HistoryRecord) error {
	args := that.Called(ctx, record)
	return args.Error(0)
}

func clickAll(t *testing.T, manager *GameManager, moves [][2]int) {
	t.Helper()

	for _, move := range moves {
		require.NoError(t, manager.Click(context.Background(), move[0], move[1]))
	}
}

func TestGameManager_Click(t *testing.T) {
	ctx := context.Background()

	t.Run("X wins the top row and the outcome is published", func(t *testing.T) {
		// Given: a manager with sound and publisher mocks
		sounds := &mockSoundPlayer{}
		sounds.On("Play", sound.Click).Times(5)
		sounds.On("Play", sound.Win).Once()

		publisher := &mockOutcomePublisher{}
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(record entity.HistoryRecord) bool {
			return record.Outcome == entity.WonBy(entity.PlayerX) && record.DurationSeconds == 1 && record.Seq == 1
		})).Return(nil).Once()

		manager := NewGameManager(suite.NewLogger(), sounds, publisher, false)
		manager.Tick()

		// When: X completes the top row
		clickAll(t, manager, [][2]int{{0, 0}, {1, 1}, {0, 1}, {2, 2}, {0, 2}})
		manager.Wait()

		// Then: X scores, history holds one entry, and side effects fired
		view := manager.View()
		assert.Equal(t, "Player X Wins!", view.Status)
		assert.Equal(t, "Score - X: 1, O: 0", view.Score)
		assert.Equal(t, []string{"Player X won in 1s"}, view.History)
		assert.True(t, view.Over)

		sounds.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("Draw plays the draw sound and leaves scores", func(t *testing.T) {
		sounds := &mockSoundPlayer{}
		sounds.On("Play", sound.Click).Times(9)
		sounds.On("Play", sound.Draw).Once()

		manager := NewGameManager(suite.NewLogger(), sounds, nil, false)

		clickAll(t, manager, [][2]int{
			{0, 0}, {0, 1}, {0, 2},
			{1, 1}, {1, 0}, {1, 2},
			{2, 1}, {2, 0}, {2, 2},
		})

		view := manager.View()
		assert.Equal(t, "It's a Draw!", view.Status)
		assert.Equal(t, "Score - X: 0, O: 0", view.Score)
		assert.Equal(t, []string{"Draw in 0s"}, view.History)
		sounds.AssertExpectations(t)
	})

	t.Run("Occupied cell is rejected without sound", func(t *testing.T) {
		sounds := &mockSoundPlayer{}
		sounds.On("Play", sound.Click).Once()

		manager := NewGameManager(suite.NewLogger(), sounds, nil, false)
		require.NoError(t, manager.Click(ctx, 1, 1))

		// When: O clicks the same cell
		err := manager.Click(ctx, 1, 1)

		// Then: the error surfaces and O is still to move
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Contains(t, err.Error(), "failed to make move")
		view := manager.View()
		assert.Equal(t, entity.PlayerO, view.Current)
		assert.Equal(t, "Player O's Turn", view.Status)
		sounds.AssertExpectations(t)
	})

	t.Run("Clicks after the match is over are rejected", func(t *testing.T) {
		sounds := &mockSoundPlayer{}
		sounds.On("Play", mock.Anything)

		manager := NewGameManager(suite.NewLogger(), sounds, nil, false)
		clickAll(t, manager, [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}})
		before := manager.View()

		err := manager.Click(ctx, 2, 2)

		require.ErrorIs(t, err, apperror.ErrMatchOver)
		assert.Equal(t, before, manager.View())
	})

	t.Run("Publish failure does not affect the game", func(t *testing.T) {
		sounds := &mockSoundPlayer{}
		sounds.On("Play", mock.Anything)

		publisher := &mockOutcomePublisher{}
		publisher.On("Publish", mock.Anything, mock.Anything).Return(errRedisDown).Once()

		manager := NewGameManager(suite.NewLogger(), sounds, publisher, false)
		clickAll(t, manager, [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}})
		manager.Wait()

		assert.Equal(t, "Score - X: 1, O: 0", manager.View().Score)
		publisher.AssertExpectations(t)
	})
}

func TestGameManager_Tick(t *testing.T) {
	sounds := &mockSoundPlayer{}
	sounds.On("Play", mock.Anything)
	manager := NewGameManager(suite.NewLogger(), sounds, nil, false)

	manager.Tick()
	manager.Tick()
	assert.Equal(t, "Time: 2s", manager.View().Timer)

	// the timer stops on the finishing move
	clickAll(t, manager, [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}})
	manager.Tick()

	assert.Equal(t, "Time: 2s", manager.View().Timer)
	assert.Equal(t, []string{"Player X won in 2s"}, manager.View().History)
}

func TestGameManager_Restart(t *testing.T) {
	// Given: one finished match
	sounds := &mockSoundPlayer{}
	sounds.On("Play", mock.Anything)
	manager := NewGameManager(suite.NewLogger(), sounds, nil, false)
	manager.Tick()
	clickAll(t, manager, [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}})

	// When: restarting
	manager.Restart()

	// Then: a fresh match with the session kept
	view := manager.View()
	assert.Equal(t, entity.Board{}, view.Board)
	assert.Equal(t, "Player X's Turn", view.Status)
	assert.Equal(t, "Time: 0s", view.Timer)
	assert.False(t, view.Over)
	assert.Equal(t, "Score - X: 1, O: 0", view.Score)
	assert.Len(t, view.History, 1)
}

func TestGameManager_ResetAll(t *testing.T) {
	sounds := &mockSoundPlayer{}
	sounds.On("Play", mock.Anything)
	manager := NewGameManager(suite.NewLogger(), sounds, nil, false)
	clickAll(t, manager, [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}})
	manager.Restart()
	require.NoError(t, manager.Click(context.Background(), 2, 2))

	manager.ResetAll()

	view := manager.View()
	assert.Equal(t, entity.Board{}, view.Board)
	assert.Equal(t, "Score - X: 0, O: 0", view.Score)
	assert.Empty(t, view.History)
	assert.Empty(t, manager.Snapshot().History)
}

func TestGameManager_ToggleTheme(t *testing.T) {
	manager := NewGameManager(suite.NewLogger(), &mockSoundPlayer{}, nil, true)

	assert.True(t, manager.View().Dark)
	assert.False(t, manager.ToggleTheme())
	assert.True(t, manager.ToggleTheme())
	assert.True(t, manager.View().Dark)
}
