package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

// OutcomeMessage is the payload published for every finished match.
type OutcomeMessage struct {
	SessionID string               `json:"session_id"`
	Record    entity.HistoryRecord `json:"record"`
}

type OutcomePublisher interface {
	Publish(ctx context.Context, record entity.HistoryRecord) error
}

// redisOutcomes only publishes; nothing is written to the keyspace.
type redisOutcomes struct {
	client    *redis.Client
	channel   string
	sessionID string
}

func NewOutcomePublisher(client *redis.Client, channel, sessionID string) OutcomePublisher {
	return &redisOutcomes{
		client:    client,
		channel:   channel,
		sessionID: sessionID,
	}
}

func (that *redisOutcomes) Publish(ctx context.Context, record entity.HistoryRecord) error {
	messageJSON, err := json.Marshal(OutcomeMessage{
		SessionID: that.sessionID,
		Record:    record,
	})
	if err != nil {
		return fmt.Errorf("could not marshal outcome: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, messageJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish outcome: %w", err)
	}

	return nil
}
