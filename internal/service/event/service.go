package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dentradar/dentradar-api/internal/model"
	"github.com/dentradar/dentradar-api/internal/repository"
)

// Emitter records domain events in the outbox table inside the request flow;
// the outbox processor publishes them to the broker asynchronously.
type Emitter interface {
	Emit(ctx context.Context, eventType string, payload interface{}) error
}

type Service struct {
	repo   repository.OutboxRepository
	logger zerolog.Logger
}

func NewService(repo repository.OutboxRepository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Emit(ctx context.Context, eventType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	evt := &model.OutboxEvent{
		EventType: eventType,
		Payload:   data,
	}
	if err := s.repo.Create(ctx, evt); err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}

	s.logger.Debug().Str("event_type", eventType).Str("event_id", evt.ID.String()).Msg("event recorded")
	return nil
}
