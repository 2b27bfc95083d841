package service

import (
	"context"

	"go-doctor-schedule/internal/domain/entity"
)

// ScheduleEventPublisher announces committed schedule changes.
type ScheduleEventPublisher interface {
	PublishSchedulesCreated(ctx context.Context, event entity.SchedulesCreatedEvent) error
}

// MessagePublisher is the broker-side contract, satisfied by messaging.Publisher.
type MessagePublisher interface {
	PublishJSON(ctx context.Context, routingKey string, v any) error
}

type brokerScheduleEventPublisher struct {
	publisher MessagePublisher
}

func NewBrokerScheduleEventPublisher(publisher MessagePublisher) ScheduleEventPublisher {
	return &brokerScheduleEventPublisher{publisher: publisher}
}

func (p *brokerScheduleEventPublisher) PublishSchedulesCreated(ctx context.Context, event entity.SchedulesCreatedEvent) error {
	return p.publisher.PublishJSON(ctx, entity.EventSchedulesCreated, event)
}

type noopScheduleEventPublisher struct{}

func NewNoopScheduleEventPublisher() ScheduleEventPublisher {
	return noopScheduleEventPublisher{}
}

func (noopScheduleEventPublisher) PublishSchedulesCreated(context.Context, entity.SchedulesCreatedEvent) error {
	return nil
}
