package contracts

import "context"

type SchedulePublisher interface {
	PublishScheduleEvent(ctx context.Context, eventType, scheduleID string) error
}
