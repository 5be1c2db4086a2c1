package contracts

import (
	"context"
	"time"

	"openhours-service/internal/app/models"
	"openhours-service/internal/pkg/dto/requests"
	"openhours-service/internal/pkg/dto/responses"
)

type ScheduleUsecase interface {
	CreateSchedule(ctx context.Context, request *requests.CreateSchedule) (*responses.Schedule, error)
	FindAllSchedules(ctx context.Context) ([]responses.Schedule, error)
	FindScheduleByID(ctx context.Context, scheduleID string) (*responses.Schedule, error)
	UpdateSchedule(ctx context.Context, scheduleID string, request *requests.UpdateSchedule) (*responses.Schedule, error)
	DeleteSchedule(ctx context.Context, scheduleID string) error

	ScheduleStatus(ctx context.Context, scheduleID string, at time.Time) (*responses.ScheduleStatus, error)
	NextOpen(ctx context.Context, scheduleID string, from time.Time, until, capTime *time.Time) (*responses.ScheduleBoundary, error)
	NextClose(ctx context.Context, scheduleID string, from time.Time, until, capTime *time.Time) (*responses.ScheduleBoundary, error)
	PreviousOpen(ctx context.Context, scheduleID string, from time.Time, until, capTime *time.Time) (*responses.ScheduleBoundary, error)
	PreviousClose(ctx context.Context, scheduleID string, from time.Time, until, capTime *time.Time) (*responses.ScheduleBoundary, error)
	CurrentOpenRange(ctx context.Context, scheduleID string, at time.Time) (*responses.ScheduleStatus, error)
	DiffInState(ctx context.Context, scheduleID, state, unit string, start, end time.Time) (*responses.ScheduleDiff, error)
	Week(ctx context.Context, scheduleID, mode string) (*responses.ScheduleWeek, error)
	Exceptions(ctx context.Context, scheduleID string) (*responses.ScheduleExceptions, error)

	MergeRanges(ctx context.Context, request *requests.MergeRanges) (*responses.MergedRanges, error)
}

type ScheduleRepository interface {
	InsertSchedule(ctx context.Context, schedule *models.Schedule) (string, error)
	FindAllSchedules(ctx context.Context) ([]models.Schedule, error)
	FindScheduleByID(ctx context.Context, scheduleID string) (*models.Schedule, error)
	UpdateSchedule(ctx context.Context, schedule *models.Schedule) error
	DeleteScheduleByID(ctx context.Context, scheduleID string) error
}
