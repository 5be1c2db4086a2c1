package schedules

import (
	"context"
	"errors"
	"fmt"
	"time"

	"openhours-service/internal/app/config"
	"openhours-service/internal/app/contracts"
	"openhours-service/internal/app/models"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/dto/requests"
	"openhours-service/internal/pkg/dto/responses"
	"openhours-service/internal/pkg/exceptions"
	"openhours-service/internal/pkg/openinghours"

	"github.com/goccy/go-json"
)

type scheduleUsecase struct {
	ScheduleRepository contracts.ScheduleRepository
	RedisRepository    contracts.RedisRepository
	SchedulePublisher  contracts.SchedulePublisher
	InternalConfig     *config.InternalConfig
}

func NewScheduleUsecase(
	scheduleMongoRepository contracts.ScheduleRepository,
	redisRepository contracts.RedisRepository,
	schedulePublisher contracts.SchedulePublisher,
	internalConfig *config.InternalConfig,
) contracts.ScheduleUsecase {
	return &scheduleUsecase{
		ScheduleRepository: scheduleMongoRepository,
		RedisRepository:    redisRepository,
		SchedulePublisher:  schedulePublisher,
		InternalConfig:     internalConfig,
	}
}

func (uc *scheduleUsecase) CreateSchedule(ctx context.Context, request *requests.CreateSchedule) (*responses.Schedule, error) {
	if _, err := locationFor(request.Timezone); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if _, err := locationFor(request.OutputTimezone); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	now := time.Now().UTC()
	schedule := &models.Schedule{
		Name:           request.Name,
		Timezone:       request.Timezone,
		OutputTimezone: request.OutputTimezone,
		Definition:     request.Definition,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	scheduleID, err := uc.ScheduleRepository.InsertSchedule(ctx, schedule)
	if err != nil {
		return nil, err
	}

	_ = uc.SchedulePublisher.PublishScheduleEvent(ctx, constvars.ScheduleEventCreated, scheduleID)

	response := buildScheduleResponse(schedule)
	response.ID = scheduleID
	return response, nil
}

func (uc *scheduleUsecase) FindAllSchedules(ctx context.Context) ([]responses.Schedule, error) {
	schedules, err := uc.ScheduleRepository.FindAllSchedules(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Schedule, 0, len(schedules))
	for i := range schedules {
		response := buildScheduleResponse(&schedules[i])
		response.ID = schedules[i].ID.Hex()
		result = append(result, *response)
	}
	return result, nil
}

func (uc *scheduleUsecase) FindScheduleByID(ctx context.Context, scheduleID string) (*responses.Schedule, error) {
	schedule, err := uc.resolveSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	response := buildScheduleResponse(schedule)
	response.ID = scheduleID
	return response, nil
}

func (uc *scheduleUsecase) UpdateSchedule(ctx context.Context, scheduleID string, request *requests.UpdateSchedule) (*responses.Schedule, error) {
	if _, err := locationFor(request.Timezone); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if _, err := locationFor(request.OutputTimezone); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existing, err := uc.resolveSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	// Full rebuild: the stored definition is replaced wholesale, never merged.
	if request.Name != "" {
		existing.Name = request.Name
	}
	existing.Timezone = request.Timezone
	existing.OutputTimezone = request.OutputTimezone
	existing.Definition = request.Definition
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.ScheduleRepository.UpdateSchedule(ctx, existing); err != nil {
		return nil, err
	}

	_ = uc.RedisRepository.Delete(ctx, constvars.RedisKeySchedulePrefix+scheduleID)
	_ = uc.SchedulePublisher.PublishScheduleEvent(ctx, constvars.ScheduleEventUpdated, scheduleID)

	response := buildScheduleResponse(existing)
	response.ID = scheduleID
	return response, nil
}

func (uc *scheduleUsecase) DeleteSchedule(ctx context.Context, scheduleID string) error {
	existing, err := uc.resolveSchedule(ctx, scheduleID)
	if err != nil {
		return err
	}

	if err := uc.ScheduleRepository.DeleteScheduleByID(ctx, existing.ID.Hex()); err != nil {
		return err
	}

	_ = uc.RedisRepository.Delete(ctx, constvars.RedisKeySchedulePrefix+scheduleID)
	_ = uc.SchedulePublisher.PublishScheduleEvent(ctx, constvars.ScheduleEventDeleted, scheduleID)
	return nil
}

func (uc *scheduleUsecase) ScheduleStatus(ctx context.Context, scheduleID string, at time.Time) (*responses.ScheduleStatus, error) {
	engine, err := uc.resolveEngine(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	return buildStatusResponse(engine, scheduleID, at), nil
}

func (uc *scheduleUsecase) NextOpen(ctx context.Context, scheduleID string, from time.Time, until, capTime *time.Time) (*responses.ScheduleBoundary, error) {
	return uc.searchBoundary(ctx, scheduleID, "next-open", from, until, capTime, (*openinghours.OpeningHours).NextOpen)
}

func (uc *scheduleUsecase) NextClose(ctx context.Context, scheduleID string, from time.Time, until, capTime *time.Time) (*responses.ScheduleBoundary, error) {
	return uc.searchBoundary(ctx, scheduleID, "next-close", from, until, capTime, (*openinghours.OpeningHours).NextClose)
}

func (uc *scheduleUsecase) PreviousOpen(ctx context.Context, scheduleID string, from time.Time, until, capTime *time.Time) (*responses.ScheduleBoundary, error) {
	return uc.searchBoundary(ctx, scheduleID, "previous-open", from, until, capTime, (*openinghours.OpeningHours).PreviousOpen)
}

func (uc *scheduleUsecase) PreviousClose(ctx context.Context, scheduleID string, from time.Time, until, capTime *time.Time) (*responses.ScheduleBoundary, error) {
	return uc.searchBoundary(ctx, scheduleID, "previous-close", from, until, capTime, (*openinghours.OpeningHours).PreviousClose)
}

func (uc *scheduleUsecase) searchBoundary(
	ctx context.Context,
	scheduleID, boundaryName string,
	from time.Time,
	until, capTime *time.Time,
	searchFn func(*openinghours.OpeningHours, time.Time, ...openinghours.SearchOption) (time.Time, error),
) (*responses.ScheduleBoundary, error) {
	engine, err := uc.resolveEngine(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	var opts []openinghours.SearchOption
	if until != nil {
		opts = append(opts, openinghours.SearchUntil(*until))
	}
	if capTime != nil {
		opts = append(opts, openinghours.SearchCap(*capTime))
	}

	result, err := searchFn(engine, from, opts...)
	if err != nil {
		var limitErr *openinghours.MaximumLimitExceeded
		if errors.As(err, &limitErr) {
			return nil, exceptions.ErrSearchLimitExceeded(err)
		}
		return nil, exceptions.BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, err.Error())
	}

	return &responses.ScheduleBoundary{
		ScheduleID: scheduleID,
		Boundary:   boundaryName,
		From:       from.Format(time.RFC3339),
		At:         result.Format(time.RFC3339),
		Capped:     capTime != nil && result.Equal(*capTime),
	}, nil
}

func (uc *scheduleUsecase) CurrentOpenRange(ctx context.Context, scheduleID string, at time.Time) (*responses.ScheduleStatus, error) {
	return uc.ScheduleStatus(ctx, scheduleID, at)
}

func (uc *scheduleUsecase) DiffInState(ctx context.Context, scheduleID, state, unit string, start, end time.Time) (*responses.ScheduleDiff, error) {
	engine, err := uc.resolveEngine(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	var value float64
	switch state {
	case constvars.QueryStateOpen:
		switch unit {
		case constvars.QueryUnitSeconds:
			value = engine.DiffInOpenSeconds(start, end)
		case constvars.QueryUnitMinutes:
			value = engine.DiffInOpenMinutes(start, end)
		case constvars.QueryUnitHours:
			value = engine.DiffInOpenHours(start, end)
		default:
			return nil, exceptions.ErrInvalidQueryParam(fmt.Errorf("unknown unit %q", unit))
		}
	case constvars.QueryStateClosed:
		switch unit {
		case constvars.QueryUnitSeconds:
			value = engine.DiffInClosedSeconds(start, end)
		case constvars.QueryUnitMinutes:
			value = engine.DiffInClosedMinutes(start, end)
		case constvars.QueryUnitHours:
			value = engine.DiffInClosedHours(start, end)
		default:
			return nil, exceptions.ErrInvalidQueryParam(fmt.Errorf("unknown unit %q", unit))
		}
	default:
		return nil, exceptions.ErrInvalidQueryParam(fmt.Errorf("unknown state %q", state))
	}

	return &responses.ScheduleDiff{
		ScheduleID: scheduleID,
		State:      state,
		Unit:       unit,
		Value:      value,
		Start:      start.Format(time.RFC3339),
		End:        end.Format(time.RFC3339),
	}, nil
}

func (uc *scheduleUsecase) Week(ctx context.Context, scheduleID, mode string) (*responses.ScheduleWeek, error) {
	engine, err := uc.resolveEngine(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	response := &responses.ScheduleWeek{
		ScheduleID: scheduleID,
		Mode:       mode,
	}

	switch mode {
	case constvars.WeekModePlain:
		days := make(map[string][]string)
		for name, day := range engine.ForWeek() {
			days[name] = day.Strings()
		}
		response.Days = days
	case constvars.WeekModeCombined:
		response.Groups = buildWeekGroups(engine.ForWeekCombined())
	case constvars.WeekModeConsecutive:
		response.Groups = buildWeekGroups(engine.ForWeekConsecutiveDays())
	default:
		return nil, exceptions.ErrInvalidQueryParam(fmt.Errorf("unknown mode %q", mode))
	}

	return response, nil
}

func (uc *scheduleUsecase) Exceptions(ctx context.Context, scheduleID string) (*responses.ScheduleExceptions, error) {
	engine, err := uc.resolveEngine(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	exceptionsByKey := make(map[string][]string)
	for key, day := range engine.Exceptions() {
		exceptionsByKey[key] = day.Strings()
	}

	return &responses.ScheduleExceptions{
		ScheduleID: scheduleID,
		Exceptions: exceptionsByKey,
	}, nil
}

func (uc *scheduleUsecase) MergeRanges(ctx context.Context, request *requests.MergeRanges) (*responses.MergedRanges, error) {
	merged, err := openinghours.MergeOverlappingRanges(request.Days)
	if err != nil {
		return nil, exceptions.ErrInvalidScheduleDefinition(err)
	}
	return &responses.MergedRanges{Days: merged}, nil
}

// resolveSchedule looks the schedule up in Redis first and falls back to
// Mongo, repopulating the cache on a miss.
func (uc *scheduleUsecase) resolveSchedule(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	cacheKey := constvars.RedisKeySchedulePrefix + scheduleID

	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var schedule models.Schedule
		if err := json.Unmarshal([]byte(cached), &schedule); err == nil {
			return &schedule, nil
		}
	}

	schedule, err := uc.ScheduleRepository.FindScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, exceptions.ErrScheduleNotFound(nil)
	}

	ttl := time.Duration(uc.InternalConfig.App.ScheduleCacheTTLInMinutes) * time.Minute
	_ = uc.RedisRepository.Set(ctx, cacheKey, schedule, ttl)

	return schedule, nil
}

func (uc *scheduleUsecase) resolveEngine(ctx context.Context, scheduleID string) (*openinghours.OpeningHours, error) {
	schedule, err := uc.resolveSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	return buildEngine(schedule)
}

func buildEngine(schedule *models.Schedule) (*openinghours.OpeningHours, error) {
	loc, err := locationFor(schedule.Timezone)
	if err != nil {
		return nil, exceptions.ErrInvalidScheduleDefinition(err)
	}

	opts := []openinghours.Option{openinghours.WithLocation(loc)}
	if schedule.OutputTimezone != "" {
		outputLoc, err := locationFor(schedule.OutputTimezone)
		if err != nil {
			return nil, exceptions.ErrInvalidScheduleDefinition(err)
		}
		opts = append(opts, openinghours.WithOutputLocation(outputLoc))
	}

	return openinghours.Create(openinghours.Definition(schedule.Definition), opts...), nil
}

func locationFor(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}

func buildScheduleResponse(schedule *models.Schedule) *responses.Schedule {
	return &responses.Schedule{
		Name:           schedule.Name,
		Timezone:       schedule.Timezone,
		OutputTimezone: schedule.OutputTimezone,
		Definition:     schedule.Definition,
		CreatedAt:      schedule.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      schedule.UpdatedAt.Format(time.RFC3339),
	}
}

func buildStatusResponse(engine *openinghours.OpeningHours, scheduleID string, at time.Time) *responses.ScheduleStatus {
	status := &responses.ScheduleStatus{
		ScheduleID: scheduleID,
		At:         at.Format(time.RFC3339),
		Open:       engine.IsOpenAt(at),
	}

	if current, ok := engine.CurrentOpenRange(at); ok {
		rangeLabel := current.String()
		status.CurrentRange = &rangeLabel
	}
	if start, ok := engine.CurrentOpenRangeStart(at); ok {
		formatted := start.Format(time.RFC3339)
		status.RangeStart = &formatted
	}
	if end, ok := engine.CurrentOpenRangeEnd(at); ok {
		formatted := end.Format(time.RFC3339)
		status.RangeEnd = &formatted
	}

	return status
}

func buildWeekGroups(groups []openinghours.CombinedDays) []responses.WeekGroup {
	result := make([]responses.WeekGroup, 0, len(groups))
	for _, group := range groups {
		result = append(result, responses.WeekGroup{
			Days:  group.Days,
			Hours: group.Day.Strings(),
		})
	}
	return result
}
