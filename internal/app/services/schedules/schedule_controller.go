package schedules

import (
	"context"
	"net/http"
	"time"

	"openhours-service/internal/app/config"
	"openhours-service/internal/app/contracts"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/dto/requests"
	"openhours-service/internal/pkg/dto/responses"
	"openhours-service/internal/pkg/exceptions"
	"openhours-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
	InternalConfig  *config.InternalConfig
}

func NewScheduleController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase, internalConfig *config.InternalConfig) *ScheduleController {
	return &ScheduleController{
		Log:             logger,
		ScheduleUsecase: scheduleUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *ScheduleController) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateSchedule)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.CreateSchedule(ctx, request)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ScheduleCreateSuccess, result)
}

func (ctrl *ScheduleController) FindAllSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.FindAllSchedules(ctx)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleListSuccess, result)
}

func (ctrl *ScheduleController) FindScheduleByID(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, constvars.URLParamScheduleID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.FindScheduleByID(ctx, scheduleID)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleGetSuccess, result)
}

func (ctrl *ScheduleController) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, constvars.URLParamScheduleID)

	request := new(requests.UpdateSchedule)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.UpdateSchedule(ctx, scheduleID, request)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleUpdateSuccess, result)
}

func (ctrl *ScheduleController) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, constvars.URLParamScheduleID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.ScheduleUsecase.DeleteSchedule(ctx, scheduleID)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleDeleteSuccess, nil)
}

func (ctrl *ScheduleController) ScheduleStatus(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, constvars.URLParamScheduleID)

	at, err := utils.ParseTimeQueryParam(r, constvars.QueryParamAt, time.Now())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.ScheduleStatus(ctx, scheduleID, at)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleStatusSuccess, result)
}

func (ctrl *ScheduleController) NextOpen(w http.ResponseWriter, r *http.Request) {
	ctrl.searchBoundary(w, r, ctrl.ScheduleUsecase.NextOpen)
}

func (ctrl *ScheduleController) NextClose(w http.ResponseWriter, r *http.Request) {
	ctrl.searchBoundary(w, r, ctrl.ScheduleUsecase.NextClose)
}

func (ctrl *ScheduleController) PreviousOpen(w http.ResponseWriter, r *http.Request) {
	ctrl.searchBoundary(w, r, ctrl.ScheduleUsecase.PreviousOpen)
}

func (ctrl *ScheduleController) PreviousClose(w http.ResponseWriter, r *http.Request) {
	ctrl.searchBoundary(w, r, ctrl.ScheduleUsecase.PreviousClose)
}

func (ctrl *ScheduleController) searchBoundary(
	w http.ResponseWriter,
	r *http.Request,
	search func(ctx context.Context, scheduleID string, from time.Time, until, capTime *time.Time) (*responses.ScheduleBoundary, error),
) {
	scheduleID := chi.URLParam(r, constvars.URLParamScheduleID)

	from, err := utils.ParseTimeQueryParam(r, constvars.QueryParamFrom, time.Now())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	until, err := utils.ParseOptionalTimeQueryParam(r, constvars.QueryParamUntil)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	capTime, err := utils.ParseOptionalTimeQueryParam(r, constvars.QueryParamCap)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := search(ctx, scheduleID, from, until, capTime)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleSearchSuccess, result)
}

func (ctrl *ScheduleController) CurrentOpenRange(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, constvars.URLParamScheduleID)

	at, err := utils.ParseTimeQueryParam(r, constvars.QueryParamAt, time.Now())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.CurrentOpenRange(ctx, scheduleID, at)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleStatusSuccess, result)
}

func (ctrl *ScheduleController) DiffInState(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, constvars.URLParamScheduleID)

	state := utils.QueryParamOrDefault(r, constvars.QueryParamState, constvars.QueryStateOpen)
	unit := utils.QueryParamOrDefault(r, constvars.QueryParamUnit, constvars.QueryUnitHours)

	now := time.Now()
	start, err := utils.ParseTimeQueryParam(r, constvars.QueryParamStart, now)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	end, err := utils.ParseTimeQueryParam(r, constvars.QueryParamEnd, now)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.DiffInState(ctx, scheduleID, state, unit, start, end)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleDiffSuccess, result)
}

func (ctrl *ScheduleController) Week(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, constvars.URLParamScheduleID)
	mode := utils.QueryParamOrDefault(r, constvars.QueryParamMode, constvars.WeekModePlain)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.Week(ctx, scheduleID, mode)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleWeekSuccess, result)
}

func (ctrl *ScheduleController) Exceptions(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, constvars.URLParamScheduleID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.Exceptions(ctx, scheduleID)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleExceptionSuccess, result)
}

func (ctrl *ScheduleController) MergeRanges(w http.ResponseWriter, r *http.Request) {
	request := new(requests.MergeRanges)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.MergeRanges(ctx, request)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleMergeSuccess, result)
}

func (ctrl *ScheduleController) writeError(w http.ResponseWriter, err error) {
	if err == context.DeadlineExceeded {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
