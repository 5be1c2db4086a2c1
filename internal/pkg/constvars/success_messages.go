package constvars

const (
	ScheduleCreateSuccess    = "Successfully created schedule"
	ScheduleGetSuccess       = "Successfully retrieved schedule"
	ScheduleListSuccess      = "Successfully retrieved schedules"
	ScheduleUpdateSuccess    = "Successfully updated schedule"
	ScheduleDeleteSuccess    = "Successfully deleted schedule"
	ScheduleStatusSuccess    = "Successfully resolved schedule status"
	ScheduleSearchSuccess    = "Successfully resolved schedule boundary"
	ScheduleDiffSuccess      = "Successfully computed schedule diff"
	ScheduleWeekSuccess      = "Successfully retrieved weekly schedule"
	ScheduleExceptionSuccess = "Successfully retrieved schedule exceptions"
	ScheduleMergeSuccess     = "Successfully merged overlapping ranges"
)
