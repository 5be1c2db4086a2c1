package constvars

const (
	URLParamScheduleID = "scheduleID"

	QueryParamAt    = "at"
	QueryParamFrom  = "from"
	QueryParamUntil = "until"
	QueryParamCap   = "cap"
	QueryParamState = "state"
	QueryParamStart = "start"
	QueryParamEnd   = "end"
	QueryParamUnit  = "unit"
	QueryParamMode  = "mode"
)
