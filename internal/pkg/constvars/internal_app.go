package constvars

const (
	MongoCollectionSchedules = "schedules"

	RedisKeySchedulePrefix = "schedule:"

	CONTEXT_REQUEST_ID_KEY           = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY = "is_client_request_id"
	CONTEXT_API_KEY_AUTH_KEY         = "api_key_auth"
)

const (
	ScheduleEventCreated = "schedule.created"
	ScheduleEventUpdated = "schedule.updated"
	ScheduleEventDeleted = "schedule.deleted"
)

const (
	QueryStateOpen   = "open"
	QueryStateClosed = "closed"

	QueryUnitSeconds = "seconds"
	QueryUnitMinutes = "minutes"
	QueryUnitHours   = "hours"

	WeekModePlain       = "plain"
	WeekModeCombined    = "combined"
	WeekModeConsecutive = "consecutive"
)

const ResponseUnknown = "unknown"
