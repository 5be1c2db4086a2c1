package constvars

// Validation messages for clients, mapped by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of %s",
	"timezone": "must be a valid IANA timezone name",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientScheduleNotFound              = "schedule not found"
	ErrClientInvalidScheduleDefinition     = "the schedule definition is invalid"
	ErrClientInvalidTimeValue              = "invalid time value, expected RFC3339"
	ErrClientSearchLimitExceeded           = "no matching boundary within the search window"
	ErrClientInvalidAPIKey                 = "invalid API key"
	ErrClientInvalidQueryParam             = "invalid query parameter value"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevValidationFailed       = "validation failed"
	ErrDevCannotParseTime        = "cannot parse time value"
	ErrDevInvalidInput           = "invalid input"
	ErrDevScheduleNotFound       = "schedule document not found"
	ErrDevInvalidRangeToken      = "invalid time range token"
	ErrDevSearchLimitExceeded    = "search exceeded the maximum day window"
	ErrDevServerDeadlineExceeded = "request deadline exceeded"
	ErrDevInvalidAPIKey          = "api key does not match"

	ErrDevMongoDBInsertDocument = "failed to insert mongo document"
	ErrDevMongoDBFindDocument   = "failed to find mongo document"
	ErrDevMongoDBUpdateDocument = "failed to update mongo document"
	ErrDevMongoDBDeleteDocument = "failed to delete mongo document"

	ErrDevRedisSet    = "failed to set redis key"
	ErrDevRedisGet    = "failed to get redis key"
	ErrDevRedisDelete = "failed to delete redis key"

	ErrDevPublishEvent = "failed to publish schedule event"
)
