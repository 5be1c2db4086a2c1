package requests

type CreateSchedule struct {
	Name           string                 `json:"name" validate:"required,min=1,max=120"`
	Timezone       string                 `json:"timezone" validate:"omitempty,timezone"`
	OutputTimezone string                 `json:"output_timezone" validate:"omitempty,timezone"`
	Definition     map[string]interface{} `json:"definition" validate:"required"`
}

// UpdateSchedule carries a full replacement definition: updates rebuild the
// schedule from scratch rather than merging into the stored one.
type UpdateSchedule struct {
	Name           string                 `json:"name" validate:"omitempty,min=1,max=120"`
	Timezone       string                 `json:"timezone" validate:"omitempty,timezone"`
	OutputTimezone string                 `json:"output_timezone" validate:"omitempty,timezone"`
	Definition     map[string]interface{} `json:"definition" validate:"required"`
}

type MergeRanges struct {
	Days map[string][]string `json:"days" validate:"required"`
}
