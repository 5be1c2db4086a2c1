package responses

type Schedule struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Timezone       string                 `json:"timezone"`
	OutputTimezone string                 `json:"output_timezone,omitempty"`
	Definition     map[string]interface{} `json:"definition"`
	CreatedAt      string                 `json:"created_at"`
	UpdatedAt      string                 `json:"updated_at"`
}

type ScheduleStatus struct {
	ScheduleID   string  `json:"schedule_id"`
	At           string  `json:"at"`
	Open         bool    `json:"open"`
	CurrentRange *string `json:"current_range,omitempty"`
	RangeStart   *string `json:"range_start,omitempty"`
	RangeEnd     *string `json:"range_end,omitempty"`
}

type ScheduleBoundary struct {
	ScheduleID string `json:"schedule_id"`
	Boundary   string `json:"boundary"`
	From       string `json:"from"`
	At         string `json:"at"`
	Capped     bool   `json:"capped,omitempty"`
}

type ScheduleDiff struct {
	ScheduleID string  `json:"schedule_id"`
	State      string  `json:"state"`
	Unit       string  `json:"unit"`
	Value      float64 `json:"value"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
}

type ScheduleWeek struct {
	ScheduleID string              `json:"schedule_id"`
	Mode       string              `json:"mode"`
	Days       map[string][]string `json:"days,omitempty"`
	Groups     []WeekGroup         `json:"groups,omitempty"`
}

type WeekGroup struct {
	Days  []string `json:"days"`
	Hours []string `json:"hours"`
}

type ScheduleExceptions struct {
	ScheduleID string              `json:"schedule_id"`
	Exceptions map[string][]string `json:"exceptions"`
}

type MergedRanges struct {
	Days map[string][]string `json:"days"`
}
