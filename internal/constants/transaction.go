package constants

const (
	// Overview filters
	FilterAll     = "all"
	FilterCurrent = "current"
	FilterMonth   = "month"

	// Sort directions for the tri-state toggles
	SortNone = "none"
	SortDesc = "desc"
	SortAsc  = "asc"

	// Date Layouts
	DateFormat  = "2006-01-02"
	MonthFormat = "2006-01"
)

const (
	MaxNameLen = 100
	MaxNoteLen = 500
)
