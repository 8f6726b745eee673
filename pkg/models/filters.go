package models

// FilterContext carries the ambient dashboard selections active when a
// question is asked. Dates arrive in dd/mm/yyyy form, as the dashboard
// renders them. All fields are optional; empty selections mean "all".
type FilterContext struct {
	StartDate string // dd/mm/yyyy, inclusive
	EndDate   string // dd/mm/yyyy, inclusive (resolver converts to exclusive end+1)
	Assignees string // comma-separated salesperson names, "" = all
	Accounts  string // comma-separated POI names, "" = all
	VisitType string // selected visit objective, "" = overview
}

// HasDateRange reports whether both ends of the date range are present.
func (f *FilterContext) HasDateRange() bool {
	return f != nil && f.StartDate != "" && f.EndDate != ""
}
