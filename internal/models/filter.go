package models

import "time"

// FilterParams is the explicit request object for a filter pass. Both date
// bounds are inclusive and compared at day granularity.
type FilterParams struct {
	StartDate time.Time
	EndDate   time.Time
	MinScore  int
}

func (p FilterParams) Validate() error {
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return NewValidationError("date range requires both start and end")
	}
	if p.StartDate.After(p.EndDate) {
		return NewValidationError("start date %s is after end date %s",
			p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"))
	}
	return nil
}
