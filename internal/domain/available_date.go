package domain

import "time"

// AvailableDate represents one bookable day offered in the form
type AvailableDate struct {
	Date        string // "2006-01-02", submitted back as booking_date
	Label       string // short label, e.g. "01月15日"
	Weekday     string // localized weekday name
	FullDisplay string // "<Label> (<Weekday>)"
}

// WeekdayNames maps a weekday to its localized name.
// The keys double as the set of bookable weekdays.
type WeekdayNames map[time.Weekday]string

// Name returns the localized name of the weekday, or "" if it is not bookable
func (w WeekdayNames) Name(day time.Weekday) string {
	return w[day]
}

// IsBookable returns true if trial classes can be scheduled on this weekday
func (w WeekdayNames) IsBookable(day time.Weekday) bool {
	_, ok := w[day]
	return ok
}
