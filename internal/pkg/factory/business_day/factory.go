package business_day

import "time"

// BusinessDayFactory текущий рабочий день кассы в часовом поясе компании.
type BusinessDayFactory struct {
	location *time.Location
	now      func() time.Time
}

func New(location *time.Location) *BusinessDayFactory {
	if location == nil {
		location = time.UTC
	}
	return &BusinessDayFactory{location: location, now: time.Now}
}

// Today полночь текущего дня по местному времени, записанная как дата в UTC.
func (f *BusinessDayFactory) Today() time.Time {
	return f.Day(f.now())
}

// Day рабочий день, к которому относится момент t.
func (f *BusinessDayFactory) Day(t time.Time) time.Time {
	local := t.In(f.location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

func (f *BusinessDayFactory) Location() *time.Location {
	return f.location
}
