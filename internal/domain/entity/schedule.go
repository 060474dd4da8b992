package entity

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
)

// Midnight is the wire value a source uses for both bounds of a non-working weekday.
const Midnight = "00:00:00"

// Schedule is the recurring weekly timetable plus date-specific overrides.
type Schedule struct {
	Weekly     []WeeklyHours  `json:"weekly" yaml:"weekly"`
	Exceptions []ExceptionDay `json:"exceptions,omitempty" yaml:"exceptions"`
}

// WeeklyHours are the opening hours for one day of the week.
// Times are kept as delivered by the source ("HH:mm:ss") and parsed on use.
type WeeklyHours struct {
	Day       time.Weekday `json:"day" yaml:"day"` // 0=Sunday..6=Saturday
	OpenTime  string       `json:"openTime" yaml:"openTime"`
	CloseTime string       `json:"closeTime" yaml:"closeTime"`
}

// IsNonWorking reports whether both bounds parse to midnight. Unparsable
// bounds are not a day off; the resolver reports them as malformed.
func (w WeeklyHours) IsNonWorking() bool {
	open, err := ParseTimeOfDay(w.OpenTime)
	if err != nil {
		return false
	}
	closing, err := ParseTimeOfDay(w.CloseTime)
	if err != nil {
		return false
	}

	return open == civil.Time{} && closing == civil.Time{}
}

// ExceptionDay overrides the weekly entry for a single calendar date.
type ExceptionDay struct {
	Date      civil.Date `json:"date" yaml:"date"`
	IsClosed  bool       `json:"isClosed" yaml:"isClosed"`
	OpenTime  *string    `json:"openTime,omitempty" yaml:"openTime"`
	CloseTime *string    `json:"closeTime,omitempty" yaml:"closeTime"`
}

// IsEmpty reports whether the schedule carries no information at all.
func (s Schedule) IsEmpty() bool {
	return len(s.Weekly) == 0 && len(s.Exceptions) == 0
}

// WeeklyFor returns the weekly entry for day, if any.
func (s Schedule) WeeklyFor(day time.Weekday) (WeeklyHours, bool) {
	for _, entry := range s.Weekly {
		if entry.Day == day {
			return entry, true
		}
	}

	return WeeklyHours{}, false
}

// ExceptionFor returns the override registered for date, if any.
func (s Schedule) ExceptionFor(date civil.Date) (ExceptionDay, bool) {
	for _, exception := range s.Exceptions {
		if exception.Date == date {
			return exception, true
		}
	}

	return ExceptionDay{}, false
}

// Clone returns a deep copy of the schedule.
func (s Schedule) Clone() Schedule {
	cloned := Schedule{}
	if s.Weekly != nil {
		cloned.Weekly = append([]WeeklyHours(nil), s.Weekly...)
	}
	if s.Exceptions != nil {
		cloned.Exceptions = make([]ExceptionDay, len(s.Exceptions))
		for i, exception := range s.Exceptions {
			cloned.Exceptions[i] = exception
			cloned.Exceptions[i].OpenTime = cloneString(exception.OpenTime)
			cloned.Exceptions[i].CloseTime = cloneString(exception.CloseTime)
		}
	}

	return cloned
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s

	return &v
}

// ParseTimeOfDay parses "HH:mm:ss" or "HH:mm" into a comparable time of day.
func ParseTimeOfDay(raw string) (civil.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return civil.Time{}, errors.New("empty time of day")
	}

	if t, err := civil.ParseTime(value); err == nil {
		return t, nil
	}

	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return civil.Time{}, errors.Wrapf(err, "parse time of day %q", raw)
	}

	return civil.TimeOf(parsed), nil
}

// SecondsOfDay converts a time of day into seconds since midnight.
func SecondsOfDay(t civil.Time) int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}
