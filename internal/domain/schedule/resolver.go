// Package schedule resolves weekly hours and exception days into open/closed verdicts.
package schedule

import (
	"fmt"
	"time"

	domainerrors "storelocator/internal/domain/errors"
	"storelocator/internal/domain/entity"
	"storelocator/internal/domain/service"
	"storelocator/internal/errors"

	"cloud.google.com/go/civil"
)

const secondsPerDay = 24 * 3600

// Resolver computes TodayStatus values. It is pure given its clock.
type Resolver struct {
	clock service.Clock
}

// NewResolver creates a resolver bound to clock.
func NewResolver(clock service.Clock) *Resolver {
	return &Resolver{clock: clock}
}

// Resolve returns whether the schedule is open at instant at.
// A malformed time yields a closed verdict with source "none" and an error
// wrapping ErrMalformedSchedule so that callers can log the offending record.
func (r *Resolver) Resolve(s entity.Schedule, at time.Time) (entity.TodayStatus, error) {
	if s.IsEmpty() {
		return closedStatus(entity.StatusSourceNone), nil
	}

	local := at.In(r.clock.Location())
	today := r.clock.DayOfWeek(at)
	date := civil.DateOf(local)
	now := civil.TimeOf(local)

	if exception, ok := s.ExceptionFor(date); ok {
		return resolveException(exception, now)
	}

	weekly, ok := s.WeeklyFor(today)
	if !ok || weekly.IsNonWorking() {
		return closedStatus(entity.StatusSourceWeekly), nil
	}

	return resolveWeekly(weekly, now)
}

func resolveException(exception entity.ExceptionDay, now civil.Time) (entity.TodayStatus, error) {
	if exception.IsClosed || exception.OpenTime == nil || exception.CloseTime == nil {
		return closedStatus(entity.StatusSourceException), nil
	}

	open, closing, err := parseBounds(*exception.OpenTime, *exception.CloseTime)
	if err != nil {
		return closedStatus(entity.StatusSourceNone), errors.Wrapf(err, "exception day %s", exception.Date)
	}

	// Exception hours never wrap: a close before the open denotes a closed day.
	current := entity.SecondsOfDay(now)
	isOpen := entity.SecondsOfDay(open) <= current && current <= entity.SecondsOfDay(closing)

	return entity.TodayStatus{
		IsOpen:    isOpen,
		OpenTime:  &open,
		CloseTime: &closing,
		Source:    entity.StatusSourceException,
	}, nil
}

func resolveWeekly(weekly entity.WeeklyHours, now civil.Time) (entity.TodayStatus, error) {
	open, closing, err := parseBounds(weekly.OpenTime, weekly.CloseTime)
	if err != nil {
		return closedStatus(entity.StatusSourceNone), errors.Wrapf(err, "weekly hours for %s", weekly.Day)
	}

	openAt := entity.SecondsOfDay(open)
	closeAt := entity.SecondsOfDay(closing)
	current := entity.SecondsOfDay(now)

	var isOpen bool
	if closeAt < openAt {
		// Overnight: the interval runs to closeAt on the following day.
		closeAt += secondsPerDay
		isOpen = (openAt <= current && current <= closeAt) ||
			(openAt <= current+secondsPerDay && current+secondsPerDay <= closeAt)
	} else {
		isOpen = openAt <= current && current <= closeAt
	}

	return entity.TodayStatus{
		IsOpen:    isOpen,
		OpenTime:  &open,
		CloseTime: &closing,
		Source:    entity.StatusSourceWeekly,
	}, nil
}

func parseBounds(rawOpen, rawClose string) (civil.Time, civil.Time, error) {
	open, err := entity.ParseTimeOfDay(rawOpen)
	if err != nil {
		return civil.Time{}, civil.Time{}, errors.Wrap(domainerrors.ErrMalformedSchedule, err.Error())
	}

	closing, err := entity.ParseTimeOfDay(rawClose)
	if err != nil {
		return civil.Time{}, civil.Time{}, errors.Wrap(domainerrors.ErrMalformedSchedule, err.Error())
	}

	return open, closing, nil
}

func closedStatus(source entity.StatusSource) entity.TodayStatus {
	return entity.TodayStatus{IsOpen: false, Source: source}
}

// WeeklyDisplay formats the weekly timetable for display, Sunday first.
// Days without an entry are listed as non-working.
func (r *Resolver) WeeklyDisplay(s entity.Schedule, at time.Time) ([]entity.DayInfo, error) {
	today := r.clock.DayOfWeek(at)
	days := make([]entity.DayInfo, 0, 7)

	var errs []error
	for day := time.Sunday; day <= time.Saturday; day++ {
		info := entity.DayInfo{
			Day:     day,
			Name:    day.String(),
			IsToday: day == today,
		}

		if weekly, ok := s.WeeklyFor(day); ok && !weekly.IsNonWorking() {
			open, closing, err := parseBounds(weekly.OpenTime, weekly.CloseTime)
			if err != nil {
				errs = append(errs, errors.Wrapf(err, "weekly hours for %s", day))
			} else {
				info.Open = formatHHMM(open)
				info.Close = formatHHMM(closing)
				info.IsWorkingDay = true
			}
		}

		days = append(days, info)
	}

	if len(errs) > 0 {
		return days, errors.Join(errs...)
	}

	return days, nil
}

func formatHHMM(t civil.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
