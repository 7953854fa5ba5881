package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hhanova/component-cnb-exchange-rates/internals/core/domain"
)

// DateSelectionMode is the closed set of date-selection variants.
type DateSelectionMode int

const (
	ModeToday DateSelectionMode = iota
	ModeTodayAndYesterday
	ModeWeek
	ModeCustomRange
)

// Mode option values as they appear in the component configuration.
const (
	OptionToday             = "Current day (currently declared rates)"
	OptionTodayAndYesterday = "Current day and yesterday"
	OptionWeek              = "Week"
	OptionCustomRange       = "Custom date range"
)

var (
	ErrUnknownDateMode     = errors.New("unknown date selection mode")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
	ErrDateFromNotBeforeTo = errors.New(`"date from" is higher or equal to "date to"`)
	ErrDateFromInFuture    = errors.New(`"date from" is in the future`)
)

// ParseDateSelectionMode maps a configuration option value onto its mode.
func ParseDateSelectionMode(option string) (DateSelectionMode, error) {
	switch option {
	case OptionToday:
		return ModeToday, nil
	case OptionTodayAndYesterday:
		return ModeTodayAndYesterday, nil
	case OptionWeek:
		return ModeWeek, nil
	case OptionCustomRange:
		return ModeCustomRange, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDateMode, option)
	}
}

// ResolveDateRange turns a date-selection mode and the reference date into
// the ordered set of dates to fetch. The from/to bounds are only consulted
// for ModeCustomRange. Relative modes count backwards from the reference
// date; the custom range runs ascending from its lower bound.
func ResolveDateRange(mode DateSelectionMode, reference time.Time, from, to time.Time) ([]time.Time, error) {
	switch mode {
	case ModeToday:
		return lastDays(reference, 1), nil
	case ModeTodayAndYesterday:
		return lastDays(reference, 2), nil
	case ModeWeek:
		return lastDays(reference, 7), nil
	case ModeCustomRange:
		return customDateRange(reference, from, to)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownDateMode, mode)
	}
}

func lastDays(reference time.Time, days int) []time.Time {
	dates := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, reference.AddDate(0, 0, -i))
	}
	return dates
}

func customDateRange(reference, from, to time.Time) ([]time.Time, error) {
	if !from.Before(to) {
		return nil, ErrDateFromNotBeforeTo
	}
	if from.After(reference) {
		return nil, ErrDateFromInFuture
	}

	end := to
	if end.After(reference) {
		end = reference
		log.Printf(`Warning: for "date to" you selected a day in the future, so "date to" was set to today (%s)`,
			reference.Format(domain.DateFormat))
	}

	var dates []time.Time
	for d := from; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates, nil
}
