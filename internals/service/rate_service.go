package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/hhanova/component-cnb-exchange-rates/internals/adapter/cnbapi"
	"github.com/hhanova/component-cnb-exchange-rates/internals/config"
	"github.com/hhanova/component-cnb-exchange-rates/internals/core/domain"
	"github.com/hhanova/component-cnb-exchange-rates/internals/repository"
)

// SelectionAll is the sentinel selecting every currency in the catalog.
const SelectionAll = "all"

var (
	ErrNoCurrencySelected = errors.New("no currency selected")
	ErrUnknownCurrency    = errors.New("unknown currency code")
	ErrNoDataFetched      = errors.New("data were not fetched")
)

// RunParameters is a validated run request: a resolved date-selection mode,
// custom bounds where applicable, and the currency code set to keep.
type RunParameters struct {
	Mode                DateSelectionMode
	DateFrom            time.Time
	DateTo              time.Time
	Currencies          map[domain.Currency]bool
	UseNearestAsCurrent bool
}

// ParseRunParameters validates the raw component parameters before any
// network access. Malformed custom dates, an unknown mode and an empty or
// unknown currency selection are all surfaced here.
func ParseRunParameters(params *config.Parameters) (*RunParameters, error) {
	mode, err := ParseDateSelectionMode(params.DateSettings.Dates)
	if err != nil {
		return nil, err
	}

	run := &RunParameters{
		Mode:                mode,
		UseNearestAsCurrent: params.DateSettings.CurrentAsToday,
	}

	if mode == ModeCustomRange {
		run.DateFrom, err = time.Parse(domain.DateFormat, params.DateSettings.DateFrom)
		if err != nil {
			return nil, fmt.Errorf(`%w: "date from" %q`, ErrInvalidDateFormat, params.DateSettings.DateFrom)
		}
		run.DateTo, err = time.Parse(domain.DateFormat, params.DateSettings.DateTo)
		if err != nil {
			return nil, fmt.Errorf(`%w: "date to" %q`, ErrInvalidDateFormat, params.DateSettings.DateTo)
		}
	}

	run.Currencies, err = ResolveCurrencySelection(params.Currencies.SelectedCurrencies)
	if err != nil {
		return nil, err
	}

	return run, nil
}

// ResolveCurrencySelection expands a raw selection into the set of currency
// codes to keep. The "all" sentinel selects the full catalog; explicit
// entries must be known codes; an empty result aborts the run.
func ResolveCurrencySelection(selected []string) (map[domain.Currency]bool, error) {
	codes := make(map[domain.Currency]bool, len(selected))
	for _, entry := range selected {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.EqualFold(entry, SelectionAll) {
			for _, code := range domain.Currencies {
				codes[code] = true
			}
			continue
		}
		code := domain.Currency(strings.ToUpper(entry))
		if !code.IsKnown() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCurrency, entry)
		}
		codes[code] = true
	}

	if len(codes) == 0 {
		return nil, ErrNoCurrencySelected
	}
	return codes, nil
}

// RateService assembles the output rates table for one component run.
type RateService interface {
	BuildRatesTable(ctx context.Context, params *RunParameters, reference time.Time) (domain.RatesTable, error)
}

type rateServiceImpl struct {
	repo repository.FeedRepository
}

// NewRateService creates a new RateService.
func NewRateService(repo repository.FeedRepository) RateService {
	return &rateServiceImpl{repo: repo}
}

// BuildRatesTable resolves the requested dates, fetches and parses each
// day's fixing and keeps the selected currencies. A date whose fetch keeps
// failing contributes zero rows; only a fully empty result is an error.
func (s *rateServiceImpl) BuildRatesTable(ctx context.Context, params *RunParameters, reference time.Time) (domain.RatesTable, error) {
	dates, err := ResolveDateRange(params.Mode, reference, params.DateFrom, params.DateTo)
	if err != nil {
		return nil, err
	}

	table := make(domain.RatesTable, 0, len(dates)*len(params.Currencies))
	for _, date := range dates {
		latest := params.UseNearestAsCurrent && date.Equal(reference)

		raw, err := s.repo.GetDailyFeed(ctx, date, latest)
		if err != nil {
			log.Printf("Warning: no fixing for %s: %v", date.Format(domain.DateFormat), err)
			continue
		}

		for _, record := range cnbapi.ParseDailyFeed(raw, date) {
			if params.Currencies[record.Code] {
				table = append(table, record)
			}
		}
	}

	if len(table) == 0 {
		return nil, ErrNoDataFetched
	}

	// Relative modes resolve newest-first; the output is ordered by date
	// ascending with feed line order preserved within one day.
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Date.Before(table[j].Date)
	})

	return table, nil
}
