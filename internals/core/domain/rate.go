package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar date layout used across the component.
const DateFormat = "2006-01-02"

// TableHeader is the fixed column layout of the output table.
var TableHeader = []string{"date", "country", "currency", "amount", "code", "rate"}

// TablePrimaryKey identifies one fixing row; rates repeat across dates.
var TablePrimaryKey = []string{"date", "code"}

// RateRecord is one currency's fixing for one day. Amount is the lot size
// the rate applies to (e.g. rate per 100 JPY).
type RateRecord struct {
	Date    time.Time
	Country string
	Name    string
	Amount  int
	Code    Currency
	Rate    decimal.Decimal
}

// Row renders the record in output column order.
func (r RateRecord) Row() []string {
	return []string{
		r.Date.Format(DateFormat),
		r.Country,
		r.Name,
		strconv.Itoa(r.Amount),
		string(r.Code),
		r.Rate.String(),
	}
}

// RatesTable is the accumulated output of one run, ordered by
// (date ascending, feed line order).
type RatesTable []RateRecord
