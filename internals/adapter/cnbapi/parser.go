package cnbapi

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hhanova/component-cnb-exchange-rates/internals/core/domain"
)

const (
	fieldDelimiter = "|"
	fieldCount     = 5

	// columnHeader is the second line of every published fixing; it carries
	// no data and is skipped without a warning.
	columnHeader = "Country|Currency|Amount|Code|Rate"
)

var ErrInvalidRate = errors.New("rate is not a plain decimal number")

// ratePattern accepts only digits,digits or digits.digits. Anything else
// (signs, exponents, grouping separators) is rejected so a misquoted feed
// value never turns into a silently wrong rate.
var ratePattern = regexp.MustCompile(`^[0-9]+[.,][0-9]+$`)

// NormalizeRate converts a feed rate value to a dot-decimal number. The
// fixing quotes rates with a comma as the decimal separator.
func NormalizeRate(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !ratePattern.MatchString(s) {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidRate, s)
	}
	return decimal.NewFromString(strings.Replace(s, ",", ".", 1))
}

// ParseDailyFeed parses raw fixing text into rate records stamped with the
// requested date. The feed has no date column; the first line is the feed's
// own date stamp (e.g. "15.03.2024 #53") and is dropped. Malformed lines
// and repeated codes are skipped with a warning, never an error: an
// unparsable feed simply yields no records for that date.
func ParseDailyFeed(raw string, date time.Time) []domain.RateRecord {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	if len(lines) <= 1 {
		return nil
	}

	day := date.Format(domain.DateFormat)
	records := make([]domain.RateRecord, 0, len(lines)-1)
	seen := make(map[domain.Currency]bool, len(lines)-1)

	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" || strings.EqualFold(line, columnHeader) {
			continue
		}

		fields := strings.Split(line, fieldDelimiter)
		if len(fields) != fieldCount {
			log.Printf("Warning: skipping malformed feed line for %s: %q", day, line)
			continue
		}

		amount, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			log.Printf("Warning: skipping feed line for %s with bad amount: %q", day, line)
			continue
		}

		rate, err := NormalizeRate(fields[4])
		if err != nil {
			log.Printf("Warning: skipping feed line for %s: %v", day, err)
			continue
		}

		code := domain.Currency(strings.TrimSpace(fields[3]))
		if seen[code] {
			log.Printf("Warning: duplicate code %s in the fixing for %s, keeping the first occurrence", code, day)
			continue
		}
		seen[code] = true

		records = append(records, domain.RateRecord{
			Date:    date,
			Country: strings.TrimSpace(fields[0]),
			Name:    strings.TrimSpace(fields[1]),
			Amount:  amount,
			Code:    code,
			Rate:    rate,
		})
	}

	return records
}
