package cnbapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hhanova/component-cnb-exchange-rates/internals/core/domain"
)

var testDate = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

const sampleFeed = `15.03.2024 #53
Country|Currency|Amount|Code|Rate
Australia|dollar|1|AUD|15,363
EMU|euro|1|EUR|24,805
Japan|yen|100|JPY|15,510
USA|dollar|1|USD|22,705
`

func TestNormalizeRate_CommaDecimal(t *testing.T) {
	rate, err := NormalizeRate("23,456")
	assert.NoError(t, err)
	assert.Equal(t, "23.456", rate.String())
}

func TestNormalizeRate_DotDecimal(t *testing.T) {
	rate, err := NormalizeRate("22.705")
	assert.NoError(t, err)
	assert.Equal(t, "22.705", rate.String())
}

func TestNormalizeRate_Rejected(t *testing.T) {
	for _, input := range []string{"", "23", "23,", ",456", "2 3,4", "23,45,6", "-23,4", "2e3", "abc"} {
		_, err := NormalizeRate(input)
		assert.ErrorIs(t, err, ErrInvalidRate, "input %q", input)
	}
}

func TestParseDailyFeed_Sample(t *testing.T) {
	records := ParseDailyFeed(sampleFeed, testDate)
	assert.Len(t, records, 4)

	assert.Equal(t, domain.RateRecord{
		Date:    testDate,
		Country: "Japan",
		Name:    "yen",
		Amount:  100,
		Code:    "JPY",
		Rate:    records[2].Rate,
	}, records[2])
	assert.Equal(t, "15.51", records[2].Rate.String())

	for _, record := range records {
		assert.Equal(t, testDate, record.Date)
	}
}

func TestParseDailyFeed_SkipsMalformedLines(t *testing.T) {
	raw := "15.03.2024 #53\n" +
		"Country|Currency|Amount|Code|Rate\n" +
		"Australia|dollar|1|AUD|15,363\n" +
		"broken line without delimiters\n" +
		"EMU|euro|one|EUR|24,805\n" +
		"USA|dollar|1|USD|not-a-rate\n" +
		"UK|pound|1|GBP|28,745\n"

	records := ParseDailyFeed(raw, testDate)
	assert.Len(t, records, 2)
	assert.Equal(t, domain.Currency("AUD"), records[0].Code)
	assert.Equal(t, domain.Currency("GBP"), records[1].Code)
}

func TestParseDailyFeed_DuplicateCodeKeepsFirst(t *testing.T) {
	raw := "15.03.2024 #53\n" +
		"Country|Currency|Amount|Code|Rate\n" +
		"USA|dollar|1|USD|22,705\n" +
		"USA|dollar|1|USD|99,999\n"

	records := ParseDailyFeed(raw, testDate)
	assert.Len(t, records, 1)
	assert.Equal(t, "22.705", records[0].Rate.String())
}

func TestParseDailyFeed_EmptyInput(t *testing.T) {
	assert.Empty(t, ParseDailyFeed("", testDate))
	assert.Empty(t, ParseDailyFeed("15.03.2024 #53", testDate))
	assert.Empty(t, ParseDailyFeed("15.03.2024 #53\nCountry|Currency|Amount|Code|Rate\n", testDate))
}

func TestParseDailyFeed_CRLF(t *testing.T) {
	raw := "15.03.2024 #53\r\nCountry|Currency|Amount|Code|Rate\r\nUSA|dollar|1|USD|22,705\r\n"
	records := ParseDailyFeed(raw, testDate)
	assert.Len(t, records, 1)
	assert.Equal(t, "USA", records[0].Country)
}
