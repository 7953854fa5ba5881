package domain

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencies_CatalogSize(t *testing.T) {
	assert.Len(t, Currencies, 32)
}

func TestIsKnown_KnownCode(t *testing.T) {
	assert.True(t, Currency("USD").IsKnown())
	assert.True(t, Currency("XDR").IsKnown())
}

func TestIsKnown_UnknownCode(t *testing.T) {
	assert.False(t, Currency("FOO").IsKnown())
	assert.False(t, Currency("usd").IsKnown())
}

func TestName_ReverseLookup(t *testing.T) {
	name, ok := Currency("EUR").Name()
	assert.True(t, ok)
	assert.Equal(t, "Euro", name)

	_, ok = Currency("ZZZ").Name()
	assert.False(t, ok)
}

func TestListCurrencies_OrderedAndComplete(t *testing.T) {
	options := ListCurrencies()
	assert.Len(t, options, len(Currencies))

	labels := make([]string, 0, len(options))
	for _, option := range options {
		labels = append(labels, option.Label)
		assert.Equal(t, string(Currencies[option.Label]), option.Value)
	}
	assert.True(t, sort.StringsAreSorted(labels))
}
