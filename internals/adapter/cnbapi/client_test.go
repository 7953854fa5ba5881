package cnbapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFetchDailyFeed_SendsDateParameter(t *testing.T) {
	var gotDate string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDate = r.URL.Query().Get("date")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, RetryPolicy{MaxAttempts: 1})
	raw, err := client.FetchDailyFeed(context.Background(), testDate, false)

	assert.NoError(t, err)
	assert.Equal(t, "15.03.2024", gotDate)
	assert.Equal(t, sampleFeed, raw)
}

func TestFetchDailyFeed_LatestOmitsDateParameter(t *testing.T) {
	var hasDate bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hasDate = r.URL.Query().Has("date")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, RetryPolicy{MaxAttempts: 1})
	_, err := client.FetchDailyFeed(context.Background(), testDate, true)

	assert.NoError(t, err)
	assert.False(t, hasDate)
}

func TestFetchDailyFeed_RetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, RetryPolicy{MaxAttempts: 5})
	raw, err := client.FetchDailyFeed(context.Background(), testDate, false)

	assert.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, sampleFeed, raw)
}

func TestFetchDailyFeed_ExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, RetryPolicy{MaxAttempts: 4})
	_, err := client.FetchDailyFeed(context.Background(), testDate, false)

	assert.ErrorIs(t, err, ErrFeedUnavailable)
	assert.Equal(t, int32(4), calls.Load())
}

func TestFetchDailyFeed_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL, time.Second, RetryPolicy{MaxAttempts: 2})
	_, err := client.FetchDailyFeed(context.Background(), testDate, false)
	assert.Error(t, err)
}
