package cnbapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/hhanova/component-cnb-exchange-rates/internals/core/domain"
)

// dateParamFormat is the date layout the fixing endpoint expects.
const dateParamFormat = "02.01.2006"

var ErrFeedUnavailable = errors.New("feed endpoint returned an error status")

// FeedClient defines the interface for retrieving one day's raw fixing text.
// When latest is true the date parameter is omitted and the endpoint answers
// with the most recently declared fixing, whatever day it carries.
type FeedClient interface {
	FetchDailyFeed(ctx context.Context, date time.Time, latest bool) (string, error)
}

// Client fetches the daily fixing over HTTP with bounded retry.
type Client struct {
	feedURL    string
	httpClient *http.Client
	retry      RetryPolicy
}

func NewClient(feedURL string, timeout time.Duration, retry RetryPolicy) *Client {
	return &Client{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		retry: retry,
	}
}

func (c *Client) FetchDailyFeed(ctx context.Context, date time.Time, latest bool) (string, error) {
	reqURL := c.feedURL
	if !latest {
		params := url.Values{}
		params.Add("date", date.Format(dateParamFormat))
		reqURL = fmt.Sprintf("%s?%s", reqURL, params.Encode())
	}

	log.Printf("Fetching daily fixing for %s from %s", date.Format(domain.DateFormat), reqURL)

	var body string
	err := c.retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%w: %d", ErrFeedUnavailable, resp.StatusCode)
		}

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		body = string(raw)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch daily fixing for %s: %w", date.Format(domain.DateFormat), err)
	}

	return body, nil
}
